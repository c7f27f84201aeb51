package wallet

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-indie-chat/internal/config"
	"github.com/MKhiriev/go-indie-chat/models"
)

const (
	testKeyHex  = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	testAddress = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"
)

// ── constructors ──────────────────────────────────────────────────────────────

func TestNewKeySignerFromHex_KnownAddress(t *testing.T) {
	for _, raw := range []string{testKeyHex, "0x" + testKeyHex, "  " + testKeyHex + "\n"} {
		s, err := NewKeySignerFromHex(raw)

		require.NoError(t, err)
		assert.Equal(t, models.Address(testAddress), s.Address())
	}
}

func TestNewKeySignerFromHex_Invalid(t *testing.T) {
	_, err := NewKeySignerFromHex("zz")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestLoadKeySigner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.hex")
	require.NoError(t, os.WriteFile(path, []byte(testKeyHex), 0o600))

	s, err := LoadKeySigner(path)

	require.NoError(t, err)
	assert.Equal(t, models.Address(testAddress), s.Address())
}

func TestLoadKeySigner_MissingFile(t *testing.T) {
	_, err := LoadKeySigner(filepath.Join(t.TempDir(), "absent"))

	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestNewSignerFromConfig(t *testing.T) {
	s, err := NewSignerFromConfig(config.Wallet{PrivateKey: testKeyHex})
	require.NoError(t, err)
	assert.Equal(t, models.Address(testAddress), s.Address())

	generated, err := NewSignerFromConfig(config.Wallet{})
	require.NoError(t, err)
	assert.False(t, generated.Address().IsZero())
	assert.NotEqual(t, s.Address(), generated.Address())
}

func TestKeySigner_PrivateKeyHexRoundTrip(t *testing.T) {
	s, err := NewKeySignerFromHex(testKeyHex)
	require.NoError(t, err)

	assert.Equal(t, testKeyHex, s.PrivateKeyHex())
}

// ── signing ───────────────────────────────────────────────────────────────────

func TestKeySigner_SignAndRecover(t *testing.T) {
	// Arrange
	s, err := GenerateKeySigner()
	require.NoError(t, err)
	msg := []byte("indie-chat key request")

	// Act
	sig, err := s.SignMessage(context.Background(), msg)

	// Assert
	require.NoError(t, err)
	require.Len(t, sig, 65)
	assert.Contains(t, []byte{27, 28}, sig[64])

	recovered, err := RecoverAddress(msg, sig)
	require.NoError(t, err)
	assert.Equal(t, s.Address(), recovered)
	assert.NoError(t, VerifySignature(s.Address(), msg, sig))
}

func TestKeySigner_SignIsDeterministic(t *testing.T) {
	s, err := NewKeySignerFromHex(testKeyHex)
	require.NoError(t, err)

	a, err := s.SignMessage(context.Background(), []byte("same"))
	require.NoError(t, err)
	b, err := s.SignMessage(context.Background(), []byte("same"))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestKeySigner_SignCancelledContext(t *testing.T) {
	s, err := GenerateKeySigner()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.SignMessage(ctx, []byte("x"))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestVerifySignature_WrongAddressOrMessage(t *testing.T) {
	s, err := GenerateKeySigner()
	require.NoError(t, err)
	sig, err := s.SignMessage(context.Background(), []byte("hello"))
	require.NoError(t, err)

	assert.ErrorIs(t, VerifySignature(testAddress, []byte("hello"), sig), ErrInvalidSignature)
	assert.ErrorIs(t, VerifySignature(s.Address(), []byte("other"), sig), ErrInvalidSignature)
	assert.ErrorIs(t, VerifySignature(s.Address(), []byte("hello"), sig[:10]), ErrInvalidSignature)
}
