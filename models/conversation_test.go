package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConversation(t *testing.T) {
	conv, err := NewConversation(" 0x2222222222222222222222222222222222222222 ", " indie-talent/42 ", "topic-1", time.Now())

	require.NoError(t, err)
	assert.Equal(t, NewAddress("0x2222222222222222222222222222222222222222"), conv.PeerAddress)
	assert.Equal(t, "indie-talent/42", conv.ConversationID)
	assert.Equal(t, time.UTC, conv.CreatedAt.Location())
}

func TestNewConversation_Validation(t *testing.T) {
	_, err := NewConversation("", "x", "t", time.Now())
	assert.ErrorIs(t, err, ErrEmptyPeerAddress)

	_, err = NewConversation("bob", "x", " ", time.Now())
	assert.ErrorIs(t, err, ErrEmptyTopic)
}

func TestConversation_HasNamespace(t *testing.T) {
	conv := Conversation{ConversationID: "indie-talent/7"}

	assert.True(t, conv.HasNamespace("indie-talent/"))
	assert.False(t, conv.HasNamespace("other/"))
	assert.False(t, conv.HasNamespace(""))
	assert.False(t, Conversation{}.HasNamespace("indie-talent/"))
}

func TestConversation_CloneDetachesMetadata(t *testing.T) {
	conv := Conversation{Metadata: map[string]string{"k": "v"}}

	cp := conv.Clone()
	cp.Metadata["k"] = "changed"

	assert.Equal(t, "v", conv.Metadata["k"])
}

func TestParseEnvironment(t *testing.T) {
	env, err := ParseEnvironment(" DEV ")
	require.NoError(t, err)
	assert.Equal(t, EnvironmentDev, env)

	_, err = ParseEnvironment("mainnet")
	assert.ErrorIs(t, err, ErrUnknownEnvironment)
}
