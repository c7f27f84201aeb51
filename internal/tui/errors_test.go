package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-indie-chat/internal/network"
	"github.com/MKhiriev/go-indie-chat/internal/session"
)

func TestHumanizeNetworkError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "no signer", err: session.ErrNoSigner, want: "No wallet configured"},
		{
			name: "wrapped gateway rejection",
			err:  fmt.Errorf("%w: create client: %w", session.ErrAuthentication, network.ErrUnauthorized),
			want: "Gateway rejected the installation",
		},
		{
			name: "connection refused",
			err:  errors.New("Post \"http://127.0.0.1:1/v1/installations\": dial tcp 127.0.0.1:1: connect: connection refused"),
			want: "Network unavailable or gateway unreachable",
		},
		{name: "unknown", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeNetworkError(tt.err))
		})
	}
}
