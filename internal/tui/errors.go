// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"net"
	"strings"

	"github.com/MKhiriev/go-indie-chat/internal/network"
	"github.com/MKhiriev/go-indie-chat/internal/session"
)

var errorTexts = []struct {
	target error
	text   string
}{
	{session.ErrNoSigner, "No wallet configured"},
	{session.ErrStoreClosed, "Session closed"},
	{network.ErrUnauthorized, "Gateway rejected the installation"},
	{network.ErrForbidden, "Wallet signature was not accepted"},
	{network.ErrAddressMismatch, "Gateway issued a token for another address"},
	{network.ErrBadGateway, "Gateway is unavailable"},
	{network.ErrInternal, "Gateway failed, try again later"},
}

// humanizeNetworkError turns a connect failure into a status line.
func humanizeNetworkError(err error) string {
	if err == nil {
		return ""
	}
	for _, e := range errorTexts {
		if errors.Is(err, e.target) {
			return e.text
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) || isUnreachable(err.Error()) {
		return "Network unavailable or gateway unreachable"
	}
	return err.Error()
}

func isUnreachable(msg string) bool {
	msg = strings.ToLower(msg)
	for _, s := range []string{"connection refused", "no such host", "network is unreachable", "context deadline exceeded"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
