// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNoListeners is returned by [NewServer] when every listener was
	// skipped for lacking an address or a handler.
	ErrNoListeners = errors.New("no listeners configured")

	// ErrListen wraps a failure to bind a listener address.
	ErrListen = errors.New("listen failed")
)
