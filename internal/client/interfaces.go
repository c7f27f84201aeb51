// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable chat client. Run owns the session for its whole
// duration and closes it before returning.
type Client interface {
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)
