// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package network defines the contract of the messaging network the session
// layer talks to and ships an HTTP/WebSocket implementation of it.
//
// The session layer only depends on [Network], [Client] and [Conversation].
// [Gateway] implements them against a network gateway speaking the JSON API
// under /api/v1 (see routes.go); the development gateway in internal/devnet
// serves the same API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package network
