// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the wallet signer, the network gateway, the messaging session
// and the terminal UI into a single process lifecycle, and optionally serves
// session metrics.
package client
