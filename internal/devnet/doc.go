// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package devnet implements an in-memory messaging network and serves it
// over the gateway API of package network, so the client can run end to end
// without the real network.
//
// State is partitioned by the environment requested in the X-Network-Env
// header and lives only as long as the process. Installation tokens are
// HS256 JWTs whose subject is the wallet address. New conversations are
// pushed to websocket subscribers of both participants.
package devnet
