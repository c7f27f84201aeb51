// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session turns a wallet signer into a live messaging session and
// keeps a single read model of it.
//
// One goroutine owns the [State]. Every change is an action sent to that
// goroutine and applied by a reducer, so concurrent message fetches cannot
// overwrite each other. Actions produced by asynchronous work carry the
// session generation they were started under; once [Session.Disconnect] or
// a new client bumps the generation, late results are rejected.
//
// Components:
//   - [Store] holds the state and serializes every mutation.
//   - [LifecycleManager] checks identity existence, creates the client and
//     tears the session down.
//   - [DiscoveryEngine] lists the conversations of the application
//     namespace.
//   - [SyncEngine] fetches and normalizes message histories concurrently.
//   - the stream subscriber appends conversations created while the
//     session is live.
package session
