// Package config loads settings for the chat client and the development
// gateway.
//
// A [StructuredConfig] is layered from environment variables (which carry
// the defaults), command-line flags and an optional JSON file named by
// CONFIG or -config. Non-zero fields of a later layer win.
//
// Binaries never read [StructuredConfig] directly: [GetClientConfig] and
// [GetDevnetConfig] validate it and return the view each one needs.
package config
