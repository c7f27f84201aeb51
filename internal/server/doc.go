// Package server wires and runs the HTTP listeners of the application.
//
// It provides orchestration for the gateway and metrics listener lifecycles,
// including startup, signal handling, and graceful shutdown of every enabled
// listener.
package server
