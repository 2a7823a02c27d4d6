// Package server wires and runs the gateway's HTTP transport, including
// startup, signal handling, and graceful shutdown.
package server
