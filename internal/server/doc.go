// Package server wires and runs the application's transport servers.
//
// It provides orchestration for HTTP and gRPC server lifecycles, including
// startup, signal handling, and graceful shutdown of all enabled transports.
// The gRPC server additionally keeps the grpc.health.v1 status in line with
// database reachability.
package server
