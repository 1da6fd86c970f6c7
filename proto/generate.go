// Package ptyhostv1 holds the generated gRPC bindings for the PTY host
// daemon contract defined in ptyhost.proto.
package ptyhostv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative ptyhost.proto
