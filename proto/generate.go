// Package llmv1 contains the model-service protobuf definitions.
// Run go generate to produce the Go bindings.
package llmv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
