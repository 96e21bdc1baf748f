// Package proto holds the wire schemas. Generated Go lands under gen/proto
// and is not checked in.
package proto

//go:generate protoc --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative tasks/v1/tasks.proto
