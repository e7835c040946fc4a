// Package ent holds the generated persistence client. Run go generate after
// changing any schema under ent/schema.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate ./schema
