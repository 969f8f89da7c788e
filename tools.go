//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq (service and handler mocks, via go:generate)
//
// Migrations run through cmd/migrate, which embeds goose as a library.
