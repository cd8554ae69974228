// Package client contains the client-side building blocks the session
// controller depends on.
//
// # Overview
//
// The package provides:
//  1. The auth API contract (Client): Login, Register, Close.
//  2. MockClient, an in-process implementation that simulates network
//     latency, accepts any credentials, fabricates the user record, and mints
//     an HS256 token that the rest of the client treats as opaque.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations): opens the
//     SQLite file through the pure-Go modernc.org/sqlite driver and applies
//     the embedded goose migrations.
//
// # Error Handling
//
// ErrUnavailable is returned once the client has been closed. Context
// cancellation during the simulated latency is returned as ctx.Err().
//
// The sqlite driver is registered by importing modernc.org/sqlite, which the
// cli package does for the binary.
package client
