// Package storage is the client's durable key/value storage.
//
// The session gate keeps the serialized credential under a single key; the
// store itself knows nothing about what it holds. The SQLite-backed Store
// is created by Open, which also applies the embedded goose migrations.
//
// Contract: Get returns (nil, nil) for an absent key; Delete and Clear are
// idempotent.
package storage
