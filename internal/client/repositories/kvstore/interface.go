// Package kvstore provides the process-local key-value store backing all
// CampusKart state. Collections are serialized whole into single keys, so a
// write replaces the previous value atomically at the store level.
package kvstore

import "context"

// Repository is the durable key-value contract.
//
// Get returns (nil, nil) when the key is absent; callers treat nil as
// "no value yet". Set upserts.
//
// InTx runs fn against a repository scoped to a single transaction when the
// backend supports one; every write made inside fn commits or rolls back as
// a unit. Backends without transactions run fn against themselves.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	InTx(ctx context.Context, fn func(Repository) error) error
}
