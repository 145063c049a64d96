// Package persistence defines the snapshot port the ledger round-trips
// through: load an opaque record by key, save one back. The ledger itself
// stays authoritative; implementations only move bytes.
package persistence

import (
	"context"
	"encoding/json"
)

// Record is an opaque serialized payload.
type Record = json.RawMessage

// Store is the load/save contract. Load reports ok=false when the key has
// never been saved; that is not an error.
type Store interface {
	Load(ctx context.Context, key string) (Record, bool, error)
	Save(ctx context.Context, key string, rec Record) error
}

// LoadJSON loads and decodes the record at key into v. Returns ok=false,
// untouched v, when the key is absent.
func LoadJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	rec, ok, err := s.Load(ctx, key)
	if err != nil || !ok {
		return ok, err
	}
	if err := json.Unmarshal(rec, v); err != nil {
		return false, err
	}
	return true, nil
}

// SaveJSON encodes v and saves it at key.
func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	rec, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Save(ctx, key, rec)
}
