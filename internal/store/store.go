package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Well-known slot keys.
const (
	KeyProjects   = "projectsData"
	KeyCredential = "editPasswordHash"
)

// Backend names accepted by Open.
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Slots is a durable string-valued key-value store.
type Slots interface {
	// Get returns the slot value and whether the slot exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Put overwrites the slot value.
	Put(ctx context.Context, key, value string) error
	// Delete removes the slot. Deleting an absent slot is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Pinger is implemented by backends that can check their database is usable.
type Pinger interface {
	Ping() error
}

// Ping checks slots when the backend supports it.
func Ping(slots Slots) error {
	p, ok := slots.(Pinger)
	if !ok {
		return nil
	}

	if err := p.Ping(); err != nil {
		return fmt.Errorf("storage health check: %w", err)
	}

	return nil
}

// Backends lists the accepted backend names.
func Backends() []string {
	return []string{BackendBolt, BackendSQLite, BackendMemory}
}

// Open opens the named backend with its data file under dir.
func Open(backend, dir string) (Slots, error) {
	switch backend {
	case BackendBolt, "":
		if err := ensureDir(dir); err != nil {
			return nil, err
		}

		return NewBolt(filepath.Join(dir, "projtrack.bolt"))
	case BackendSQLite:
		if err := ensureDir(dir); err != nil {
			return nil, err
		}

		return NewSQLite(filepath.Join(dir, "projtrack.db"))
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	return nil
}
