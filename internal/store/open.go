package store

import (
	"context"
	"fmt"
	"io"

	"github.com/abhisek/quizmaster/internal/quiz"
)

// Backend names accepted by OpenKV.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// KV is a closable quiz.Storage.
type KV interface {
	quiz.Storage
	io.Closer
}

// Options selects and configures a KV backend.
type Options struct {
	Backend string
	Path    string // sqlite database file; empty means DefaultDBPath
	Redis   RedisOptions
}

// OpenKV opens the backend named in opts.
func OpenKV(ctx context.Context, opts Options) (KV, error) {
	switch opts.Backend {
	case "", BackendSQLite:
		path := opts.Path
		if path == "" {
			p, err := DefaultDBPath()
			if err != nil {
				return nil, err
			}
			path = p
		} else if err := ensureDir(path); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
		return Open(path)
	case BackendRedis:
		return OpenRedis(ctx, opts.Redis)
	case BackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (supported: sqlite, redis, memory)", opts.Backend)
	}
}
