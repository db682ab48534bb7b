package store

import (
	"context"
	"errors"
	"time"

	"github.com/mindfool/mindfool/internal/history"
	"github.com/mindfool/mindfool/internal/session"
)

// ErrDuplicateSession is returned when a record with an existing ID is added.
var ErrDuplicateSession = errors.New("session already recorded")

// QueryOpts configures history queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// SessionQuerier is implemented by histories that support filtered reads.
type SessionQuerier interface {
	// Query returns records matching opts, newest first.
	Query(ctx context.Context, opts QueryOpts) ([]session.Record, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}

// KV stores opaque documents under string keys.
type KV interface {
	// Get returns the value stored under key. ok is false if the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

var (
	_ history.Repo   = (*HistoryRepo)(nil)
	_ SessionQuerier = (*HistoryRepo)(nil)
	_ KV             = (*KVRepo)(nil)
)
