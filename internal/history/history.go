// Package history defines the session history collaborator and an in-process
// implementation of it.
package history

import (
	"context"
	"sync"

	"github.com/mindfool/mindfool/internal/session"
)

// StorageName is the fixed name under which history is persisted.
const StorageName = "mindfool-history"

// Repo stores finished sessions. Sessions are returned newest first, but
// consumers such as the streak engine must not rely on that order.
type Repo interface {
	session.Recorder

	// Sessions returns every stored record, newest first.
	Sessions(ctx context.Context) ([]session.Record, error)

	// LastSession returns the most recently added record, or nil if the
	// history is empty.
	LastSession(ctx context.Context) (*session.Record, error)

	// ClearHistory removes every record.
	ClearHistory(ctx context.Context) error
}

// Memory is a Repo that keeps records in memory. It is safe for concurrent
// use.
type Memory struct {
	mu       sync.RWMutex
	sessions []session.Record // newest first
}

var _ Repo = (*Memory)(nil)

// NewMemory creates an empty in-memory history.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) AddSession(_ context.Context, rec session.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = append([]session.Record{rec}, m.sessions...)
	return nil
}

func (m *Memory) Sessions(_ context.Context) ([]session.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]session.Record, len(m.sessions))
	copy(out, m.sessions)
	return out, nil
}

func (m *Memory) LastSession(_ context.Context) (*session.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.sessions) == 0 {
		return nil, nil
	}
	rec := m.sessions[0]
	return &rec, nil
}

func (m *Memory) ClearHistory(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = nil
	return nil
}
