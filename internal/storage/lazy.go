package storage

import (
	"context"
	"sync"
)

// Opener builds a Storage, typically resolving credentials first.
type Opener func(ctx context.Context) (Storage, error)

// Lazy opens a Storage on first use and keeps it for the life of the process.
// A failed open is not cached, so the next caller retries.
type Lazy struct {
	open Opener

	mu    sync.Mutex
	store Storage
}

// NewLazy wraps open.
func NewLazy(open Opener) *Lazy {
	return &Lazy{open: open}
}

// Get returns the opened Storage, opening it if needed.
func (l *Lazy) Get(ctx context.Context) (Storage, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.store != nil {
		return l.store, nil
	}

	s, err := l.open(ctx)
	if err != nil {
		return nil, err
	}
	l.store = s
	return s, nil
}
