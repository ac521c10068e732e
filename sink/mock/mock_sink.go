/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of the RecordSink interface for testing
package mock

import (
	"context"
	"sync"

	"github.com/suparena/fixturestore/errors"
)

// Sink is a mock implementation of sink.RecordSink[T] for testing. It
// records every appended entity in order and can be configured with
// injected errors through the With* builder methods.
type Sink[T any] struct {
	mu        sync.RWMutex
	records   []T
	appendErr error
	closeErr  error
	closed    bool
	name      string
}

// New creates a new mock Sink
func New[T any]() *Sink[T] {
	return &Sink[T]{name: "mock"}
}

// WithName sets the sink name used in closed-sink errors
func (m *Sink[T]) WithName(name string) *Sink[T] {
	m.name = name
	return m
}

// WithAppendError makes Append operations return an error
func (m *Sink[T]) WithAppendError(err error) *Sink[T] {
	m.appendErr = err
	return m
}

// WithCloseError makes Close return an error
func (m *Sink[T]) WithCloseError(err error) *Sink[T] {
	m.closeErr = err
	return m
}

// Append records the entity, unless an error is injected or the sink is closed
func (m *Sink[T]) Append(ctx context.Context, record T) error {
	if m.appendErr != nil {
		return m.appendErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return errors.NewSinkClosedError(m.name, "append")
	}
	m.records = append(m.records, record)
	return nil
}

// Close marks the sink finalized
func (m *Sink[T]) Close() error {
	if m.closeErr != nil {
		return m.closeErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return errors.NewSinkClosedError(m.name, "close")
	}
	m.closed = true
	return nil
}

// Records returns a copy of everything appended so far
func (m *Sink[T]) Records() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, len(m.records))
	copy(out, m.records)
	return out
}

// Closed reports whether Close has been called
func (m *Sink[T]) Closed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.closed
}

// Reset clears recorded entities and reopens the sink
func (m *Sink[T]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
	m.closed = false
}
