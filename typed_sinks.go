/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fixturestore

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/suparena/fixturestore/sink"
)

// TypedSinks provides type-safe sink management for a specific record type T
type TypedSinks[T any] struct {
	mu    sync.RWMutex
	sinks map[string]sink.RecordSink[T]
}

// NewTypedSinks creates a new TypedSinks for type T
func NewTypedSinks[T any]() *TypedSinks[T] {
	return &TypedSinks[T]{
		sinks: make(map[string]sink.RecordSink[T]),
	}
}

// Register adds a sink with the given key
func (ts *TypedSinks[T]) Register(key string, s sink.RecordSink[T]) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.sinks[key]; exists {
		return fmt.Errorf("sink with key %q already registered", key)
	}

	ts.sinks[key] = s
	return nil
}

// Get retrieves a sink by key
func (ts *TypedSinks[T]) Get(key string) (sink.RecordSink[T], error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	s, exists := ts.sinks[key]
	if !exists {
		return nil, fmt.Errorf("sink with key %q not found", key)
	}

	return s, nil
}

// Remove deletes a sink by key
func (ts *TypedSinks[T]) Remove(key string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.sinks[key]; !exists {
		return fmt.Errorf("sink with key %q not found", key)
	}

	delete(ts.sinks, key)
	return nil
}

// List returns all registered sink keys
func (ts *TypedSinks[T]) List() []string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	keys := make([]string, 0, len(ts.sinks))
	for k := range ts.sinks {
		keys = append(keys, k)
	}
	return keys
}

// MultiTypeSinks manages TypedSinks instances for different record types
type MultiTypeSinks struct {
	mu       sync.RWMutex
	managers map[reflect.Type]interface{}
}

// NewMultiTypeSinks creates a new MultiTypeSinks
func NewMultiTypeSinks() *MultiTypeSinks {
	return &MultiTypeSinks{
		managers: make(map[reflect.Type]interface{}),
	}
}

// GetTypedSinks returns the TypedSinks for the specified type, creating it if necessary
func GetTypedSinks[T any](mts *MultiTypeSinks) *TypedSinks[T] {
	mts.mu.Lock()
	defer mts.mu.Unlock()

	var zero T
	typ := reflect.TypeOf(zero)

	if manager, exists := mts.managers[typ]; exists {
		return manager.(*TypedSinks[T])
	}

	newManager := NewTypedSinks[T]()
	mts.managers[typ] = newManager
	return newManager
}

// RegisterSink is a convenience function to register a sink for type T
func RegisterSink[T any](mts *MultiTypeSinks, key string, s sink.RecordSink[T]) error {
	return GetTypedSinks[T](mts).Register(key, s)
}

// GetSink is a convenience function to get a sink for type T
func GetSink[T any](mts *MultiTypeSinks, key string) (sink.RecordSink[T], error) {
	return GetTypedSinks[T](mts).Get(key)
}

// RemoveSink is a convenience function to remove a sink for type T
func RemoveSink[T any](mts *MultiTypeSinks, key string) error {
	return GetTypedSinks[T](mts).Remove(key)
}

// ListSinks is a convenience function to list all sinks for type T
func ListSinks[T any](mts *MultiTypeSinks) []string {
	return GetTypedSinks[T](mts).List()
}
