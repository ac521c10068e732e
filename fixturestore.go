/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fixturestore

import (
	"fmt"
	"sync"
)

// SinkRegistry is a higher-level interface that manages a collection of
// RecordSink instances. Its methods are not generic; they use the empty
// interface (any) to store and retrieve sinks.
type SinkRegistry interface {
	// RegisterSink registers a sink under a given key (for example, "events" or "runs").
	RegisterSink(key string, s any) error
	// GetSink retrieves the registered sink for a given key.
	// The caller must type-assert the returned value to the appropriate sink type.
	GetSink(key string) (any, error)
}

// sinkManager is a thread-safe implementation of the SinkRegistry interface.
type sinkManager struct {
	mu    sync.RWMutex
	sinks map[string]any
}

// NewSinkRegistry creates and returns a new SinkRegistry implementation.
func NewSinkRegistry() SinkRegistry {
	return &sinkManager{
		sinks: make(map[string]any),
	}
}

// RegisterSink stores the provided sink under the given key.
func (sm *sinkManager) RegisterSink(key string, s any) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sinks[key]; exists {
		return fmt.Errorf("sink with key %q already registered", key)
	}
	sm.sinks[key] = s
	return nil
}

// GetSink retrieves the sink associated with the given key.
func (sm *sinkManager) GetSink(key string) (any, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	s, exists := sm.sinks[key]
	if !exists {
		return nil, fmt.Errorf("sink with key %q not found", key)
	}
	return s, nil
}
