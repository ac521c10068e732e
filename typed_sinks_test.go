/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fixturestore

import (
	"context"
	"testing"

	"github.com/suparena/fixturestore/fixtures"
	"github.com/suparena/fixturestore/sink"
)

// nullSink is a minimal RecordSink implementation for registry tests
type nullSink[T any] struct {
	appended int
}

func (n *nullSink[T]) Append(ctx context.Context, record T) error {
	n.appended++
	return nil
}

func (n *nullSink[T]) Close() error { return nil }

func TestTypedSinksRegisterGet(t *testing.T) {
	ts := NewTypedSinks[fixtures.Event]()
	ns := &nullSink[fixtures.Event]{}

	if err := ts.Register("events", ns); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := ts.Register("events", ns); err == nil {
		t.Error("expected error on duplicate registration")
	}

	got, err := ts.Get("events")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != sink.RecordSink[fixtures.Event](ns) {
		t.Error("Get returned a different sink")
	}

	if _, err := ts.Get("missing"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestTypedSinksRemoveList(t *testing.T) {
	ts := NewTypedSinks[fixtures.Event]()
	_ = ts.Register("a", &nullSink[fixtures.Event]{})
	_ = ts.Register("b", &nullSink[fixtures.Event]{})

	keys := ts.List()
	if len(keys) != 2 {
		t.Errorf("List returned %d keys, want 2", len(keys))
	}

	if err := ts.Remove("a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := ts.Remove("a"); err == nil {
		t.Error("expected error removing missing key")
	}
	if len(ts.List()) != 1 {
		t.Error("Remove did not shrink the registry")
	}
}

func TestMultiTypeSinks(t *testing.T) {
	mts := NewMultiTypeSinks()

	eventSink := &nullSink[fixtures.Event]{}
	runSink := &nullSink[fixtures.RunManifest]{}

	if err := RegisterSink[fixtures.Event](mts, "events", eventSink); err != nil {
		t.Fatalf("RegisterSink events: %v", err)
	}
	if err := RegisterSink[fixtures.RunManifest](mts, "runs", runSink); err != nil {
		t.Fatalf("RegisterSink runs: %v", err)
	}

	// Same key under a different type must not collide.
	if err := RegisterSink[fixtures.RunManifest](mts, "events", runSink); err != nil {
		t.Errorf("key collision across types: %v", err)
	}

	got, err := GetSink[fixtures.Event](mts, "events")
	if err != nil {
		t.Fatalf("GetSink: %v", err)
	}
	if err := got.Append(context.Background(), fixtures.Event{}); err != nil {
		t.Fatalf("Append through registry: %v", err)
	}
	if eventSink.appended != 1 {
		t.Error("append did not reach the registered sink")
	}

	if err := RemoveSink[fixtures.Event](mts, "events"); err != nil {
		t.Fatalf("RemoveSink: %v", err)
	}
	if keys := ListSinks[fixtures.Event](mts); len(keys) != 0 {
		t.Errorf("ListSinks after remove = %v, want empty", keys)
	}
}

func TestSinkRegistry(t *testing.T) {
	reg := NewSinkRegistry()

	if err := reg.RegisterSink("events", &nullSink[fixtures.Event]{}); err != nil {
		t.Fatalf("RegisterSink: %v", err)
	}
	if err := reg.RegisterSink("events", &nullSink[fixtures.Event]{}); err == nil {
		t.Error("expected error on duplicate key")
	}

	s, err := reg.GetSink("events")
	if err != nil {
		t.Fatalf("GetSink: %v", err)
	}
	if _, ok := s.(*nullSink[fixtures.Event]); !ok {
		t.Errorf("GetSink returned %T", s)
	}

	if _, err := reg.GetSink("missing"); err == nil {
		t.Error("expected error for unknown key")
	}
}
