/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock

import (
	"context"
	"errors"
	"testing"

	fserrors "github.com/suparena/fixturestore/errors"
	"github.com/suparena/fixturestore/fixtures"
	"github.com/suparena/fixturestore/sink"
)

var _ sink.RecordSink[fixtures.Event] = (*Sink[fixtures.Event])(nil)

func TestMockSinkRecordsInOrder(t *testing.T) {
	s := New[fixtures.Event]()
	ctx := context.Background()

	counter := 0
	for i := 0; i < 3; i++ {
		var ev fixtures.Event
		ev, counter = fixtures.NewEvent(int64(i), counter)
		if err := s.Append(ctx, ev); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	records := s.Records()
	if len(records) != 3 {
		t.Fatalf("recorded %d events, want 3", len(records))
	}
	for i, ev := range records {
		if ev.ID != int64(i) {
			t.Errorf("records[%d].ID = %d, want %d", i, ev.ID, i)
		}
	}
}

func TestMockSinkClose(t *testing.T) {
	s := New[fixtures.Event]().WithName("events")

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !s.Closed() {
		t.Error("Closed() = false after Close")
	}

	err := s.Append(context.Background(), fixtures.Event{})
	if !fserrors.IsSinkClosed(err) {
		t.Errorf("Append after Close = %v, want sink-closed error", err)
	}
	if err := s.Close(); !fserrors.IsSinkClosed(err) {
		t.Errorf("second Close = %v, want sink-closed error", err)
	}
}

func TestMockSinkInjectedErrors(t *testing.T) {
	appendErr := errors.New("append failed")
	closeErr := errors.New("close failed")
	s := New[fixtures.Event]().
		WithAppendError(appendErr).
		WithCloseError(closeErr)

	if err := s.Append(context.Background(), fixtures.Event{}); !errors.Is(err, appendErr) {
		t.Errorf("Append = %v, want injected error", err)
	}
	if err := s.Close(); !errors.Is(err, closeErr) {
		t.Errorf("Close = %v, want injected error", err)
	}
}

func TestMockSinkReset(t *testing.T) {
	s := New[fixtures.Event]()
	_ = s.Append(context.Background(), fixtures.Event{ID: 1})
	_ = s.Close()

	s.Reset()
	if s.Closed() || len(s.Records()) != 0 {
		t.Error("Reset did not reopen and clear the sink")
	}
}
