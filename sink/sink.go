/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sink

import "context"

// RecordSink is the write side of a persistence endpoint. A sink is
// opened by its constructor, receives records through Append, and is
// finalized exactly once with Close. Implementations own the persisted
// layout; callers only supply record values.
type RecordSink[T any] interface {
	// Append persists one record snapshot. The record must not be
	// mutated by the caller after handoff.
	Append(ctx context.Context, record T) error

	// Close finalizes the sink. Appending after Close is an error.
	Close() error
}
