/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fixtures

// SamplesPerEvent is the fixed size of an event's sample collection.
const SamplesPerEvent = 3

// Event is the root record appended to a sink: an identifier plus a
// fixed-size collection of populated samples. Events are constructed
// once and never mutated after handoff.
type Event struct {
	ID      int64                   `json:"id"`
	Samples [SamplesPerEvent]Sample `json:"samples"`
}

// NewEvent builds an event with the given identifier, threading the
// counter through its samples in order. It returns the event and the
// counter value to seed the next event.
func NewEvent(id int64, counter int) (Event, int) {
	ev := Event{ID: id}
	for i := range ev.Samples {
		ev.Samples[i], counter = NewSample(counter)
	}
	return ev, counter
}
