/*
Package fixturestore generates deterministic fixture files for
serialization readers and manages the sinks they are written to.

The library has three layers:
  - fixtures: counter-driven record types whose every field is a pure
    function of an incrementing seed
  - sink: the append-only persistence interface, with CBOR-file,
    DynamoDB-catalog, and mock implementations
  - gen: the run driver that threads a counter across a whole batch of
    events and records a manifest of what was written

Basic Usage:

	// Open a fixture file sink
	w, _ := cborfile.Open[fixtures.Event]("events.cbor")

	// Generate and persist 100 events
	counter := 0
	for i := 0; i < 100; i++ {
	    var ev fixtures.Event
	    ev, counter = fixtures.NewEvent(int64(i), counter)
	    _ = w.Append(ctx, ev)
	}
	_ = w.Close()

Sinks can also be managed behind a type-safe registry:

	mts := fixturestore.NewMultiTypeSinks()
	fixturestore.RegisterSink[fixtures.Event](mts, "events", w)
	s, _ := fixturestore.GetSink[fixtures.Event](mts, "events")

For more information, see the documentation at https://github.com/suparena/fixturestore
*/
package fixturestore
