/*
Package fixtures defines the deterministic record types produced by the
generator.

Every field of a Sample is a pure function of an incrementing counter:
the field takes the counter's current value, then the counter advances.
Fields are filled in declared order, so a given seed always produces the
same record. The fixed-size array section is the one exception — it is
filled from a local counter pinned at a constant, so array contents are
identical across all samples.

	s, next := fixtures.NewSample(0)
	// s.Num == 0, s.Num16 == 1, s.NumU == 2, next == 64

Events wrap a fixed-size collection of samples and thread the counter
through them:

	ev, next := fixtures.NewEvent(0, 0)
*/
package fixtures
