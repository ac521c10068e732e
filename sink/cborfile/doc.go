/*
Package cborfile persists records to a single file as a CBOR sequence.

The Writer is an append-only sink: open, append records, close. The
on-disk layout is owned by the CBOR serializer's reflection over the
record type, so any struct the encoder accepts can be persisted without
a hand-written codec.

	w, _ := cborfile.Open[fixtures.Event]("events.cbor")
	w.Append(ctx, ev)
	w.Close()

The Reader walks the same sequence back, one record at a time, and
ReadAll collects a whole file:

	events, _ := cborfile.ReadAll[fixtures.Event]("events.cbor")
*/
package cborfile
