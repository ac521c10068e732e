/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cborfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/suparena/fixturestore/errors"
)

// encMode is the canonical encoding mode shared by all writers. Canonical
// map-key ordering keeps fixture files byte-identical across runs.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// Writer implements sink.RecordSink[T] by appending records to a single
// file as a CBOR sequence (RFC 8742). The byte layout is owned entirely
// by the CBOR encoder; this package only hands it record values.
type Writer[T any] struct {
	path   string
	f      *os.File
	buf    *bufio.Writer
	enc    *cbor.Encoder
	count  int
	closed bool
}

// Open creates (or truncates) the file at path and returns a Writer
// ready to accept records.
func Open[T any](path string) (*Writer[T], error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture file: %w", err)
	}

	buf := bufio.NewWriter(f)
	return &Writer[T]{
		path: path,
		f:    f,
		buf:  buf,
		enc:  encMode.NewEncoder(buf),
	}, nil
}

// Append encodes one record at the end of the sequence.
func (w *Writer[T]) Append(ctx context.Context, record T) error {
	if w.closed {
		return errors.NewSinkClosedError(w.path, "append")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := w.enc.Encode(record); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	w.count++
	return nil
}

// Count returns the number of records appended so far.
func (w *Writer[T]) Count() int {
	return w.count
}

// Path returns the file path the writer was opened with.
func (w *Writer[T]) Path() string {
	return w.path
}

// Close flushes buffered records and finalizes the file. It is an error
// to close a writer twice.
func (w *Writer[T]) Close() error {
	if w.closed {
		return errors.NewSinkClosedError(w.path, "close")
	}
	w.closed = true

	if err := w.buf.Flush(); err != nil {
		w.f.Close()
		return fmt.Errorf("failed to flush fixture file: %w", err)
	}
	if err := w.f.Close(); err != nil {
		return fmt.Errorf("failed to close fixture file: %w", err)
	}
	return nil
}

// Reader decodes records back out of a CBOR sequence file.
type Reader[T any] struct {
	path string
	f    *os.File
	dec  *cbor.Decoder
}

// OpenReader opens the file at path for sequential decoding.
func OpenReader[T any](path string) (*Reader[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture file: %w", err)
	}

	return &Reader[T]{
		path: path,
		f:    f,
		dec:  cbor.NewDecoder(bufio.NewReader(f)),
	}, nil
}

// Next decodes the next record. It returns io.EOF once the sequence is
// exhausted.
func (r *Reader[T]) Next() (*T, error) {
	record := new(T)
	if err := r.dec.Decode(record); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return record, nil
}

// Close releases the underlying file.
func (r *Reader[T]) Close() error {
	return r.f.Close()
}

// ReadAll decodes every record in the file at path.
func ReadAll[T any](path string) ([]T, error) {
	r, err := OpenReader[T](path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var records []T
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
}
