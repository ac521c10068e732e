/*
Package sink defines the persistence interface records are handed to.

The main interface is RecordSink[T], an append-only endpoint with an
explicit finalize step:

	type RecordSink[T any] interface {
	    Append(ctx context.Context, record T) error
	    Close() error
	}

Implementations:
  - cborfile: fixture payloads as a CBOR sequence in a single file
  - catalog: run manifests in a DynamoDB catalog table
  - mock: in-memory implementation for testing

The package uses Go generics to ensure type safety at compile time while
keeping the write path identical across backends.
*/
package sink
