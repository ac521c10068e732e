/*
Package catalog provides a DynamoDB implementation of the RecordSink
interface, used to keep a queryable catalog of generator runs.

The Store supports:
  - Single-table design patterns
  - Macro-based key expansion (e.g., "RUN#{Id}")
  - Paginated streaming with retry logic
  - Automatic RecordType injection for polymorphic rows

Macro Expansion:
Keys can use macros that are replaced with record field values:

	indexMap := map[string]string{
	    "PK": "RUN",          // Static value
	    "SK": "RUN#{Id}",     // Becomes "RUN#run-0042"
	}

Streaming:
The streaming API supports configurable options:

	results := store.Stream(ctx, params,
	    storagemodels.WithBufferSize(100),
	    storagemodels.WithPageSize(25),
	    storagemodels.WithMaxRetries(3),
	)

For usage examples, see the integration tests.
*/
package catalog
