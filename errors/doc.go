/*
Package errors provides semantic error types for the FixtureStore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound      = errors.New("record not found")
	    ErrAlreadyExists = errors.New("record already exists")
	    ErrInvalidInput  = errors.New("invalid input")
	    ErrSinkClosed    = errors.New("sink is closed")
	    ErrNoIndexMap    = errors.New("no index map found for type")
	)

Usage:

	// Check error type
	run, err := catalog.GetOne(ctx, "run-0042")
	if err != nil {
	    if errors.IsNotFound(err) {
	        // Handle not found case
	        return nil, fmt.Errorf("run %s does not exist", "run-0042")
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNotFoundError("RunManifest", "run-0042")
	err := errors.NewValidationError("outputFile", "path is empty")
	err := errors.NewSinkClosedError("events.cbor", "append")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
