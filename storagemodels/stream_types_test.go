/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"testing"
	"time"
)

func TestDefaultStreamOptions(t *testing.T) {
	opts := DefaultStreamOptions()

	if opts.BufferSize != 100 {
		t.Errorf("BufferSize = %d, want 100", opts.BufferSize)
	}
	if opts.PageSize != 100 {
		t.Errorf("PageSize = %d, want 100", opts.PageSize)
	}
	if opts.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", opts.MaxRetries)
	}
	if opts.RetryBackoff != time.Second {
		t.Errorf("RetryBackoff = %v, want 1s", opts.RetryBackoff)
	}
}

func TestStreamOptionsApply(t *testing.T) {
	opts := DefaultStreamOptions()
	for _, opt := range []StreamOption{
		WithBufferSize(10),
		WithPageSize(25),
		WithMaxRetries(5),
		WithRetryBackoff(2 * time.Second),
	} {
		opt(&opts)
	}

	if opts.BufferSize != 10 || opts.PageSize != 25 || opts.MaxRetries != 5 {
		t.Errorf("options not applied: %+v", opts)
	}
	if opts.RetryBackoff != 2*time.Second {
		t.Errorf("RetryBackoff = %v, want 2s", opts.RetryBackoff)
	}
}
