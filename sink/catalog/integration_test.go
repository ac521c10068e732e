//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/caarlos0/env/v11"
	"github.com/go-openapi/strfmt"
	"github.com/joho/godotenv"

	"github.com/suparena/fixturestore/fixtures"
	"github.com/suparena/fixturestore/sink"
	"github.com/suparena/fixturestore/storagemodels"
)

var _ sink.RecordSink[fixtures.RunManifest] = (*Store[fixtures.RunManifest])(nil)

func getRunStore(t *testing.T) *Store[fixtures.RunManifest] {
	t.Helper()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("failed to parse catalog config: %v", err)
	}
	if cfg.TableName == "" {
		t.Skip("AWS_DDB_TABLE not set, skipping catalog integration test")
	}

	store, err := New[fixtures.RunManifest](cfg)
	if err != nil {
		t.Fatalf("failed to create catalog store: %v", err)
	}
	return store
}

func TestCatalogAppendGetDelete(t *testing.T) {
	store := getRunStore(t)
	ctx := context.Background()

	now := strfmt.DateTime(time.Now().UTC())
	manifest := fixtures.RunManifest{
		ID:              "it-run-001",
		CreatedAt:       now,
		Events:          100,
		SamplesPerEvent: fixtures.SamplesPerEvent,
		OutputFile:      "events.cbor",
		Checksum:        "deadbeef",
	}

	if err := store.Append(ctx, manifest); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := store.GetOne(ctx, "it-run-001")
	if err != nil {
		t.Fatalf("GetOne: %v", err)
	}
	if got == nil {
		t.Fatal("GetOne returned nil for just-appended manifest")
	}
	if got.Events != 100 || got.Checksum != "deadbeef" {
		t.Errorf("round-tripped manifest mismatch: %+v", got)
	}

	if err := store.Delete(ctx, "it-run-001"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestCatalogListRange(t *testing.T) {
	store := getRunStore(t)
	ctx := context.Background()

	start := time.Now().UTC().Add(-time.Hour)
	now := strfmt.DateTime(time.Now().UTC())

	for _, id := range []string{"it-range-a", "it-range-b"} {
		m := fixtures.RunManifest{
			ID:              id,
			CreatedAt:       now,
			Events:          10,
			SamplesPerEvent: fixtures.SamplesPerEvent,
			OutputFile:      id + ".cbor",
		}
		if err := store.Append(ctx, m); err != nil {
			t.Fatalf("Append %s: %v", id, err)
		}
		defer store.Delete(ctx, id)
	}

	runs, err := store.ListRange(ctx, RunPartitionKey, start, time.Now().UTC().Add(time.Hour))
	if err != nil {
		t.Fatalf("ListRange: %v", err)
	}
	if len(runs) < 2 {
		t.Errorf("ListRange returned %d runs, want at least 2", len(runs))
	}
}

func TestCatalogStream(t *testing.T) {
	store := getRunStore(t)
	ctx := context.Background()

	var cfg Config
	_ = env.Parse(&cfg)

	params := &storagemodels.QueryParams{
		TableName:              cfg.TableName,
		KeyConditionExpression: "PK = :pk",
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: RunPartitionKey},
		},
	}

	count := 0
	for result := range store.Stream(ctx, params, storagemodels.WithPageSize(10)) {
		if result.Error != nil {
			t.Fatalf("stream error: %v", result.Error)
		}
		count++
	}
	t.Logf("streamed %d run manifests", count)
}
