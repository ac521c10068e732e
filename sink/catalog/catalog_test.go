/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"testing"

	"github.com/suparena/fixturestore/fixtures"
)

type keyedRecord struct {
	ID   string `dynamodbav:"Id"`
	Name string `dynamodbav:"Name"`
}

func TestExpandMacros(t *testing.T) {
	indexMap := map[string]string{
		"PK": "RUN",
		"SK": "RUN#{Id}",
	}
	rec := keyedRecord{ID: "run-0042", Name: "nightly"}

	expanded, err := expandMacros(indexMap, rec)
	if err != nil {
		t.Fatalf("expandMacros: %v", err)
	}
	if expanded["PK"] != "RUN" {
		t.Errorf("PK = %q, want RUN", expanded["PK"])
	}
	if expanded["SK"] != "RUN#run-0042" {
		t.Errorf("SK = %q, want RUN#run-0042", expanded["SK"])
	}
}

func TestExpandMacrosMissingField(t *testing.T) {
	indexMap := map[string]string{
		"PK": "RUN#{Missing}",
		"SK": "RUN#{Id}",
	}

	expanded, err := expandMacros(indexMap, keyedRecord{ID: "run-1"})
	if err != nil {
		t.Fatalf("expandMacros: %v", err)
	}
	// Unknown macros expand to the empty string.
	if expanded["PK"] != "RUN#" {
		t.Errorf("PK = %q, want RUN#", expanded["PK"])
	}
}

func TestExpandStringKey(t *testing.T) {
	indexMap := map[string]string{
		"PK": "RUN",
		"SK": "RUN#{Id}",
	}

	expanded := expandStringKey(indexMap, "run-7")
	if expanded["PK"] != "RUN" {
		t.Errorf("PK = %q, want RUN", expanded["PK"])
	}
	if expanded["SK"] != "RUN#run-7" {
		t.Errorf("SK = %q, want RUN#run-7", expanded["SK"])
	}
}

func TestBuildKeyFromExpanded(t *testing.T) {
	tests := []struct {
		name     string
		expanded map[string]string
		wantErr  bool
	}{
		{
			name:     "valid",
			expanded: map[string]string{"PK": "RUN", "SK": "RUN#run-1"},
			wantErr:  false,
		},
		{
			name:     "missing SK",
			expanded: map[string]string{"PK": "RUN"},
			wantErr:  true,
		},
		{
			name:     "empty PK",
			expanded: map[string]string{"PK": "", "SK": "RUN#run-1"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildKeyFromExpanded(tt.expanded)
			if (err != nil) != tt.wantErr {
				t.Errorf("buildKeyFromExpanded() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecordTypeName(t *testing.T) {
	if got := recordTypeName[fixtures.RunManifest](); got != "RunManifest" {
		t.Errorf("recordTypeName = %q, want RunManifest", got)
	}
	if got := recordTypeName[keyedRecord](); got != "keyedRecord" {
		t.Errorf("recordTypeName = %q, want keyedRecord", got)
	}
}
