/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package fixtures

import "github.com/go-openapi/strfmt"

// RunManifest describes one generator run. It is written as YAML next to
// the fixture file and may be cataloged in a run catalog for lookup.
type RunManifest struct {

	// Unique identifier for the run.
	// Required: true
	ID string `json:"Id" dynamodbav:"Id"`

	// Timestamp when the run started.
	// Format: date-time
	CreatedAt strfmt.DateTime `json:"CreatedAt" dynamodbav:"CreatedAt"`

	// Number of events written.
	Events int `json:"Events" dynamodbav:"Events"`

	// Number of samples per event.
	SamplesPerEvent int `json:"SamplesPerEvent" dynamodbav:"SamplesPerEvent"`

	// Path of the fixture file produced by the run.
	OutputFile string `json:"OutputFile" dynamodbav:"OutputFile"`

	// Hex-encoded SHA-256 of the fixture file.
	Checksum string `json:"Checksum" dynamodbav:"Checksum"`
}
