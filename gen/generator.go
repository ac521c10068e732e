/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package gen

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-openapi/strfmt"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/suparena/fixturestore/fixtures"
	"github.com/suparena/fixturestore/sink"
	"github.com/suparena/fixturestore/sink/cborfile"
)

// Config holds the generator settings. Defaults match the canonical
// fixture batch: 100 events of 3 samples, counter seeded at 0.
type Config struct {
	OutputFile   string `env:"FIXTURE_OUTPUT" envDefault:"events.cbor"`
	ManifestFile string `env:"FIXTURE_MANIFEST"`
	Events       int    `env:"FIXTURE_EVENTS" envDefault:"100"`
	Seed         int    `env:"FIXTURE_SEED" envDefault:"0"`
}

// ConfigFromEnv reads the generator configuration from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse generator config: %w", err)
	}
	return cfg, nil
}

// manifestPath returns the explicit manifest path or one derived from
// the output file.
func (c Config) manifestPath() string {
	if c.ManifestFile != "" {
		return c.ManifestFile
	}
	return c.OutputFile + ".manifest.yaml"
}

// Generator writes one batch of counter-driven events to a fixture file
// and records a manifest of the run.
type Generator struct {
	cfg     Config
	log     zerolog.Logger
	runSink sink.RecordSink[fixtures.RunManifest]
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the run logger.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// WithRunSink additionally appends the run manifest to the given sink,
// typically the DynamoDB run catalog.
func WithRunSink(s sink.RecordSink[fixtures.RunManifest]) Option {
	return func(g *Generator) { g.runSink = s }
}

// New creates a Generator with the given configuration.
func New(cfg Config, opts ...Option) *Generator {
	g := &Generator{
		cfg: cfg,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run generates the configured number of events, each seeded with its
// iteration index as identifier and a single counter threaded across
// the whole batch. It returns the manifest of what was written.
func (g *Generator) Run(ctx context.Context) (*fixtures.RunManifest, error) {
	started := time.Now().UTC()

	w, err := cborfile.Open[fixtures.Event](g.cfg.OutputFile)
	if err != nil {
		return nil, err
	}

	counter := g.cfg.Seed
	for i := 0; i < g.cfg.Events; i++ {
		var ev fixtures.Event
		ev, counter = fixtures.NewEvent(int64(i), counter)
		if err := w.Append(ctx, ev); err != nil {
			w.Close()
			return nil, fmt.Errorf("failed to append event %d: %w", i, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	checksum, err := fileChecksum(g.cfg.OutputFile)
	if err != nil {
		return nil, err
	}

	manifest := &fixtures.RunManifest{
		ID:              "run-" + started.Format("20060102T150405Z"),
		CreatedAt:       strfmt.DateTime(started),
		Events:          g.cfg.Events,
		SamplesPerEvent: fixtures.SamplesPerEvent,
		OutputFile:      g.cfg.OutputFile,
		Checksum:        checksum,
	}

	if err := writeManifest(g.cfg.manifestPath(), manifest); err != nil {
		return nil, err
	}

	if g.runSink != nil {
		if err := g.runSink.Append(ctx, *manifest); err != nil {
			return nil, fmt.Errorf("failed to catalog run: %w", err)
		}
	}

	g.log.Info().
		Str("run", manifest.ID).
		Int("events", g.cfg.Events).
		Str("file", g.cfg.OutputFile).
		Str("checksum", checksum).
		Int("finalCounter", counter).
		Msg("fixture run complete")

	return manifest, nil
}

// fileChecksum returns the hex-encoded SHA-256 of the file at path.
func fileChecksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for checksum: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to checksum %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// manifestDoc is the YAML shape of a run manifest.
type manifestDoc struct {
	ID              string `yaml:"id"`
	CreatedAt       string `yaml:"createdAt"`
	Events          int    `yaml:"events"`
	SamplesPerEvent int    `yaml:"samplesPerEvent"`
	OutputFile      string `yaml:"outputFile"`
	Checksum        string `yaml:"checksum"`
}

// writeManifest serializes the manifest as YAML.
func writeManifest(path string, m *fixtures.RunManifest) error {
	doc := manifestDoc{
		ID:              m.ID,
		CreatedAt:       m.CreatedAt.String(),
		Events:          m.Events,
		SamplesPerEvent: m.SamplesPerEvent,
		OutputFile:      m.OutputFile,
		Checksum:        m.Checksum,
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
