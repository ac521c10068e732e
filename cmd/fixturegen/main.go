/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/suparena/fixturestore"
	"github.com/suparena/fixturestore/fixtures"
	"github.com/suparena/fixturestore/gen"
	"github.com/suparena/fixturestore/sink/catalog"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := fixturestore.GetVersionInfo()
		fmt.Printf("FixtureStore fixturegen version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file found, proceeding with environment variables")
	}

	cfg, err := gen.ConfigFromEnv()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	sinks := fixturestore.NewMultiTypeSinks()

	var catCfg catalog.Config
	if err := env.Parse(&catCfg); err != nil {
		logger.Fatal().Err(err).Msg("invalid catalog configuration")
	}
	if catCfg.TableName != "" {
		store, err := catalog.New[fixtures.RunManifest](catCfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to run catalog")
		}
		if err := fixturestore.RegisterSink[fixtures.RunManifest](sinks, "catalog", store); err != nil {
			logger.Fatal().Err(err).Msg("failed to register run catalog sink")
		}
	}

	opts := []gen.Option{gen.WithLogger(logger)}
	if runs, err := fixturestore.GetSink[fixtures.RunManifest](sinks, "catalog"); err == nil {
		opts = append(opts, gen.WithRunSink(runs))
	}

	g := gen.New(cfg, opts...)
	if _, err := g.Run(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("fixture run failed")
	}
}
