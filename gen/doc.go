/*
Package gen drives fixture generation: it opens the fixture file sink,
writes a batch of counter-driven events, and records a manifest of the
run.

	cfg, _ := gen.ConfigFromEnv()
	g := gen.New(cfg, gen.WithLogger(logger))
	manifest, err := g.Run(ctx)

The whole run is a short synchronous batch: open sink, loop append,
close sink. Each event takes its iteration index as identifier, and a
single counter is threaded through every sample in the batch.
*/
package gen
