package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"pkt.systems/mdtype"
)

func newSimulateCmd() *cobra.Command {
	var (
		out      outputFlags
		minChunk int
		maxChunk int
		seed     uint64
	)
	delay := mdtype.DefaultDelay

	cmd := &cobra.Command{
		Use:   "simulate [inputs...]",
		Short: "Replay Markdown in random chunks with a delay, like a model typing",
		Long: `Replay Markdown from files, http(s) URLs or stdin in randomly sized chunks.

Each chunk holds between --min-chunk and --max-chunk characters and is
followed by --delay. Use --seed for a reproducible chunking.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if minChunk <= 0 || maxChunk < minChunk {
				return fmt.Errorf("invalid chunk range %d..%d", minChunk, maxChunk)
			}
			ctx := cmd.Context()
			var rng *rand.Rand
			if seed != 0 {
				rng = rand.New(rand.NewPCG(seed, seed))
			}
			return out.run(func(target mdtype.Target) error {
				reader, closer, err := openInputs(ctx, args, out.strict)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				if closer != nil {
					defer func() { _ = closer.Close() }()
				}
				chunks := 0
				err = mdtype.Simulate(ctx, mdtype.SimulateRequest{
					Reader:   reader,
					Target:   target,
					MinChunk: minChunk,
					MaxChunk: maxChunk,
					Delay:    delay,
					Rand:     rng,
					Options:  out.sessionOptions(),
					OnChunk: func(chunk string) {
						chunks++
						log.Debugf("chunk %d: %q", chunks, chunk)
					},
				})
				log.Infof("simulated %d chunks", chunks)
				return err
			})
		},
	}
	out.bind(cmd.Flags())
	cmd.Flags().IntVar(&minChunk, "min-chunk", mdtype.DefaultMinChunk, "Minimum characters per chunk")
	cmd.Flags().IntVar(&maxChunk, "max-chunk", mdtype.DefaultMaxChunk, "Maximum characters per chunk")
	cmd.Flags().DurationVar(&delay, "delay", mdtype.DefaultDelay, "Delay between chunks")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for chunk sizes (0 picks one)")

	return cmd
}
