// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ik5/wavglitch/internal/cli"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "An error occurred:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := cli.NewOptions()

	cmd := &cobra.Command{
		Use:   "wavglitch <input>",
		Short: "Divide audio into segments and process them to create glitch-like effects",
		Long: `wavglitch cuts an audio file into segments the length of a note value at a
given tempo, then randomly silences, swaps, reverses or repeats them.

Input may be WAV, AIFF, MP3 or Ogg Vorbis; output is always WAV at the
input's bit depth.`,
		Example: `  Process in.wav, dividing it into segments with a length of a 1/32 note in
  120 BPM and output result to processed.wav with 10% chance of repeating a
  segment up to 20 times. Use defaults for other options.

  $ wavglitch in.wav -o processed.wav -t 120 -l 1/32 -p 0.1 -n 20`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: opts.Level(),
			}))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return cli.Run(ctx, opts, logger)
		},
	}

	opts.Register(cmd.Flags())

	return cmd
}
