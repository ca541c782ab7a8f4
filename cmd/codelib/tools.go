package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/nrtyler/codelib/clock"
	"github.com/nrtyler/codelib/fsx"
	"github.com/nrtyler/codelib/textx"
	"github.com/spf13/cobra"
)

func (a *app) newCountdownCmd() *cobra.Command {
	var seconds int
	var tick time.Duration
	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Count down a number of seconds, printing each step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cd, err := clock.NewCountdown(seconds, clock.WithTick(tick))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			cd.OnComplete(func() {
				fmt.Fprintf(out, "countdown of %d complete\n", cd.Starting())
			})

			a.logger.Info().Int("seconds", seconds).Dur("tick", tick).Msg("countdown started")
			return cd.Start(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&seconds, "seconds", 10, "Starting value")
	cmd.Flags().DurationVar(&tick, "tick", time.Second, "Time between steps")
	return cmd
}

func (a *app) newTitleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "title [WORDS...]",
		Short: "Print the words in title case",
		RunE: func(cmd *cobra.Command, args []string) error {
			title := textx.OrInvalidTitle(textx.Title(strings.Join(args, " ")))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), title)
			return err
		},
	}
}

func (a *app) newCopyCmd() *cobra.Command {
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "copy SRC DST",
		Short: "Copy a directory tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range args {
				if err := fsx.ValidatePath(p); err != nil {
					return err
				}
			}
			if err := fsx.CopyTree(args[0], args[1], overwrite); err != nil {
				return err
			}
			a.logger.Info().Str("src", args[0]).Str("dst", args[1]).Msg("tree copied")
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace files that already exist")
	return cmd
}
