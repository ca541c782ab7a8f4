package main

import (
	"io"

	"github.com/nrtyler/codelib/generate"
	"github.com/nrtyler/codelib/internal/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand.
type app struct {
	cfg    Config
	gen    *generate.Generator
	logger zerolog.Logger
}

func newRootCmd(cfg Config, logOut io.Writer) *cobra.Command {
	a := &app{cfg: cfg}

	root := &cobra.Command{
		Use:   "codelib",
		Short: "Utility toolbox: random data, dice, countdowns, file and codec helpers",
		Long: `codelib bundles small utilities behind one command.

Random output is reproducible with --seed (or CODELIB_SEED).
Logs go to stderr; results go to stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Configure(log.Config{Level: a.cfg.LogLevel, Output: logOut})
			a.logger = log.WithComponent(cmd.Name())

			if a.cfg.Seed != 0 {
				a.gen = generate.New(a.cfg.Seed)
			} else {
				a.gen = generate.NewRandom()
			}
			a.logger.Debug().Uint64("seed", a.cfg.Seed).Msg("generator ready")
			return nil
		},
	}

	root.PersistentFlags().Uint64Var(&a.cfg.Seed, "seed", cfg.Seed, "Seed for reproducible output (0 = random)")
	root.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	root.AddCommand(
		a.newIntsCmd(),
		a.newFloatsCmd(),
		a.newBytesCmd(),
		a.newCharsCmd(),
		a.newDigitsCmd(),
		a.newNameCmd(),
		a.newRollCmd(),
		a.newUUIDCmd(),
		a.newCountdownCmd(),
		a.newTitleCmd(),
		a.newCopyCmd(),
		a.newConvertCmd(),
	)
	return root
}
