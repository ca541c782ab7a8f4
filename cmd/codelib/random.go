package main

import (
	"fmt"

	"github.com/nrtyler/codelib/generate"
	"github.com/nrtyler/codelib/verify"
	"github.com/spf13/cobra"
)

func (a *app) newIntsCmd() *cobra.Command {
	var min, max, count int
	cmd := &cobra.Command{
		Use:   "ints",
		Short: "Print random integers in [min, max)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printNumbers(cmd, a, generate.BetweenN(min, max, count))
		},
	}
	cmd.Flags().IntVar(&min, "min", 0, "Inclusive lower bound")
	cmd.Flags().IntVar(&max, "max", 100, "Exclusive upper bound")
	cmd.Flags().IntVar(&count, "count", 1, "How many values to print")
	return cmd
}

func (a *app) newFloatsCmd() *cobra.Command {
	var min, max float64
	var count int
	cmd := &cobra.Command{
		Use:   "floats",
		Short: "Print random floats in [min, max)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printNumbers(cmd, a, generate.BetweenN(min, max, count))
		},
	}
	cmd.Flags().Float64Var(&min, "min", 0, "Inclusive lower bound")
	cmd.Flags().Float64Var(&max, "max", 1, "Exclusive upper bound")
	cmd.Flags().IntVar(&count, "count", 1, "How many values to print")
	return cmd
}

func (a *app) newBytesCmd() *cobra.Command {
	var min, max uint8
	var count int
	cmd := &cobra.Command{
		Use:   "bytes",
		Short: "Print random bytes; without bounds every value 0-255 can appear",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("min") && !cmd.Flags().Changed("max") {
				values, err := a.gen.Bytes(count)
				if err != nil {
					return err
				}
				return printValues(cmd, values)
			}
			return printNumbers(cmd, a, generate.BetweenN(min, max, count))
		},
	}
	cmd.Flags().Uint8Var(&min, "min", 0, "Inclusive lower bound")
	cmd.Flags().Uint8Var(&max, "max", 255, "Exclusive upper bound")
	cmd.Flags().IntVar(&count, "count", 1, "How many values to print")
	return cmd
}

func printNumbers[T generate.Number](cmd *cobra.Command, a *app, b generate.Bundle[T]) error {
	values, err := generate.Array(a.gen, b)
	if err != nil {
		return err
	}
	result := verify.FromBundle(b).Array(values)
	a.logger.Debug().
		Int("count", len(values)).
		Stringer("verification", result).
		Msg("generated values")
	return printValues(cmd, values)
}

func printValues[T any](cmd *cobra.Command, values []T) error {
	out := cmd.OutOrStdout()
	for _, v := range values {
		if _, err := fmt.Fprintln(out, v); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) newCharsCmd() *cobra.Command {
	var letterCase string
	var count int
	cmd := &cobra.Command{
		Use:   "chars",
		Short: "Print random ASCII letters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				runes []rune
				err   error
			)
			switch letterCase {
			case "upper":
				runes, err = a.gen.Uppers(count)
			case "lower":
				runes, err = a.gen.Lowers(count)
			case "any":
				runes, err = a.gen.Letters(count)
			default:
				return fmt.Errorf("unknown case %q (want upper, lower or any)", letterCase)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(runes))
			return err
		},
	}
	cmd.Flags().StringVar(&letterCase, "case", "any", "Letter case: upper, lower or any")
	cmd.Flags().IntVar(&count, "count", 10, "How many letters to print")
	return cmd
}

func (a *app) newDigitsCmd() *cobra.Command {
	var amount int
	var sign string
	cmd := &cobra.Command{
		Use:   "digits",
		Short: "Print a random decimal digit string and its parsed value",
		Long: `Print a random string of digits with no leading zero, followed by its
float64 value. Without --amount the digit count is random (1-308).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := a.gen.Digits()

			var (
				pair generate.Pair
				err  error
			)
			switch {
			case amount == 0 && sign == "random":
				pair, err = b.RandomPair()
			case sign == "positive":
				pair, err = b.PositivePair(amount)
			case sign == "negative":
				pair, err = b.NegativePair(amount)
			case sign == "random":
				pair, err = b.SignedPair(amount)
			default:
				return fmt.Errorf("unknown sign %q (want positive, negative or random)", sign)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g\n", pair.Text, pair.Value)
			return err
		},
	}
	cmd.Flags().IntVar(&amount, "amount", 0, "Number of digits (0 = random)")
	cmd.Flags().StringVar(&sign, "sign", "random", "Sign: positive, negative or random")
	return cmd
}

func (a *app) newNameCmd() *cobra.Command {
	var full bool
	var namesFile string
	cmd := &cobra.Command{
		Use:   "name",
		Short: "Print a random first name, or a full name with --full",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := generate.DefaultNames()
			if namesFile != "" {
				loaded, err := generate.LoadNames(namesFile)
				if err != nil {
					return err
				}
				names = loaded
			}
			names = names.WithGenerator(a.gen)

			var (
				name string
				err  error
			)
			if full {
				name, err = names.Full()
			} else {
				name, err = names.First()
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
			return err
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, `Print "First M. Last"`)
	cmd.Flags().StringVar(&namesFile, "names", a.cfg.NamesFile, `File of "First Last" lines`)
	return cmd
}

func (a *app) newRollCmd() *cobra.Command {
	var choices, count int
	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Roll an N-sided die; faces print as 1..N",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			faces := make([]int, 0, max(count, 0))
			for range count {
				v, err := a.gen.Roll(choices)
				if err != nil {
					return err
				}
				faces = append(faces, v+1)
			}
			return printValues(cmd, faces)
		},
	}
	cmd.Flags().IntVar(&choices, "choices", 6, "Number of sides")
	cmd.Flags().IntVar(&count, "count", 1, "How many rolls")
	return cmd
}

func (a *app) newUUIDCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Print random version 4 UUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for range count {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), a.gen.UUID()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 1, "How many UUIDs")
	return cmd
}
