package main

import (
	"fmt"

	"PriceSlider/internal/notifier"

	"github.com/spf13/cobra"
)

func ticksCmd(opts *globalOptions) *cobra.Command {
	var lower, upper float64

	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Print the tick strip and price label for a selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newSession(opts, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			if !cmd.Flags().Changed("upper") {
				upper = s.Engine.MaxValue()
			}
			snap := s.Engine.SetSelectedRange(lower, upper)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, notifier.FormatTicks(s.Engine.Ticks()))
			fmt.Fprintln(out, notifier.FormatPriceLabel(snap.Price))
			return nil
		},
	}

	cmd.Flags().Float64Var(&lower, "lower", 0, "selected minimum value")
	cmd.Flags().Float64Var(&upper, "upper", 0, "selected maximum value (default: domain maximum)")
	return cmd
}
