package main

import (
	"fmt"

	"PriceSlider/internal/notifier"
	"PriceSlider/internal/recorder"
	"PriceSlider/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func replayCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay a gesture script and print every value change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := session.LoadScript(args[0])
			if err != nil {
				return err
			}

			rec := recorder.NewMemoryRecorder()
			s, log, err := newSession(opts, rec)
			if err != nil {
				return err
			}
			defer s.Close()

			runErr := s.Run(sc)

			out := cmd.OutOrStdout()
			for i, v := range rec.ValueChanges() {
				fmt.Fprintf(out, "%3d %-5s %s\n", i+1, v.Tracking, notifier.FormatPriceLabel(v.Price))
			}
			fmt.Fprint(out, s.Report())

			if runErr != nil {
				return fmt.Errorf("replay %s: %w", args[0], runErr)
			}
			log.Info("replay finished",
				zap.String("script", sc.Name),
				zap.Int("value_changes", len(rec.ValueChanges())))
			return nil
		},
	}
}
