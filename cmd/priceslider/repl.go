package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func replCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read commands from stdin and print replies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, log, err := newSession(opts, nil)
			if err != nil {
				return err
			}
			defer s.Close()
			log.Info("repl started, type help for commands")

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "quit" || line == "exit" {
					break
				}
				fmt.Fprintln(out, s.HandleCommand(line))
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		},
	}
}
