package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/shelly/internal/patterns"
)

// createTestCommand creates the pattern testing command
func createTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test <pattern> <command>",
		Short: "Test if a pattern matches a command",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			matched, err := patterns.Test(args[0], args[1])
			if err != nil {
				return err
			}

			if matched {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "[✓] Pattern matches!")
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "[✗] Pattern does not match")
			}
			return nil
		},
	}
}
