package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/shelly/internal/examples"
)

// createExamplesCommand lists the example sets or prints one of them.
func createExamplesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "examples [name]",
		Short: "List example command sets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, set := range examples.All() {
					_, _ = fmt.Fprintf(out, "%-18s %s (%d commands)\n", set.Slug(), set.Name, len(set.Commands))
				}
				return nil
			}

			set, err := examples.Lookup(strings.Join(args, " "))
			if err != nil {
				return err
			}
			for _, line := range set.Commands {
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
