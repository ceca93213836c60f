package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/shelly/internal/patterns"
)

// createRulesCommand lists the recognizer catalog in match order.
func createRulesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the command families shelly recognizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for i, rule := range patterns.Catalog() {
				_, _ = fmt.Fprintf(out, "[%d] %-16s %s\n", i+1, rule.Family, rule.Pattern())
			}
			_, _ = fmt.Fprintf(out, "    %-16s anything else, escaped literally\n", patterns.FamilyNone)
			return nil
		},
	}

	cmd.AddCommand(createRulesGenerateCommand(a))
	return cmd
}

// createRulesGenerateCommand creates the pattern generation subcommand
func createRulesGenerateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <command...>",
		Short: "Generate a regex pattern from a single command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := a.settings(cmd)
			if err != nil {
				return err
			}

			pattern := patterns.GeneratePattern(strings.Join(args, " "), settings)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), pattern)
			return nil
		},
	}

	addSettingsFlags(cmd)
	return cmd
}
