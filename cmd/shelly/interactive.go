package main

import (
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/shelly/internal/input"
	"github.com/wizzomafizzo/shelly/internal/patterns"
	"github.com/wizzomafizzo/shelly/internal/prompt"
	"github.com/wizzomafizzo/shelly/internal/report"
)

// createInteractiveCommand reads commands from the terminal and analyzes them.
func createInteractiveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Enter commands interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prompter := a.newPrompter()
			lines, err := prompt.MultiLineInputWithPrompter(prompter, cmd.OutOrStdout(), "Enter commands, one per line")
			_ = prompter.Close()
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				return input.ErrNoCommands
			}

			settings, err := a.settings(cmd)
			if err != nil {
				return err
			}

			return report.Render(cmd.OutOrStdout(), patterns.Generate(lines, settings))
		},
	}

	addSettingsFlags(cmd)
	return cmd
}
