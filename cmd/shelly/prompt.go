package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/shelly/internal/prompts"
)

// createPromptCommand prints or copies a chat extraction prompt.
func createPromptCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt [name]",
		Short: "Show prompts for extracting commands from chats",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, name := range prompts.Names() {
					_, _ = fmt.Fprintln(out, name)
				}
				return nil
			}

			text, err := prompts.Get(args[0])
			if err != nil {
				return err
			}

			if copyOut, _ := cmd.Flags().GetBool("copy"); copyOut {
				if err := a.copyText(cmd.Context(), text); err == nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Copied %s prompt to clipboard\n", args[0])
					return nil
				}
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Clipboard unavailable, printing instead")
			}

			_, _ = fmt.Fprint(out, text)
			return nil
		},
	}

	cmd.Flags().Bool("copy", false, "Copy the prompt to the clipboard")
	return cmd
}
