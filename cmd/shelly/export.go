package main

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/shelly/internal/export"
	"github.com/wizzomafizzo/shelly/internal/logging"
)

// createExportCommand creates the command that renders patterns in an
// editor or assistant format.
func createExportCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [command...]",
		Short: "Export generated patterns",
		Long: "Export generated patterns as " + strings.Join(export.Names(), ", ") +
			". The default format comes from the config file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExport(cmd, args)
		},
	}

	addInputFlags(cmd)
	cmd.Flags().String("format", "", "Export format (default from config)")
	cmd.Flags().StringP("output", "o", "", "Write the export to a file")
	cmd.Flags().Bool("copy", false, "Copy the export to the clipboard")
	cmd.MarkFlagsMutuallyExclusive("output", "copy")

	return cmd
}

func (a *app) runExport(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("format")
	if name == "" {
		name = a.cfg.Export.Format
	}

	format, err := export.Lookup(name)
	if err != nil {
		return err
	}

	results, err := a.analyze(cmd, args)
	if err != nil {
		return err
	}

	out, err := format.Render(results)
	if err != nil {
		return err
	}

	logging.Get(cmd.Context()).Debug().
		Str("format", format.Name).
		Int("bytes", len(out)).
		Msg("Rendered export")

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := afero.WriteFile(a.fs, path, []byte(out+"\n"), 0o600); err != nil {
			return fmt.Errorf("failed to write export to %s: %w", path, err)
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d patterns to %s\n", len(results), path)
		return nil
	}

	if copyOut, _ := cmd.Flags().GetBool("copy"); copyOut {
		if err := a.copyText(cmd.Context(), out); err == nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Copied %d patterns to clipboard\n", len(results))
			return nil
		}
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Clipboard unavailable, printing instead")
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
