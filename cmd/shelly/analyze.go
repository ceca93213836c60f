package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/shelly/internal/examples"
	"github.com/wizzomafizzo/shelly/internal/input"
	"github.com/wizzomafizzo/shelly/internal/logging"
	"github.com/wizzomafizzo/shelly/internal/patterns"
	"github.com/wizzomafizzo/shelly/internal/report"
	"github.com/wizzomafizzo/shelly/internal/transcript"
)

// createAnalyzeCommand creates the command that prints a report for each line.
func createAnalyzeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [command...]",
		Short: "Analyze commands and show generated patterns",
		Long: "Analyze shell commands given as arguments, read from a file, a Claude Code " +
			"transcript, an example set or stdin, and show the generated patterns.",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.analyze(cmd, args)
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout(), results)
		},
	}

	addInputFlags(cmd)
	return cmd
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Read commands from a file, one per line")
	cmd.Flags().StringP("transcript", "t", "", "Read Bash commands from a Claude Code transcript (JSONL)")
	cmd.Flags().StringP("example", "e", "", "Analyze a built-in example set")
	cmd.Flags().StringSlice("family", nil, "Only keep commands of these families (git, docker, ...)")
	addSettingsFlags(cmd)
}

func addSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("whitespace", "w", false, "Allow whitespace in paths to vary")
	cmd.Flags().Bool("fixed", false, "Anchor patterns to match the exact command")
}

// analyze collects the command lines for cmd and runs the generator over them.
func (a *app) analyze(cmd *cobra.Command, args []string) ([]patterns.ParsedCommand, error) {
	lines, err := a.collectLines(cmd, args)
	if err != nil {
		return nil, err
	}

	settings, err := a.settings(cmd)
	if err != nil {
		return nil, err
	}

	keep, err := familyFilter(cmd)
	if err != nil {
		return nil, err
	}

	results := patterns.Generate(lines, settings)
	if keep != nil {
		results = filterFamilies(results, keep)
	}

	summary := report.Summarize(results)
	logging.Get(cmd.Context()).Info().
		Int("total", summary.Total).
		Int("high_confidence", summary.HighConfidence).
		Float64("average_confidence", summary.Average).
		Bool("allow_whitespace", settings.AllowWhitespaceInPaths).
		Bool("fixed_paths", settings.UseFixedPaths).
		Msg("Analyzed commands")

	return results, nil
}

// familyFilter parses the --family flag. A nil result keeps every family.
func familyFilter(cmd *cobra.Command) (map[patterns.Family]bool, error) {
	tags, err := cmd.Flags().GetStringSlice("family")
	if err != nil {
		return nil, fmt.Errorf("failed to get family flag: %w", err)
	}
	if len(tags) == 0 {
		return nil, nil
	}

	keep := make(map[patterns.Family]bool, len(tags))
	for _, tag := range tags {
		family, err := patterns.ParseFamily(tag)
		if err != nil {
			return nil, err
		}
		keep[family] = true
	}
	return keep, nil
}

// filterFamilies keeps the results whose family is in keep. IDs keep their
// batch positions.
func filterFamilies(results []patterns.ParsedCommand, keep map[patterns.Family]bool) []patterns.ParsedCommand {
	filtered := make([]patterns.ParsedCommand, 0, len(results))
	for _, r := range results {
		if keep[r.Family] {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// settings starts from the config file and applies explicitly set flags.
func (a *app) settings(cmd *cobra.Command) (patterns.Settings, error) {
	settings := a.cfg.Settings.Analysis()

	if cmd.Flags().Changed("whitespace") {
		v, err := cmd.Flags().GetBool("whitespace")
		if err != nil {
			return settings, fmt.Errorf("failed to get whitespace flag: %w", err)
		}
		settings.AllowWhitespaceInPaths = v
	}

	if cmd.Flags().Changed("fixed") {
		v, err := cmd.Flags().GetBool("fixed")
		if err != nil {
			return settings, fmt.Errorf("failed to get fixed flag: %w", err)
		}
		settings.UseFixedPaths = v
	}

	return settings, nil
}

// collectLines reads lines from exactly one source: an example set, a
// transcript, a file, the arguments or stdin.
func (a *app) collectLines(cmd *cobra.Command, args []string) ([]string, error) {
	example, _ := cmd.Flags().GetString("example")
	transcriptPath, _ := cmd.Flags().GetString("transcript")
	file, _ := cmd.Flags().GetString("file")

	sources := 0
	for _, set := range []bool{example != "", transcriptPath != "", file != "", len(args) > 0} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return nil, errors.New("use only one of arguments, --file, --transcript or --example")
	}

	switch {
	case example != "":
		set, err := examples.Lookup(example)
		if err != nil {
			return nil, err
		}
		return set.Commands, nil
	case transcriptPath != "":
		lines, err := transcript.ExtractCommands(cmd.Context(), a.fs, transcriptPath)
		if err != nil {
			return nil, err
		}
		if len(lines) == 0 {
			return nil, fmt.Errorf("%s: %w", transcriptPath, input.ErrNoCommands)
		}
		return lines, nil
	case file != "":
		return input.FromFile(a.fs, file)
	case len(args) > 0:
		return input.FromArgs(args)
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return nil, fmt.Errorf("%w: pass commands as arguments, use --file, or pipe them on stdin", input.ErrNoCommands)
	}
	return input.FromReader(in)
}
