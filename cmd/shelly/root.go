package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/shelly/internal/clipboard"
	"github.com/wizzomafizzo/shelly/internal/config"
	"github.com/wizzomafizzo/shelly/internal/constants"
	"github.com/wizzomafizzo/shelly/internal/logging"
	"github.com/wizzomafizzo/shelly/internal/project"
	"github.com/wizzomafizzo/shelly/internal/prompt"
	"github.com/wizzomafizzo/shelly/internal/storage"
)

// skipConfigAnnotation marks commands that run without loading a config file.
const skipConfigAnnotation = "shelly/skip-config"

// app carries the dependencies shared by all commands.
type app struct {
	fs          afero.Fs
	logWriter   io.Writer
	newPrompter func() prompt.Prompter
	copyText    func(ctx context.Context, text string) error
	findRoot    func() (string, error)

	cfg        *config.Config
	configPath string
}

func newApp() *app {
	return &app{
		fs:          afero.NewOsFs(),
		newPrompter: prompt.NewLinerPrompter,
		copyText:    clipboard.Copy,
		findRoot:    project.FindRoot,
	}
}

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	return newRootCommand(newApp())
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shelly",
		Short: "Generate regex patterns from shell commands",
		Long: "Shelly analyzes shell command lines, classifies them by tool family and " +
			"generates regex patterns that match them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		createAnalyzeCommand(a),
		createExportCommand(a),
		createTestCommand(),
		createRulesCommand(a),
		createExamplesCommand(),
		createPromptCommand(a),
		createInteractiveCommand(a),
		createInitCommand(a),
	)

	return rootCmd
}

// setup loads the config and attaches a logger to the command context.
func (a *app) setup(cmd *cobra.Command) error {
	root, err := a.findRoot()
	if err != nil {
		return fmt.Errorf("failed to find project root: %w", err)
	}

	configFlag, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, path := config.DefaultConfig(), ""
	if cmd.Annotations[skipConfigAnnotation] == "" {
		cfg, path, err = a.loadConfig(configFlag, root)
		if err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.configPath = path

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = logging.DebugLevel
	}

	ctx, err := logging.New(cmd.Context(), a.fs, logging.Config{
		Writer:    a.logWriter,
		ProjectID: filepath.Base(root),
		Level:     level,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	ctx = logging.WithRun(ctx, uuid.NewString())

	logging.Get(ctx).Debug().
		Str("command", cmd.CommandPath()).
		Str("config_path", path).
		Str("project_root", root).
		Msg("Starting command")

	cmd.SetContext(ctx)
	return nil
}

// loadConfig loads an explicit config file, or the first of the project and
// user config files that exists, or the defaults. The returned path is where
// the config came from, empty for defaults.
func (a *app) loadConfig(explicit, root string) (*config.Config, string, error) {
	if explicit != "" {
		cfg, err := config.Load(a.fs, explicit)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, explicit, nil
	}

	path, found := config.Resolve(a.fs,
		filepath.Join(root, constants.ConfigFilename),
		storage.New(a.fs).GetConfigPath(),
	)
	if !found {
		return config.DefaultConfig(), "", nil
	}

	cfg, err := config.Load(a.fs, path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, path, nil
}
