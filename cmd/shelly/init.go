package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/shelly/internal/config"
	"github.com/wizzomafizzo/shelly/internal/constants"
	"github.com/wizzomafizzo/shelly/internal/logging"
	"github.com/wizzomafizzo/shelly/internal/storage"
)

// createInitCommand writes a default config file.
func createInitCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		Long: "Create a default shelly.yml in the project root, the path given with " +
			"--config, or the user config directory with --global.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := a.initPath(cmd)
			if err != nil {
				return err
			}

			force, _ := cmd.Flags().GetBool("force")
			if err := config.DefaultConfig().Save(a.fs, path, force); err != nil {
				if errors.Is(err, config.ErrConfigExists) {
					return fmt.Errorf("%w (use --force to overwrite)", err)
				}
				return err
			}

			logging.Get(cmd.Context()).Info().Str("config_path", path).Msg("Wrote default config")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cmd.Flags().Bool("global", false, "Write the user config instead of the project config")
	return cmd
}

func (a *app) initPath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, nil
	}

	if global, _ := cmd.Flags().GetBool("global"); global {
		return storage.New(a.fs).GetConfigPath(), nil
	}

	root, err := a.findRoot()
	if err != nil {
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	return filepath.Join(root, constants.ConfigFilename), nil
}
