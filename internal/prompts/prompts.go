// Package prompts holds the chat prompts used to pull command lists out of
// assistant conversations before analysis.
package prompts

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

const suffix = ".prompt.md"

//go:embed assets/*.prompt.md
var assets embed.FS

// ErrUnknownPrompt is returned when no embedded prompt has the given name.
var ErrUnknownPrompt = errors.New("unknown prompt")

// Get returns the prompt text for name, e.g. "extract_chat". Dashes are
// accepted in place of underscores.
func Get(name string) (string, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")

	data, err := assets.ReadFile(path.Join("assets", key+suffix))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w %q (available: %s)", ErrUnknownPrompt, name, strings.Join(Names(), ", "))
		}
		return "", fmt.Errorf("failed to read prompt %s: %w", key, err)
	}
	return string(data), nil
}

// Names lists the embedded prompts in sorted order.
func Names() []string {
	entries, err := assets.ReadDir("assets")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), suffix); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
