// Package export renders analysis results into formats that can be pasted
// into editor and assistant settings.
package export

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/wizzomafizzo/shelly/internal/patterns"
)

// ErrUnknownFormat is returned when a format name is not registered.
var ErrUnknownFormat = errors.New("unknown export format")

// Format is a named renderer for a batch of parsed commands.
type Format struct {
	render      func(cmds []patterns.ParsedCommand, now time.Time) (string, error)
	Name        string
	Description string
}

// Render formats the commands using the current time where a timestamp is
// embedded.
func (f Format) Render(cmds []patterns.ParsedCommand) (string, error) {
	return f.RenderAt(cmds, time.Now())
}

// RenderAt formats the commands with a fixed generation time.
func (f Format) RenderAt(cmds []patterns.ParsedCommand, now time.Time) (string, error) {
	out, err := f.render(cmds, now)
	if err != nil {
		return "", fmt.Errorf("failed to render %s export: %w", f.Name, err)
	}
	return out, nil
}

var formats = map[string]Format{
	"vscode": {
		Name:        "vscode",
		Description: "Visual Studio Code settings.json snippet",
		render:      renderVSCode,
	},
	"cursor": {
		Name:        "cursor",
		Description: "Cursor AI patterns configuration (YAML)",
		render:      renderCursor,
	},
	"codex": {
		Name:        "codex",
		Description: "JavaScript regex literal array",
		render:      renderCodex,
	},
	"json": {
		Name:        "json",
		Description: "Structured JSON with components and confidence",
		render:      renderJSON,
	},
	"plain": {
		Name:        "plain",
		Description: "One regex per line",
		render:      renderPlain,
	},
}

// DefaultFormat is used when no format is configured.
const DefaultFormat = "plain"

// Lookup returns the format registered under name, ignoring case.
func Lookup(name string) (Format, error) {
	f, ok := formats[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Format{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownFormat, name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Names returns the registered format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered format in name order.
func All() []Format {
	names := Names()
	all := make([]Format, len(names))
	for i, name := range names {
		all[i] = formats[name]
	}
	return all
}
