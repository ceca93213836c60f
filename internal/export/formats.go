package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/wizzomafizzo/shelly/internal/patterns"
	"gopkg.in/yaml.v3"
)

func renderPlain(cmds []patterns.ParsedCommand, _ time.Time) (string, error) {
	lines := make([]string, len(cmds))
	for i, cmd := range cmds {
		lines[i] = cmd.Regex
	}
	return strings.Join(lines, "\n"), nil
}

func renderVSCode(cmds []patterns.ParsedCommand, _ time.Time) (string, error) {
	quoted := make([]string, len(cmds))
	for i, cmd := range cmds {
		data, err := marshalJSON(cmd.Regex, "")
		if err != nil {
			return "", fmt.Errorf("failed to quote pattern: %w", err)
		}
		quoted[i] = data
	}

	var b strings.Builder
	b.WriteString("// VSCode settings.json format\n{\n")
	b.WriteString("  \"search.useRegexp\": true,\n")
	b.WriteString("  \"search.regexPatterns\": [\n")
	if len(quoted) > 0 {
		b.WriteString("    " + strings.Join(quoted, ",\n    ") + "\n")
	}
	b.WriteString("  ]\n}")
	return b.String(), nil
}

type cursorPattern struct {
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description"`
}

type cursorConfig struct {
	Patterns []cursorPattern `yaml:"patterns"`
}

func renderCursor(cmds []patterns.ParsedCommand, _ time.Time) (string, error) {
	cfg := cursorConfig{Patterns: make([]cursorPattern, len(cmds))}
	for i, cmd := range cmds {
		cfg.Patterns[i] = cursorPattern{Pattern: cmd.Regex, Description: cmd.OriginalCommand}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor patterns: %w", err)
	}
	return "# Cursor AI patterns configuration\n" + string(data), nil
}

func renderCodex(cmds []patterns.ParsedCommand, _ time.Time) (string, error) {
	var b strings.Builder
	b.WriteString("// GitHub Codex regex patterns\nconst patterns = [\n")
	for _, cmd := range cmds {
		literal := strings.ReplaceAll(cmd.Regex, "/", `\/`)
		fmt.Fprintf(&b, "  /%s/g, // %s\n", literal, cmd.OriginalCommand)
	}
	b.WriteString("];")
	return b.String(), nil
}

type jsonPattern struct {
	Original   string              `json:"original"`
	Regex      string              `json:"regex"`
	Confidence float64             `json:"confidence"`
	Components patterns.Components `json:"components"`
}

type jsonExport struct {
	Generated     string        `json:"generated"`
	TotalCommands int           `json:"totalCommands"`
	Patterns      []jsonPattern `json:"patterns"`
}

func renderJSON(cmds []patterns.ParsedCommand, now time.Time) (string, error) {
	out := jsonExport{
		Generated:     now.UTC().Format(time.RFC3339),
		TotalCommands: len(cmds),
		Patterns:      make([]jsonPattern, len(cmds)),
	}
	for i, cmd := range cmds {
		out.Patterns[i] = jsonPattern{
			Original:   cmd.OriginalCommand,
			Regex:      cmd.Regex,
			Confidence: cmd.Confidence,
			Components: cmd.Components,
		}
	}

	data, err := marshalJSON(out, "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal patterns: %w", err)
	}
	return data, nil
}

// marshalJSON encodes without HTML escaping so "&&" and "<" stay readable.
func marshalJSON(v any, indent string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return "", err //nolint:wrapcheck // callers add context
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
