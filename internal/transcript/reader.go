// Package transcript extracts shell commands from Claude Code JSONL
// transcripts.
package transcript

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/shelly/internal/logging"
)

const bashTool = "Bash"

// TranscriptEntry represents a single entry in the Claude Code transcript
type TranscriptEntry struct {
	Type       string         `json:"type"`
	UUID       string         `json:"uuid"`
	ParentUUID string         `json:"parentUuid"`
	Message    MessageContent `json:"message"`
}

// MessageContent contains the content for assistant messages
type MessageContent struct {
	Role    string        `json:"role"`
	Content []ContentItem `json:"content"`
}

// ContentItem represents individual content items in a message
type ContentItem struct {
	Type  string    `json:"type"`
	Text  string    `json:"text,omitempty"`
	ID    string    `json:"id,omitempty"`   // For tool_use content
	Name  string    `json:"name,omitempty"` // Tool name for tool_use content
	Input ToolInput `json:"input,omitempty"`
}

// ToolInput holds the tool_use arguments shelly cares about
type ToolInput struct {
	Command     string `json:"command,omitempty"`
	Description string `json:"description,omitempty"`
}

// ExtractCommands opens the transcript at path and returns the commands the
// assistant ran through the Bash tool, in order and without duplicates.
func ExtractCommands(ctx context.Context, fs afero.Fs, path string) ([]string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript file %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logging.Get(ctx).Debug().Err(closeErr).
				Str("transcript_path", path).
				Msg("Failed to close transcript file")
		}
	}()

	commands, err := ReadCommands(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript file %s: %w", path, err)
	}

	logging.Get(ctx).Debug().
		Str("transcript_path", path).
		Int("commands_count", len(commands)).
		Msg("Extracted commands from transcript")

	return commands, nil
}

// ReadCommands reads JSONL transcript entries from r. Lines that are not
// valid entries are skipped.
func ReadCommands(ctx context.Context, r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	seen := make(map[string]bool)
	commands := make([]string, 0, 16)
	skipped := 0

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read transcript: %w", err)
		}
		if line == "" && errors.Is(err, io.EOF) {
			break
		}

		found, valid := commandsFromLine(line)
		if !valid {
			skipped++
		}
		for _, cmd := range found {
			if seen[cmd] {
				continue
			}
			seen[cmd] = true
			commands = append(commands, cmd)
		}

		if errors.Is(err, io.EOF) {
			break
		}
	}

	if skipped > 0 {
		logging.Get(ctx).Debug().Int("skipped_lines", skipped).Msg("Skipped unparseable transcript lines")
	}
	return commands, nil
}

// commandsFromLine returns the Bash commands in one transcript line. The
// second result is false when the line is not a transcript entry.
func commandsFromLine(line string) ([]string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, true
	}

	entry, valid := parseTranscriptEntry(line)
	if !valid {
		return nil, false
	}
	if entry.Type != "assistant" {
		return nil, true
	}

	var commands []string
	for _, item := range entry.Message.Content {
		if cmd := bashCommand(item); cmd != "" {
			commands = append(commands, cmd)
		}
	}
	return commands, true
}

// parseTranscriptEntry parses a transcript line into an entry. User entries
// with plain string content parse as entries without content items.
func parseTranscriptEntry(line string) (TranscriptEntry, bool) {
	var entry TranscriptEntry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		var header struct {
			Type string `json:"type"`
		}
		if json.Unmarshal([]byte(line), &header) != nil || header.Type == "" {
			return TranscriptEntry{}, false
		}
		return TranscriptEntry{Type: header.Type}, true
	}
	return entry, true
}

func bashCommand(item ContentItem) string {
	if item.Type != "tool_use" || item.Name != bashTool {
		return ""
	}
	return strings.TrimSpace(item.Input.Command)
}
