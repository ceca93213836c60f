// Package input collects command lines for analysis from arguments, files
// and streams.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// ErrNoCommands is returned when a source holds no non-blank lines.
var ErrNoCommands = errors.New("no commands to analyze")

// Lines splits text into command lines, dropping blank ones. Surrounding
// whitespace is kept; the analyzer trims it.
func Lines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// FromArgs treats each argument as one or more command lines.
func FromArgs(args []string) ([]string, error) {
	return nonEmpty(Lines(strings.Join(args, "\n")))
}

// FromReader reads command lines until EOF.
func FromReader(r io.Reader) ([]string, error) {
	var lines []string
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		lines = append(lines, Lines(line)...)
		if errors.Is(err, io.EOF) {
			break
		}
	}
	return nonEmpty(lines)
}

// FromFile reads command lines from a file.
func FromFile(fs afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read command file %s: %w", path, err)
	}

	lines, err := nonEmpty(Lines(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}

func nonEmpty(lines []string) ([]string, error) {
	if len(lines) == 0 {
		return nil, ErrNoCommands
	}
	return lines, nil
}
