// Package patterns classifies shell command lines and generates regex patterns
// for them.
package patterns

import (
	"strconv"
	"strings"
)

// Settings controls how loose the generated patterns are.
type Settings struct {
	// AllowWhitespaceInPaths lets whitespace in arguments vary.
	AllowWhitespaceInPaths bool
	// UseFixedPaths anchors both ends so the pattern matches the exact line.
	UseFixedPaths bool
}

// ParsedCommand is the analysis result for one command line.
type ParsedCommand struct {
	ID              string     `json:"id"`
	OriginalCommand string     `json:"originalCommand"`
	Regex           string     `json:"regex"`
	Components      Components `json:"components"`
	Confidence      float64    `json:"confidence"`
	Family          Family     `json:"family"`
}

// Generate analyzes every line in order and returns one result per line.
// It never fails: lines no rule recognizes get an escaped literal pattern.
func Generate(lines []string, settings Settings) []ParsedCommand {
	results := make([]ParsedCommand, 0, len(lines))
	for i, line := range lines {
		parsed := Classify(line, settings)
		parsed.ID = commandID(i)
		results = append(results, parsed)
	}
	return results
}

// Classify analyzes a single command line. The returned ID is empty; Generate
// assigns IDs within a batch.
func Classify(line string, settings Settings) ParsedCommand {
	trimmed := strings.TrimSpace(line)

	for _, rule := range catalog {
		m, ok := rule.match(trimmed)
		if !ok {
			continue
		}
		return ParsedCommand{
			OriginalCommand: trimmed,
			Components:      rule.extract(m),
			Regex:           rule.synthesize(m, settings),
			Confidence:      confidence(rule.Family, m),
			Family:          rule.Family,
		}
	}

	return ParsedCommand{
		OriginalCommand: trimmed,
		Components:      Components{Action: firstToken(trimmed)},
		Regex:           fallbackRegex(trimmed, settings),
		Confidence:      fallbackConfidence,
		Family:          FamilyNone,
	}
}

// GeneratePattern converts a single command string into a regex pattern.
func GeneratePattern(command string, settings Settings) string {
	return Classify(command, settings).Regex
}

func commandID(index int) string {
	return "cmd_" + strconv.Itoa(index)
}

func firstToken(line string) string {
	if fields := strings.Fields(line); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
