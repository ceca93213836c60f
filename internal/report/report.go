// Package report renders analysis results for the terminal.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/wizzomafizzo/shelly/internal/patterns"
)

const (
	highConfidence   = 0.8
	mediumConfidence = 0.6
)

var (
	headerColor = color.New(color.Bold)
	highColor   = color.New(color.FgGreen)
	mediumColor = color.New(color.FgYellow)
	lowColor    = color.New(color.FgRed)
	labelColor  = color.New(color.FgCyan)
	regexColor  = color.New(color.FgMagenta)
)

// Summary aggregates a batch of results.
type Summary struct {
	Total          int
	HighConfidence int
	Average        float64
}

// Summarize computes the batch summary. The average of an empty batch is 0.
func Summarize(cmds []patterns.ParsedCommand) Summary {
	s := Summary{Total: len(cmds)}
	if s.Total == 0 {
		return s
	}

	var sum float64
	for _, cmd := range cmds {
		sum += cmd.Confidence
		if cmd.Confidence >= highConfidence {
			s.HighConfidence++
		}
	}
	s.Average = sum / float64(s.Total)
	return s
}

// Label returns the confidence bucket name.
func Label(confidence float64) string {
	switch {
	case confidence >= highConfidence:
		return "High"
	case confidence >= mediumConfidence:
		return "Medium"
	default:
		return "Low"
	}
}

// Percent rounds a confidence to a whole percentage.
func Percent(confidence float64) int {
	return int(math.Round(confidence * 100))
}

func labelFor(confidence float64) *color.Color {
	switch Label(confidence) {
	case "High":
		return highColor
	case "Medium":
		return mediumColor
	default:
		return lowColor
	}
}

// Render writes one block per command followed by the summary line.
func Render(w io.Writer, cmds []patterns.ParsedCommand) error {
	var b strings.Builder

	for i, cmd := range cmds {
		if i > 0 {
			b.WriteString("\n")
		}
		writeCommand(&b, i, cmd)
	}

	if len(cmds) > 0 {
		b.WriteString("\n")
	}
	writeSummary(&b, Summarize(cmds))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func writeCommand(b *strings.Builder, index int, cmd patterns.ParsedCommand) {
	headerColor.Fprintf(b, "Command #%d", index+1)
	b.WriteString(" ")
	labelFor(cmd.Confidence).Fprintf(b, "%s (%d%%)", Label(cmd.Confidence), Percent(cmd.Confidence))
	b.WriteString("\n")

	writeField(b, "Original", cmd.OriginalCommand)
	writeField(b, "Action", cmd.Components.Action)
	writeField(b, "Target", cmd.Components.Target)
	writeField(b, "Params", strings.Join(cmd.Components.Parameters, ", "))
	writeField(b, "Flags", strings.Join(cmd.Components.Flags, ", "))

	labelColor.Fprint(b, "  Regex: ")
	regexColor.Fprintln(b, cmd.Regex)

	writeField(b, "Test", checkText(patterns.SelfCheck(cmd)))
}

func writeField(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	labelColor.Fprintf(b, "  %s: ", name)
	b.WriteString(value)
	b.WriteString("\n")
}

func checkText(result patterns.CheckResult) string {
	switch result {
	case patterns.CheckMatch:
		return highColor.Sprint("✓ Matches")
	case patterns.CheckNoMatch:
		return lowColor.Sprint("✗ No match")
	default:
		return lowColor.Sprint("✗ " + result.String())
	}
}

func writeSummary(b *strings.Builder, s Summary) {
	if s.Total == 0 {
		b.WriteString("No commands analyzed\n")
		return
	}
	fmt.Fprintf(b, "%d commands, %d high confidence, average %d%%\n",
		s.Total, s.HighConfidence, Percent(s.Average))
}
