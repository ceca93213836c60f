package patterns

import (
	"fmt"
	"regexp"
)

// CheckResult is the outcome of testing a generated pattern against its own
// source line.
type CheckResult int

const (
	CheckMatch CheckResult = iota
	CheckNoMatch
	CheckInvalid
)

func (r CheckResult) String() string {
	switch r {
	case CheckMatch:
		return "matches"
	case CheckNoMatch:
		return "no match"
	case CheckInvalid:
		return "invalid pattern"
	default:
		return fmt.Sprintf("CheckResult(%d)", int(r))
	}
}

// SelfCheck compiles the generated regex and tests it against the original
// command. A failure here means the synthesizer produced a bad pattern.
func SelfCheck(pc ParsedCommand) CheckResult {
	matched, err := Test(pc.Regex, pc.OriginalCommand)
	if err != nil {
		return CheckInvalid
	}
	if !matched {
		return CheckNoMatch
	}
	return CheckMatch
}

// Test reports whether pattern matches command.
func Test(pattern, command string) (bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re.MatchString(command), nil
}
