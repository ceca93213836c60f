package patterns

import "strings"

// Components is the semantic breakdown of a command line. Empty fields are
// absent.
type Components struct {
	Action     string   `json:"action,omitempty" yaml:"action,omitempty"`
	Target     string   `json:"target,omitempty" yaml:"target,omitempty"`
	Parameters []string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Flags      []string `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// splitActionArgs extracts git and docker lines: the verb is the action and
// the arguments split into parameters and dash-prefixed flags.
func splitActionArgs(m lineMatch) Components {
	c := Components{Action: m.tokens[len(m.tokens)-1]}
	c.Parameters, c.Flags = splitFlags(m.args)
	return c
}

// splitManagerArgs extracts package manager lines, where the manager name is
// the target.
func splitManagerArgs(m lineMatch) Components {
	c := Components{
		Action: m.tokens[1],
		Target: m.tokens[0],
	}
	c.Parameters, c.Flags = splitFlags(m.args)
	return c
}

// commandParameters extracts file-ops and generic lines. Every argument is a
// parameter, flags included.
func commandParameters(m lineMatch) Components {
	return Components{
		Action:     m.tokens[0],
		Parameters: nilIfEmpty(strings.Fields(m.args)),
	}
}

func splitFlags(args string) (params, flags []string) {
	for _, tok := range strings.Fields(args) {
		if strings.HasPrefix(tok, "-") {
			flags = append(flags, tok)
		} else {
			params = append(params, tok)
		}
	}
	return params, flags
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
