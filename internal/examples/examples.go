// Package examples provides named sets of sample commands for trying out the
// analyzer.
package examples

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed examples.yaml
var embeddedSets []byte

// ErrUnknownSet is returned when no example set matches a name.
var ErrUnknownSet = errors.New("unknown example set")

// Set is a named list of sample commands.
type Set struct {
	Name     string   `yaml:"name"`
	Commands []string `yaml:"commands"`
}

// Slug is the set name in lower case with dashes, e.g. "git-workflow".
func (s Set) Slug() string {
	return slugify(s.Name)
}

var sets = mustLoad(embeddedSets)

func mustLoad(data []byte) []Set {
	loaded, err := load(data)
	if err != nil {
		panic(err)
	}
	return loaded
}

func load(data []byte) ([]Set, error) {
	var loaded []Set
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse example sets: %w", err)
	}

	for i, set := range loaded {
		if set.Name == "" {
			return nil, fmt.Errorf("example set %d has no name", i)
		}
		if len(set.Commands) == 0 {
			return nil, fmt.Errorf("example set %q has no commands", set.Name)
		}
	}
	return loaded, nil
}

// All returns a copy of the example sets in display order.
func All() []Set {
	out := make([]Set, len(sets))
	for i, set := range sets {
		out[i] = Set{Name: set.Name, Commands: append([]string(nil), set.Commands...)}
	}
	return out
}

// Lookup finds a set by display name or slug, ignoring case.
func Lookup(name string) (Set, error) {
	key := slugify(name)
	for _, set := range All() {
		if set.Slug() == key {
			return set, nil
		}
	}

	slugs := make([]string, 0, len(sets))
	for _, set := range sets {
		slugs = append(slugs, set.Slug())
	}
	return Set{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownSet, name, strings.Join(slugs, ", "))
}

func slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.ReplaceAll(name, "-", " "))), "-")
}
