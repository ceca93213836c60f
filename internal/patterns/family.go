package patterns

import (
	"fmt"
	"strings"
)

// Family identifies which catalog rule recognized a command line.
type Family int

const (
	// FamilyNone is the terminal case for lines no catalog rule recognizes.
	FamilyNone Family = iota
	FamilyGit
	FamilyPackageManager
	FamilyDocker
	FamilyFileOps
	FamilyGeneric
)

var familyNames = map[Family]string{
	FamilyNone:           "no-match",
	FamilyGit:            "git",
	FamilyPackageManager: "package-manager",
	FamilyDocker:         "docker",
	FamilyFileOps:        "file-ops",
	FamilyGeneric:        "generic",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// MarshalText lets families serialize by tag in JSON and YAML output.
func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// ParseFamily returns the family for a tag such as "git" or "file-ops",
// ignoring case and surrounding space.
func ParseFamily(tag string) (Family, error) {
	key := strings.ToLower(strings.TrimSpace(tag))
	for family, name := range familyNames {
		if name == key {
			return family, nil
		}
	}
	return FamilyNone, fmt.Errorf("unknown command family %q", tag)
}

// baseConfidence is the starting score for a family before adjustments.
// The ordering git >= docker/package-manager >= file-ops >= generic >= no-match
// must hold.
func (f Family) baseConfidence() float64 {
	switch f {
	case FamilyGit:
		return 0.95
	case FamilyDocker, FamilyPackageManager:
		return 0.90
	case FamilyFileOps:
		return 0.80
	case FamilyGeneric:
		return 0.60
	case FamilyNone:
		return fallbackConfidence
	default:
		return fallbackConfidence
	}
}
