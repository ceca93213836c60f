// Package project locates the root directory of the project shelly runs in.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wizzomafizzo/shelly/internal/constants"
)

// markers identify a project root, checked in order at each directory level.
var markers = []string{constants.ConfigFilename, ".git", "go.mod", "package.json"}

// FindRoot finds the project root directory, preferring CLAUDE_PROJECT_DIR,
// then the nearest ancestor of the working directory holding a marker, then
// the working directory itself.
func FindRoot() (string, error) {
	if root, found := claudeProjectDir(); found {
		return root, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	if root, found := FindRootFrom(cwd); found {
		return root, nil
	}
	return cwd, nil
}

// FindRootFrom walks up from startDir looking for a project marker.
func FindRootFrom(startDir string) (string, bool) {
	dir := startDir
	for {
		if hasMarker(dir) {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func claudeProjectDir() (string, bool) {
	dir := os.Getenv(constants.ProjectDirEnv)
	if dir == "" {
		return "", false
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return abs, true
}

func hasMarker(dir string) bool {
	for _, marker := range markers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
