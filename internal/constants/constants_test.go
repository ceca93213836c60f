package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "shelly", AppName)
}

func TestLogFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "shelly.log", LogFilename)
}

func TestConfigFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "shelly.yml", ConfigFilename)
}

func TestProjectDirEnv(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "CLAUDE_PROJECT_DIR", ProjectDirEnv)
}
