package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRootCommand(t *testing.T) {
	t.Parallel()

	cmd := createNewRootCommand()
	assert.Equal(t, "shelly", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	for _, name := range []string{"analyze", "export", "test", "examples", "prompt", "interactive", "init", "rules"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}

	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
}

func TestRootCommandShowsHelp(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t)
	out, _, err := h.execute("")
	require.NoError(t, err)
	assert.Contains(t, out, "Available Commands")
}

func TestConfigResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		files   map[string]string
		name    string
		want    string
		wantErr string
		args    []string
	}{
		{
			name: "defaults without config files",
			args: []string{"analyze", "git status"},
			want: `^git\s+status` + "\n",
		},
		{
			name:  "project config",
			files: map[string]string{"/project/shelly.yml": "settings:\n  use_fixed_paths: true\n"},
			args:  []string{"analyze", "npm install express"},
			want:  `^npm\s+install\s+express$`,
		},
		{
			name:  "flag overrides config",
			files: map[string]string{"/project/shelly.yml": "settings:\n  use_fixed_paths: true\n"},
			args:  []string{"analyze", "--fixed=false", "npm install express"},
			want:  `^npm\s+install\s+express` + "\n",
		},
		{
			name:  "explicit config",
			files: map[string]string{"/etc/custom.yml": "settings:\n  allow_whitespace_in_paths: true\n"},
			args:  []string{"analyze", "--config", "/etc/custom.yml", "git commit -m 'a b'"},
			want:  `^git\s+commit\s+-m\s+'a\s+b'`,
		},
		{
			name:    "missing explicit config",
			args:    []string{"analyze", "--config", "/etc/missing.yml", "ls"},
			wantErr: "failed to load config",
		},
		{
			name:    "invalid config",
			files:   map[string]string{"/project/shelly.yml": "export:\n  format: toml\n"},
			args:    []string{"analyze", "ls"},
			wantErr: "export.format",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHarness(t)
			for path, content := range tt.files {
				require.NoError(t, afero.WriteFile(h.fs, path, []byte(content), 0o600))
			}

			out, _, err := h.execute("", tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestLoggingCarriesRunID(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t)
	_, _, err := h.execute("", "analyze", "--verbose", "git status")
	require.NoError(t, err)

	logs := h.logs.String()
	assert.Contains(t, logs, `"run_id":"`)
	assert.Contains(t, logs, `"project_id":"project"`)
	assert.Contains(t, logs, "Starting command")
	assert.Contains(t, logs, "Analyzed commands")
}

func TestLogLevelFromConfig(t *testing.T) {
	t.Parallel()

	h := newTestHarness(t)
	require.NoError(t, afero.WriteFile(h.fs, "/project/shelly.yml", []byte("logging:\n  level: error\n"), 0o600))

	_, _, err := h.execute("", "analyze", "git status")
	require.NoError(t, err)
	assert.Empty(t, h.logs.String())
}
