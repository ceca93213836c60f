// Package constants contains names for the files and directories shelly uses.
package constants

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "shelly"

	// LogFilename is the log file name inside the XDG data directory.
	LogFilename = "shelly.log"

	// ConfigFilename is the config file name looked up in the project root
	// and the XDG config directory.
	ConfigFilename = "shelly.yml"

	// ProjectDirEnv points at the project root when set by Claude Code.
	ProjectDirEnv = "CLAUDE_PROJECT_DIR"
)
