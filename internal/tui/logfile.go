package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If GRELEASE_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.grelease/logs/grelease.log
func GetLogFilePath() string {
	if customPath := os.Getenv("GRELEASE_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "grelease.log"
	}

	return filepath.Join(homeDir, ".grelease", "logs", "grelease.log")
}
