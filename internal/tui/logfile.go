package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If METRO_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.metro/logs/metro.log
func GetLogFilePath() string {
	if customPath := os.Getenv("METRO_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "metro.log"
	}

	return filepath.Join(homeDir, ".metro", "logs", "metro.log")
}
