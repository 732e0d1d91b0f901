package main

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"voxstitch/cmd"
	"voxstitch/pkg/logging"
	"voxstitch/pkg/version"
)

func main() {
	logger, err := logging.Setup("info", "voxstitch", version.Get().Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	exitCode := 0
	if err := cmd.Execute(logger); err != nil {
		logger.Error("voxstitch execution failed", zap.Error(err))
		exitCode = 1
	}

	// Sync only when stderr is a terminal or a regular file; a piped stderr
	// rejects the sync on some platforms.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
	os.Exit(exitCode)
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
