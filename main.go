package main

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"pdfcombiner/cmd"
	"pdfcombiner/pkg/config"
	"pdfcombiner/pkg/logging"
	"pdfcombiner/pkg/version"
)

func main() {
	if err := config.LoadEnvFile(".env"); err != nil {
		log.Printf("Ignoring environment file: %v", err)
	}

	logger, err := logging.Setup(config.FromEnv().Debug, version.AppName, version.Get().Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := cmd.Execute(logger); err != nil {
		syncLogger(logger)
		os.Exit(1)
	}
	syncLogger(logger)
}

// syncLogger flushes the logger. Sync on a console or pipe returns EINVAL on
// some platforms, so it is only attempted where it can succeed.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
