// File: pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that provide defaults for command-line flags.
const (
	EnvOutputDir  = "PDFC_OUTPUT_DIR"
	EnvIgnoreFile = "PDFC_IGNORE_FILE"
	EnvDebug      = "PDFC_DEBUG"
)

// DefaultFilename is used when no output filename is given.
const DefaultFilename = "combined.pdf"

// Arguments holds the configuration of one combine invocation.
type Arguments struct {
	Inputs         []string // Files or directories, in order.
	Filename       string   // Output file name; ".pdf" is appended when missing.
	OutputDir      string   // Folder for the output; empty means the working directory.
	Force          bool     // Overwrite an existing output without asking.
	IgnorePatterns []string // Extra ignore patterns from the command line.
	IgnoreFile     string   // Optional global ignore file.
	Debug          bool     // Development logging.
	Verbose        bool     // Log every skipped path.
}

// LoadEnvFile loads variables from a dotenv file into the process environment
// without overriding variables that are already set. A missing file is not an
// error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// FromEnv returns Arguments populated from environment defaults.
func FromEnv() Arguments {
	args := Arguments{
		Filename:   DefaultFilename,
		OutputDir:  os.Getenv(EnvOutputDir),
		IgnoreFile: os.Getenv(EnvIgnoreFile),
	}
	if v, err := strconv.ParseBool(os.Getenv(EnvDebug)); err == nil {
		args.Debug = v
	}
	return args
}

// Destination resolves the absolute output path. The output folder must
// already exist.
func (a Arguments) Destination() (string, error) {
	name := strings.TrimSpace(a.Filename)
	if name == "" {
		return "", errors.New("missing output filename")
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}

	dir := strings.TrimSpace(a.OutputDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = wd
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("invalid output folder %q", dir)
	}

	return filepath.Abs(filepath.Join(dir, name))
}
