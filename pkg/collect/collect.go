// File: pkg/collect/collect.go

// Package collect expands command-line arguments into the ordered list of
// input files to combine.
package collect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"pdfcombiner/pkg/ignore"
	"pdfcombiner/pkg/source"
)

// ErrNoInputs is returned when no argument yields a usable file.
var ErrNoInputs = errors.New("no valid PDF or image files")

// Options controls how arguments are expanded.
type Options struct {
	Matcher *ignore.Matcher // Patterns applied to every argument; may be nil.
	Logger  *zap.Logger
	Verbose bool // Log every skipped file.
}

// Paths expands args into absolute file paths, in argument order. Files are
// kept as given when their extension is recognized. Directories are walked in
// lexical order, honoring a .pdfcignore file at their root.
func Paths(args []string, opts Options) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	matcher := opts.Matcher
	if matcher == nil {
		matcher = ignore.New(logger)
	}

	var paths []string
	for _, arg := range args {
		absPath, err := filepath.Abs(arg)
		if err != nil {
			logger.Warn("Failed to get absolute path", zap.String("path", arg), zap.Error(err))
			continue
		}

		info, err := os.Stat(absPath)
		if err != nil {
			logger.Warn("Path does not exist or cannot be accessed", zap.String("path", absPath), zap.Error(err))
			continue
		}

		if info.IsDir() {
			found, err := walkDirectory(absPath, matcher, logger, opts.Verbose)
			if err != nil {
				logger.Warn("Failed to traverse directory", zap.String("dir", absPath), zap.Error(err))
				continue
			}
			paths = append(paths, found...)
			continue
		}

		if skipFile(absPath, info, matcher, logger) {
			continue
		}
		paths = append(paths, absPath)
	}

	if len(paths) == 0 {
		return nil, ErrNoInputs
	}
	logger.Debug("Collected inputs", zap.Int("count", len(paths)))
	return paths, nil
}

// skipFile decides whether an explicitly named file is left out.
func skipFile(path string, info fs.FileInfo, matcher *ignore.Matcher, logger *zap.Logger) bool {
	if !info.Mode().IsRegular() {
		logger.Warn("Skipping non-regular file", zap.String("file", path))
		return true
	}
	if !source.Supported(path) {
		logger.Warn("Skipping file with unsupported extension",
			zap.String("file", path),
			zap.String("extension", filepath.Ext(path)))
		return true
	}
	if ignored, p := matcher.MatchWithPattern(filepath.Base(path), false); ignored {
		logger.Info("Skipping ignored file", zap.String("file", path), zap.String("pattern", p.Line))
		return true
	}
	return false
}

// walkDirectory collects recognized files below root.
func walkDirectory(root string, matcher *ignore.Matcher, logger *zap.Logger, verbose bool) ([]string, error) {
	local := matcher.Clone()
	if err := local.AddFile(filepath.Join(root, ignore.FileName)); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", ignore.FileName, err)
	}

	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}
		if path == root {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		if local.Match(relPath, d.IsDir()) {
			if verbose {
				logger.Debug("Skipping ignored path", zap.String("path", path))
			}
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() || !source.Supported(path) {
			return nil
		}

		found = append(found, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Completed directory traversal", zap.String("dir", root), zap.Int("files", len(found)))
	return found, nil
}
