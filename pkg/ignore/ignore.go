// Package ignore matches input paths against gitignore-style patterns.
package ignore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// FileName is the per-directory ignore file consulted while walking inputs.
const FileName = ".pdfcignore"

// Matcher holds an ordered list of patterns. Later patterns override
// earlier ones, so a negated pattern can re-include a path.
type Matcher struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// New creates an empty Matcher. A nil logger disables logging.
func New(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger}
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int { return len(m.patterns) }

// Clone returns a copy that can be extended without affecting m.
func (m *Matcher) Clone() *Matcher {
	c := &Matcher{logger: m.logger}
	c.patterns = append(c.patterns, m.patterns...)
	return c
}

// AddLines compiles lines and appends them. Invalid patterns are logged and
// skipped.
func (m *Matcher) AddLines(source string, lines ...string) {
	for i, line := range lines {
		p, err := parsePattern(line)
		if err != nil {
			m.logger.Warn("Invalid ignore pattern",
				zap.String("source", source),
				zap.Int("lineNo", i+1),
				zap.String("pattern", line),
				zap.Error(err))
			continue
		}
		if p == nil {
			continue
		}
		p.Source, p.LineNo = source, i+1
		m.patterns = append(m.patterns, p)
		m.logger.Debug("Compiled ignore pattern",
			zap.String("source", source),
			zap.Int("lineNo", p.LineNo),
			zap.String("pattern", p.Line),
			zap.Bool("negate", p.Negate))
	}
}

// AddFile reads patterns from path. A missing file is not an error.
func (m *Matcher) AddFile(path string) error {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		m.logger.Error("Failed to read ignore file", zap.String("filePath", path), zap.Error(err))
		return err
	}
	m.AddLines(path, strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")...)
	m.logger.Debug("Loaded ignore file", zap.String("filePath", path), zap.Int("totalPatterns", len(m.patterns)))
	return nil
}

// Match reports whether the slash- or OS-separated relative path is ignored.
func (m *Matcher) Match(relPath string, isDir bool) bool {
	ignored, _ := m.MatchWithPattern(relPath, isDir)
	return ignored
}

// MatchWithPattern is Match that also returns the deciding pattern, if any.
func (m *Matcher) MatchWithPattern(relPath string, isDir bool) (bool, *Pattern) {
	path := strings.TrimPrefix(filepath.ToSlash(relPath), "./")
	var (
		ignored bool
		decided *Pattern
	)
	for _, p := range m.patterns {
		if p.matches(path, isDir) {
			ignored = !p.Negate
			decided = p
		}
	}
	return ignored, decided
}
