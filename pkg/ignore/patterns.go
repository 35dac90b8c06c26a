// File: pkg/ignore/patterns.go
package ignore

import (
	"regexp"
	"strings"
)

// Pattern is one compiled ignore rule.
type Pattern struct {
	Line    string // Original pattern text.
	LineNo  int    // 1-based line in Source.
	Source  string // File the pattern came from, or "flag".
	Negate  bool   // Pattern started with '!'.
	DirOnly bool   // Pattern ended with '/'.

	re *regexp.Regexp
}

// parsePattern compiles a gitignore-style line. It returns nil for blank
// lines and comments.
func parsePattern(line string) (*Pattern, error) {
	text := strings.TrimSpace(line)
	if text == "" || strings.HasPrefix(text, "#") {
		return nil, nil
	}

	p := &Pattern{Line: line}
	if strings.HasPrefix(text, "!") {
		p.Negate = true
		text = text[1:]
	}
	if strings.HasSuffix(text, "/") {
		p.DirOnly = true
		text = strings.TrimRight(text, "/")
	}
	// A slash anywhere but the end anchors the pattern to the base directory.
	anchored := strings.Contains(text, "/")
	text = strings.TrimPrefix(text, "/")
	if text == "" {
		return nil, nil
	}

	var expr strings.Builder
	expr.WriteString("^")
	if !anchored {
		expr.WriteString("(?:.*/)?")
	}
	expr.WriteString(globToRegex(text))
	// Group 1 is non-empty when the match is a path below the matched entry.
	expr.WriteString("(/.*)?$")

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, err
	}
	p.re = re
	return p, nil
}

// globToRegex translates '*', '**' and '?' wildcards. Everything else is
// matched literally.
func globToRegex(glob string) string {
	var out strings.Builder
	for i := 0; i < len(glob); i++ {
		c := glob[i]
		switch {
		case strings.HasPrefix(glob[i:], "**/"):
			out.WriteString("(?:.*/)?")
			i += 2
		case strings.HasPrefix(glob[i:], "**"):
			out.WriteString(".*")
			i++
		case c == '*':
			out.WriteString("[^/]*")
		case c == '?':
			out.WriteString("[^/]")
		default:
			out.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	return out.String()
}

// matches reports whether the pattern applies to path.
func (p *Pattern) matches(path string, isDir bool) bool {
	m := p.re.FindStringSubmatch(path)
	if m == nil {
		return false
	}
	if p.DirOnly && !isDir {
		// A file only matches a directory pattern through one of its parents.
		return m[1] != ""
	}
	return true
}
