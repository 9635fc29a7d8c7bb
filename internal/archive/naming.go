// Package archive derives display names for markdown documents and
// regenerates the archive section of a root index file from them.
package archive

import (
	"regexp"
	"strings"
	"unicode"
)

// A nameRule maps a filename to a display name. Rules are consulted in
// priority order; the first rule that matches wins.
type nameRule interface {
	Apply(filename string) (string, bool)
}

// Namer derives human-readable display names from document filenames.
// Rule priority: dated filename pattern, then the special-case name table,
// then the title-cased fallback. The fallback always matches, so every
// filename yields a non-empty display name.
type Namer struct {
	rules []nameRule
}

// NewNamer returns a Namer using the given special-case name table. The
// table maps exact filenames to predetermined display names and may be nil.
func NewNamer(table map[string]string) *Namer {
	return &Namer{
		rules: []nameRule{
			datedRule{},
			tableRule{names: table},
			fallbackRule{},
		},
	}
}

// DisplayName returns the display name for filename.
func (n *Namer) DisplayName(filename string) string {
	for _, r := range n.rules {
		if name, ok := r.Apply(filename); ok {
			return name
		}
	}
	// Unreachable: fallbackRule matches everything.
	return filename
}

// datedPattern matches filenames like "2025-05-may.md". The month number is
// only positional; the display name uses the trailing word and the year.
var datedPattern = regexp.MustCompile(`^(\d{4})-\d{2}-(\w+)\.md$`)

type datedRule struct{}

func (datedRule) Apply(filename string) (string, bool) {
	m := datedPattern.FindStringSubmatch(filename)
	if m == nil {
		return "", false
	}
	return titleRuns(m[2]) + " " + m[1], true
}

type tableRule struct {
	names map[string]string
}

func (r tableRule) Apply(filename string) (string, bool) {
	name, ok := r.names[filename]
	return name, ok
}

type fallbackRule struct{}

func (fallbackRule) Apply(filename string) (string, bool) {
	name := strings.TrimSuffix(filename, ".md")
	name = strings.ReplaceAll(name, "_", " ")
	return titleCase(name), true
}

// titleRuns capitalizes the first letter of each alphabetic run and
// lowercases the rest, so "may_week1" becomes "May_Week1". The dated rule's
// word token may contain digits and underscores; each letter run after one
// starts a fresh capital.
func titleRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			inRun = false
			b.WriteRune(r)
		case inRun:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			inRun = true
		}
	}
	return b.String()
}

// titleCase capitalizes the first letter of each space-separated word and
// lowercases the rest. Runs of spaces are preserved.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	wordStart := true
	for _, r := range s {
		switch {
		case r == ' ':
			wordStart = true
			b.WriteRune(r)
		case wordStart:
			b.WriteRune(unicode.ToUpper(r))
			wordStart = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
