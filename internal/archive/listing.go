package archive

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultHeading is the marker heading that delimits the archive section.
const DefaultHeading = "## Archive"

// Entry is one line of the archive listing: a display name linking to a
// document filename.
type Entry struct {
	Display  string
	Filename string
}

// Entries derives a sorted archive listing from filenames. Ordering is
// lexicographic ascending by filename, not by display name.
func (n *Namer) Entries(filenames []string) []Entry {
	sorted := make([]string, len(filenames))
	copy(sorted, filenames)
	sort.Strings(sorted)

	entries := make([]Entry, 0, len(sorted))
	for _, f := range sorted {
		entries = append(entries, Entry{Display: n.DisplayName(f), Filename: f})
	}
	return entries
}

// Render produces the archive section block: the heading, a blank line, and
// one link item per entry. An empty entry list renders the heading alone.
func Render(heading string, entries []Entry) string {
	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "- [%s](%s)\n", e.Display, e.Filename)
	}
	return b.String()
}
