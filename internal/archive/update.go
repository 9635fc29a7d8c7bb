package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/mleone/archivist/internal/scan"
)

// Merge replaces the archive section of body with block. If body contains
// heading, everything from its first occurrence onward is discarded;
// otherwise the block is appended. Trailing whitespace on the retained
// prefix is trimmed, then exactly one blank line separates it from the
// block. Merging the same block twice is a no-op after the first merge.
func Merge(body, heading, block string) string {
	if i := strings.Index(body, heading); i >= 0 {
		body = body[:i]
	}
	body = strings.TrimRightFunc(body, unicode.IsSpace)
	return body + "\n\n" + block
}

// Updater regenerates the archive section of a root index file from the
// markdown files that live alongside it.
type Updater struct {
	Dir     string // directory to scan
	Index   string // root index filename, e.g. "README.md"
	Heading string // marker heading, e.g. "## Archive"
	Namer   *Namer

	// UseTitles consults each document's frontmatter title before the
	// filename rules. Off by default.
	UseTitles bool
}

// Preview computes the update without writing anything. It returns the
// current body, the updated body, and the number of listed files. A missing
// index file is an error; nothing is modified.
func (u *Updater) Preview() (current, updated string, count int, err error) {
	files, err := scan.Markdown(u.Dir, u.Index)
	if err != nil {
		return "", "", 0, err
	}

	data, err := os.ReadFile(filepath.Join(u.Dir, u.Index))
	if err != nil {
		return "", "", 0, fmt.Errorf("reading %s: %w", u.Index, err)
	}
	current = string(data)

	entries := u.Namer.Entries(files)
	if u.UseTitles {
		for i := range entries {
			if title, ok := frontmatterTitle(filepath.Join(u.Dir, entries[i].Filename)); ok {
				entries[i].Display = title
			}
		}
	}

	block := Render(u.Heading, entries)
	return current, Merge(current, u.Heading, block), len(entries), nil
}

// Run performs the update in place: read the index file, regenerate its
// archive section, write the file back. It returns the number of files
// listed. The write is a full replace and is not atomic.
func (u *Updater) Run() (int, error) {
	_, updated, count, err := u.Preview()
	if err != nil {
		return 0, err
	}

	path := filepath.Join(u.Dir, u.Index)
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", u.Index, err)
	}
	return count, nil
}
