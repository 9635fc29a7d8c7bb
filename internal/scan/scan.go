// Package scan enumerates the markdown documents in a directory.
package scan

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Markdown returns the markdown filenames in dir, sorted ascending. The
// scan is non-recursive and skips subdirectories and the root index file
// itself; every other *.md file is included, dotfiles too.
func Markdown(dir, index string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if name == index || !strings.HasSuffix(name, ".md") {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}
