package archive

import (
	"os"

	"github.com/adrg/frontmatter"
)

// frontmatterTitle reads the title field from a document's frontmatter.
// Files without frontmatter, without a title, or that cannot be read simply
// don't match; the caller falls back to the filename rules.
func frontmatterTitle(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	var meta struct {
		Title string `yaml:"title" toml:"title"`
	}
	if _, err := frontmatter.Parse(f, &meta); err != nil {
		return "", false
	}
	if meta.Title == "" {
		return "", false
	}
	return meta.Title, true
}
