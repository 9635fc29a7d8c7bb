package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_NoExistingSection(t *testing.T) {
	body := "# Title\n\nSome intro text.\n"
	block := "## Archive\n\n- [Notes](notes.md)\n"

	got := Merge(body, DefaultHeading, block)

	assert.Equal(t, "# Title\n\nSome intro text.\n\n## Archive\n\n- [Notes](notes.md)\n", got)
}

func TestMerge_ReplacesExistingSection(t *testing.T) {
	body := "# Title\n\n## Archive\n\n- [Old](old.md)\n- [Stale](stale.md)\n"
	block := "## Archive\n\n- [New](new.md)\n"

	got := Merge(body, DefaultHeading, block)

	assert.Equal(t, "# Title\n\n## Archive\n\n- [New](new.md)\n", got)
	assert.NotContains(t, got, "old.md")
}

func TestMerge_SplitsAtFirstMarker(t *testing.T) {
	// Everything from the first marker onward is discarded, even if the
	// marker appears again later in the body.
	body := "intro\n\n## Archive\n\nstuff\n\n## Archive\n\nmore\n"
	block := "## Archive\n\n- [A](a.md)\n"

	got := Merge(body, DefaultHeading, block)

	assert.Equal(t, "intro\n\n## Archive\n\n- [A](a.md)\n", got)
}

func TestMerge_Idempotent(t *testing.T) {
	block := "## Archive\n\n- [Jan 2025](2025-01-jan.md)\n"

	once := Merge("# Title\n", DefaultHeading, block)
	twice := Merge(once, DefaultHeading, block)

	assert.Equal(t, once, twice)
}

func TestMerge_TrimsTrailingWhitespace(t *testing.T) {
	block := "## Archive\n\n"

	got := Merge("# Title\n\n\n   \n", DefaultHeading, block)

	assert.Equal(t, "# Title\n\n## Archive\n\n", got)
}

func TestMerge_EmptyBody(t *testing.T) {
	block := "## Archive\n\n"

	assert.Equal(t, "\n\n## Archive\n\n", Merge("", DefaultHeading, block))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func newTestUpdater(dir string) *Updater {
	return &Updater{
		Dir:     dir,
		Index:   "README.md",
		Heading: DefaultHeading,
		Namer:   NewNamer(map[string]string{"CLAUDE.local.md": "Claude.Local"}),
	}
}

func TestUpdater_Run(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "# Title\n")
	writeFile(t, dir, "2025-05-may.md", "may notes\n")
	writeFile(t, dir, "2025-01-jan.md", "jan notes\n")
	writeFile(t, dir, "notes_draft.md", "draft\n")

	upd := newTestUpdater(dir)
	count, err := upd.Run()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)

	want := "# Title\n\n## Archive\n\n" +
		"- [Jan 2025](2025-01-jan.md)\n" +
		"- [May 2025](2025-05-may.md)\n" +
		"- [Notes Draft](notes_draft.md)\n"
	assert.Equal(t, want, string(data))
}

func TestUpdater_RunTwiceIsByteIdentical(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "# Title\n\nIntro.\n")
	writeFile(t, dir, "2025-05-may.md", "")
	writeFile(t, dir, "CLAUDE.local.md", "")

	upd := newTestUpdater(dir)

	_, err := upd.Run()
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)

	_, err = upd.Run()
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestUpdater_ReplacesStaleSection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "# Title\n\n## Archive\n\n- [Gone](gone.md)\n")
	writeFile(t, dir, "kept.md", "")

	upd := newTestUpdater(dir)
	count, err := upd.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\n## Archive\n\n- [Kept](kept.md)\n", string(data))
}

func TestUpdater_IndexNeverListsItself(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "# Title\n")
	writeFile(t, dir, "other.md", "")

	upd := newTestUpdater(dir)
	count, err := upd.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "(README.md)")
}

func TestUpdater_MissingIndexIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.md", "")

	upd := newTestUpdater(dir)
	_, err := upd.Run()
	require.Error(t, err)

	// Nothing was written.
	_, statErr := os.Stat(filepath.Join(dir, "README.md"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestUpdater_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "# Title\n")

	upd := newTestUpdater(dir)
	count, err := upd.Run()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\n## Archive\n\n", string(data))
}

func TestUpdater_Preview_DoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "# Title\n")
	writeFile(t, dir, "notes.md", "")

	upd := newTestUpdater(dir)
	current, updated, count, err := upd.Preview()
	require.NoError(t, err)

	assert.Equal(t, "# Title\n", current)
	assert.Equal(t, "# Title\n\n## Archive\n\n- [Notes](notes.md)\n", updated)
	assert.Equal(t, 1, count)

	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Title\n", string(data))
}

func TestUpdater_FrontmatterTitles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "# Title\n")
	writeFile(t, dir, "notes.md", "---\ntitle: Meeting Notes Q3\n---\n\nbody\n")
	writeFile(t, dir, "plain.md", "no frontmatter here\n")

	upd := newTestUpdater(dir)
	upd.UseTitles = true

	_, updated, _, err := upd.Preview()
	require.NoError(t, err)

	assert.Contains(t, updated, "- [Meeting Notes Q3](notes.md)")
	// Files without a frontmatter title fall back to the filename rules.
	assert.Contains(t, updated, "- [Plain](plain.md)")
}

func TestUpdater_TitlesOffByDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "# Title\n")
	writeFile(t, dir, "notes.md", "---\ntitle: Meeting Notes Q3\n---\n\nbody\n")

	upd := newTestUpdater(dir)

	_, updated, _, err := upd.Preview()
	require.NoError(t, err)
	assert.Contains(t, updated, "- [Notes](notes.md)")
}
