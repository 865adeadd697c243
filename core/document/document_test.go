package document_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"focus-writer/core/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keywords = []string{"focus", "writer"}

func setupDir(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("<html></html>"), 0o644))
	}
	return dir
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{"DefaultWithOthers", []string{"focus-writer.html", "notes.html"}, "focus-writer.html"},
		{"DefaultBeatsKeyword", []string{"a-focus.html", "focus-writer.html", "writer.html"}, "focus-writer.html"},
		{"KeywordOnly", []string{"my-writer-notes.html"}, "my-writer-notes.html"},
		{"KeywordBeatsExtension", []string{"about.html", "index.html", "zen-focus.html"}, "zen-focus.html"},
		{"KeywordCaseInsensitive", []string{"a.html", "MyWRITER.html"}, "MyWRITER.html"},
		{"FirstKeywordMatch", []string{"b-writer.html", "a-focus.html"}, "a-focus.html"},
		{"ExtensionFallback", []string{"index.html"}, "index.html"},
		{"ExtensionFallbackFirst", []string{"zeta.html", "alpha.html"}, "alpha.html"},
		{"IgnoresOtherExtensions", []string{"focus.txt", "writer.htm", "page.html"}, "page.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupDir(t, tt.files...)
			got, err := document.Resolve(dir, "focus-writer.html", keywords)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := document.Resolve(t.TempDir(), "focus-writer.html", keywords)
		assert.ErrorIs(t, err, document.ErrNotFound)
	})

	t.Run("NoHTML", func(t *testing.T) {
		dir := setupDir(t, "readme.md", "focus-writer.txt")
		_, err := document.Resolve(dir, "focus-writer.html", keywords)
		assert.ErrorIs(t, err, document.ErrNotFound)
	})

	t.Run("DirectoriesSkipped", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "focus-writer.html"), 0o755))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "site.html"), 0o755))
		_, err := document.Resolve(dir, "focus-writer.html", keywords)
		assert.ErrorIs(t, err, document.ErrNotFound)
	})
}

func TestResolve_Symlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on Windows")
	}

	t.Run("LinkToDirectorySkipped", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(t.TempDir(), "assets")
		require.NoError(t, os.Mkdir(target, 0o755))
		require.NoError(t, os.Symlink(target, filepath.Join(dir, "focus-site.html")))

		_, err := document.Resolve(dir, "focus-writer.html", keywords)
		assert.ErrorIs(t, err, document.ErrNotFound)
	})

	t.Run("DanglingLinkSkipped", func(t *testing.T) {
		dir := setupDir(t, "index.html")
		require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "a-writer.html")))

		got, err := document.Resolve(dir, "focus-writer.html", keywords)
		require.NoError(t, err)
		assert.Equal(t, "index.html", got)
	})

	t.Run("LinkToFileCounts", func(t *testing.T) {
		dir := setupDir(t, "index.html")
		require.NoError(t, os.Symlink(filepath.Join(dir, "index.html"), filepath.Join(dir, "writer-link.html")))

		got, err := document.Resolve(dir, "focus-writer.html", keywords)
		require.NoError(t, err)
		assert.Equal(t, "writer-link.html", got)
	})
}

func TestResolve_MissingDirectory(t *testing.T) {
	_, err := document.Resolve(filepath.Join(t.TempDir(), "gone"), "focus-writer.html", keywords)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, document.ErrNotFound)
}

func TestResolve_NoKeywords(t *testing.T) {
	dir := setupDir(t, "b-focus.html", "a.html")
	got, err := document.Resolve(dir, "focus-writer.html", nil)
	require.NoError(t, err)
	assert.Equal(t, "a.html", got)
}

func TestList(t *testing.T) {
	dir := setupDir(t, "c.html", "a.html", "b.css")
	names, err := document.List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.html", "c.html"}, names)
}
