package artifact

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFileAt creates a file with content and pins its mtime.
func writeFileAt(t *testing.T, dir, name, content string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestResolve_NewestWins(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)

	writeFileAt(t, dir, "layout_2024.json", `{"racks":[]}`, base)
	newest := writeFileAt(t, dir, "layout_2025.json", `{"racks":[]}`, base.Add(10*time.Minute))
	writeFileAt(t, dir, "motion_a.txt", "Character Idle 10\n", base.Add(5*time.Minute))

	res, err := NewDirResolver().Resolve(dir, []string{".json"})
	require.NoError(t, err)
	assert.Equal(t, newest, res.Path)
	assert.WithinDuration(t, base.Add(10*time.Minute), res.ModTime, time.Second)

	txt, err := NewDirResolver().Resolve(dir, []string{".txt"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "motion_a.txt"), txt.Path)
}

func TestResolve_RepeatedCallsAreStable(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)

	// Identical mtimes force the tie-break path.
	writeFileAt(t, dir, "a.usd", "scene", base)
	writeFileAt(t, dir, "b.usd", "scene", base)
	writeFileAt(t, dir, "c.usd", "scene", base)

	r := NewDirResolver()
	first, err := r.Resolve(dir, []string{".usd"})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := r.Resolve(dir, []string{".usd"})
		require.NoError(t, err)
		assert.Equal(t, first.Path, again.Path)
	}
	// Lexicographically greatest name wins the tie.
	assert.Equal(t, filepath.Join(dir, "c.usd"), first.Path)
}

func TestResolve_MultipleExtensions(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)

	writeFileAt(t, dir, "scene.usd", "old", base)
	newest := writeFileAt(t, dir, "scene_v2.usda", "new", base.Add(time.Minute))

	res, err := NewDirResolver().Resolve(dir, []string{".usd", ".usda", ".usdc"})
	require.NoError(t, err)
	assert.Equal(t, newest, res.Path)
}

func TestResolve_ExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFileAt(t, dir, "Scene.USD", "scene", time.Now())

	res, err := NewDirResolver().Resolve(dir, []string{".usd"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Scene.USD"), res.Path)
}

func TestResolve_NotFoundReasons(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := NewDirResolver().Resolve(filepath.Join(t.TempDir(), "nope"), []string{".json"})
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, ReasonMissingDir, nf.Reason)
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := NewDirResolver().Resolve(t.TempDir(), []string{".json"})
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, ReasonEmptyDir, nf.Reason)
	})

	t.Run("no matching extension", func(t *testing.T) {
		dir := t.TempDir()
		writeFileAt(t, dir, "readme.md", "notes", time.Now())
		_, err := NewDirResolver().Resolve(dir, []string{".json"})
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, ReasonNoMatch, nf.Reason)
		assert.Contains(t, nf.Error(), ".json")
		assert.Contains(t, nf.Error(), dir)
	})
}

func TestResolve_SkipsEmptyFilesAndDirectories(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)

	// A newer but empty file must never win over an older real one.
	valid := writeFileAt(t, dir, "layout.json", `{"racks":[]}`, base)
	writeFileAt(t, dir, "truncated.json", "", base.Add(time.Minute))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "backup.json"), 0755))

	res, err := NewDirResolver().Resolve(dir, []string{".json"})
	require.NoError(t, err)
	assert.Equal(t, valid, res.Path)
}

func TestResolve_OnlyEmptyMatches(t *testing.T) {
	dir := t.TempDir()
	writeFileAt(t, dir, "layout.json", "", time.Now())

	_, err := NewDirResolver().Resolve(dir, []string{".json"})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, ReasonNoMatch, nf.Reason)
}

func TestResolve_DoesNotDescendSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "archive")
	require.NoError(t, os.Mkdir(sub, 0755))
	writeFileAt(t, sub, "old.json", `{}`, time.Now())

	_, err := NewDirResolver().Resolve(dir, []string{".json"})
	assert.True(t, errors.As(err, new(*NotFoundError)))
}
