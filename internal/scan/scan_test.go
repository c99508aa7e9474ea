package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakemirror/cachesweep/internal/catalog"
)

func mkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func testTemplates() []catalog.Template {
	return []catalog.Template{
		{Pattern: "~/Library/Caches", Category: catalog.User},
		{Pattern: "~/Downloads/*.dmg", Category: catalog.User},
		{Pattern: "~/devcache", Category: catalog.Dev},
		{Pattern: "~/missing", Category: catalog.Temp},
	}
}

func TestResolveKeepsCatalogOrder(t *testing.T) {
	home := t.TempDir()
	mkdir(t, filepath.Join(home, "Library", "Caches"))
	touch(t, filepath.Join(home, "Downloads", "a.dmg"))
	touch(t, filepath.Join(home, "Downloads", "b.dmg"))
	mkdir(t, filepath.Join(home, "devcache"))
	mkdir(t, filepath.Join(home, "AndroidStudioProjects"))

	r := &Resolver{
		Home:         home,
		Templates:    testTemplates(),
		AndroidRoots: []string{"~/AndroidStudioProjects"},
	}
	set := r.Resolve()

	var paths []string
	for _, e := range set {
		paths = append(paths, e.Path)
	}
	assert.Equal(t, []string{
		filepath.Join(home, "Library", "Caches"),
		filepath.Join(home, "Downloads", "a.dmg"),
		filepath.Join(home, "Downloads", "b.dmg"),
		filepath.Join(home, "devcache"),
		filepath.Join(home, "AndroidStudioProjects"),
	}, paths)
	assert.Equal(t, catalog.Android, set[4].Category)
}

func TestResolveDropsMissingSilently(t *testing.T) {
	home := t.TempDir()
	mkdir(t, filepath.Join(home, "devcache"))

	r := &Resolver{Home: home, Templates: testTemplates(), AndroidRoots: []string{"~/nope"}}
	set := r.Resolve()

	require.Len(t, set, 1)
	assert.Equal(t, filepath.Join(home, "devcache"), set[0].Path)
}

func TestResolveRejectsPlainFileForDirTemplate(t *testing.T) {
	home := t.TempDir()
	touch(t, filepath.Join(home, "devcache")) // a file, not a directory

	r := &Resolver{Home: home, Templates: testTemplates(), AndroidRoots: []string{}}
	assert.Empty(t, r.Resolve())
}

func TestResolveAppliesExclusions(t *testing.T) {
	home := t.TempDir()
	mkdir(t, filepath.Join(home, "Library", "Caches"))
	mkdir(t, filepath.Join(home, "devcache"))
	mkdir(t, filepath.Join(home, "AndroidStudioProjects"))

	r := &Resolver{
		Home:         home,
		Templates:    testTemplates(),
		AndroidRoots: []string{"~/AndroidStudioProjects"},
		Exclude: map[catalog.Category]bool{
			catalog.Dev:     true,
			catalog.Android: true,
		},
	}
	set := r.Resolve()

	require.Len(t, set, 1)
	for _, e := range set {
		assert.NotEqual(t, catalog.Dev, e.Category)
		assert.NotEqual(t, catalog.Android, e.Category)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	home := t.TempDir()
	mkdir(t, filepath.Join(home, "Library", "Caches"))
	touch(t, filepath.Join(home, "Downloads", "a.dmg"))

	r := &Resolver{Home: home, Templates: testTemplates(), AndroidRoots: []string{}}
	first := r.Resolve()
	second := r.Resolve()

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Path, second[i].Path)
		assert.Equal(t, first[i].Category, second[i].Category)
	}
}

func TestResolveDoesNotDeduplicateTemplates(t *testing.T) {
	home := t.TempDir()
	mkdir(t, filepath.Join(home, "shared"))

	// Two catalog rows resolving to the same concrete path stay two entries.
	r := &Resolver{
		Home: home,
		Templates: []catalog.Template{
			{Pattern: "~/shared", Category: catalog.User},
			{Pattern: "~/shared", Category: catalog.Temp},
		},
		AndroidRoots: []string{},
	}
	set := r.Resolve()

	require.Len(t, set, 2)
	assert.Equal(t, set[0].Path, set[1].Path)
	assert.NotEqual(t, set[0].Category, set[1].Category)
}
