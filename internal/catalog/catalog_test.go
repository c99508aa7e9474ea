package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"user", User, true},
		{"USER", User, true},
		{" Dev ", Dev, true},
		{"system", System, true},
		{"TEMP", Temp, true},
		{"android", Android, true},
		{"browser", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if ok {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

func TestMenuKeysAreUniqueAndReserved(t *testing.T) {
	seen := map[string]bool{"a": true, "q": true}
	for _, c := range Categories {
		key := c.Key()
		require.Len(t, key, 1)
		assert.False(t, seen[key], "key %q for %s collides", key, c)
		seen[key] = true
	}
}

func TestTemplatesAreWellFormed(t *testing.T) {
	for _, tpl := range Templates() {
		assert.NotEmpty(t, tpl.Pattern)
		assert.Contains(t, []Category{User, Dev, System, Temp}, tpl.Category,
			"static templates never carry ANDROID; those come from project-root discovery")
		if !strings.HasPrefix(tpl.Pattern, "~") {
			assert.True(t, strings.HasPrefix(tpl.Pattern, "/"),
				"pattern %q must be home-relative or absolute", tpl.Pattern)
		}
	}
}

func TestAndroidProjectRootsAreHomeRelative(t *testing.T) {
	roots := AndroidProjectRoots()
	require.NotEmpty(t, roots)
	for _, r := range roots {
		assert.True(t, strings.HasPrefix(r, "~/"))
	}
}

func TestCategoryStringRoundTrips(t *testing.T) {
	for _, c := range Categories {
		got, ok := ParseCategory(c.String())
		require.True(t, ok)
		assert.Equal(t, c, got)
	}
}
