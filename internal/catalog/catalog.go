// Package catalog holds the static table of cache-bearing locations the
// tool knows about, together with the category partition used for
// grouping, coloring, and bulk selection.
package catalog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ─── Categories ──────────────────────────────────────────────────────────────

// Category classifies a cache location. Every entry belongs to exactly one.
type Category int

const (
	User Category = iota
	Dev
	System
	Temp
	Android
)

// Categories lists all categories in display order.
var Categories = []Category{User, Dev, System, Temp, Android}

// String returns the canonical upper-case category name.
func (c Category) String() string {
	switch c {
	case User:
		return "USER"
	case Dev:
		return "DEV"
	case System:
		return "SYSTEM"
	case Temp:
		return "TEMP"
	case Android:
		return "ANDROID"
	}
	return "UNKNOWN"
}

// Key returns the single-letter menu key used to select the category's
// bulk-delete action. Keys are unique across categories and never collide
// with "a" (delete all) or "q" (quit).
func (c Category) Key() string {
	switch c {
	case User:
		return "u"
	case Dev:
		return "d"
	case System:
		return "s"
	case Temp:
		return "t"
	case Android:
		return "n"
	}
	return "?"
}

// Color returns the category's display color.
func (c Category) Color() lipgloss.AdaptiveColor {
	switch c {
	case User:
		return lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
	case Dev:
		return lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	case System:
		return lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	case Temp:
		return lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	case Android:
		return lipgloss.AdaptiveColor{Light: "#db2777", Dark: "#f472b6"}
	}
	return lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
}

// Description is a one-line summary used by the help legend.
func (c Category) Description() string {
	switch c {
	case User:
		return "Per-user application caches, logs, and downloaded images"
	case Dev:
		return "Developer tool caches (package managers, build systems)"
	case System:
		return "Machine-wide caches and logs (may need elevated privileges)"
	case Temp:
		return "Temporary file directories"
	case Android:
		return "Build artifacts under IDE project directories"
	}
	return ""
}

// ParseCategory resolves a case-insensitive category name. ok is false for
// anything outside the fixed enumeration.
func ParseCategory(name string) (Category, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "USER":
		return User, true
	case "DEV":
		return Dev, true
	case "SYSTEM":
		return System, true
	case "TEMP":
		return Temp, true
	case "ANDROID":
		return Android, true
	}
	return 0, false
}

// ─── Entries ─────────────────────────────────────────────────────────────────

// Entry is one resolved cache location: the unit that is measured, listed,
// and potentially deleted. Entries are created by the existence filter and
// live for the whole session; a deleted entry keeps its slot number but
// leaves the working set.
type Entry struct {
	// Path is the absolute path after home-directory and glob expansion.
	Path string

	// Category is the partition key the entry was cataloged under.
	Category Category

	// Size is the measured byte size. Meaningless unless Measured is true.
	Size int64

	// Measured reports whether the size query succeeded. A failed
	// measurement displays as "N/A" and contributes 0 to totals.
	Measured bool

	// Deleted marks an entry whose deletion completed. Deleted entries
	// stay in the session list so slot numbers are never reused.
	Deleted bool
}

// ─── Template table ──────────────────────────────────────────────────────────

// Template is one catalog row: a path pattern tagged with a category.
// A leading "~" refers to the operator's home directory; the pattern may
// contain a glob wildcard, expanded by the existence filter.
type Template struct {
	Pattern  string
	Category Category
}

// Templates returns the static catalog in display order. The table is
// intentionally not deduplicated: two rows resolving to the same concrete
// path produce two separate entries.
func Templates() []Template {
	return []Template{
		// User-level caches.
		{Pattern: "~/Library/Caches", Category: User},
		{Pattern: "~/Library/Logs", Category: User},
		{Pattern: "~/.cache", Category: User},
		{Pattern: "~/Downloads/*.dmg", Category: User},

		// Developer tool caches.
		{Pattern: "~/.npm/_cacache", Category: Dev},
		{Pattern: "~/.gradle/caches", Category: Dev},
		{Pattern: "~/.cargo/registry/cache", Category: Dev},
		{Pattern: "~/go/pkg/mod/cache", Category: Dev},
		{Pattern: "~/Library/Caches/pip", Category: Dev},
		{Pattern: "~/.cocoapods/repos", Category: Dev},

		// Machine-wide caches.
		{Pattern: "/Library/Caches", Category: System},
		{Pattern: "/Library/Logs", Category: System},

		// Temporary directories.
		{Pattern: "/tmp", Category: Temp},
		{Pattern: "/var/tmp", Category: Temp},
		{Pattern: "~/Library/Caches/TemporaryItems", Category: Temp},
	}
}

// AndroidProjectRoots returns the home-relative directories searched for
// IDE projects. Each existing root becomes one ANDROID entry whose size is
// the sum of build-artifact directories beneath it, not the root's own size.
func AndroidProjectRoots() []string {
	return []string{
		"~/AndroidStudioProjects",
		"~/StudioProjects",
	}
}

// BuildDirName is the directory name that marks a build-artifact tree
// under an Android project root.
const BuildDirName = "build"
