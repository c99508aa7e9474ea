// Package scan turns the catalog into the session working set: templates
// are expanded against the operator's home directory, globs are resolved,
// excluded categories are dropped, and only paths that actually exist
// survive.
package scan

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lakemirror/cachesweep/internal/catalog"
)

// Resolver expands catalog templates into concrete, existing entries.
// Home is injected once at construction; the pipeline never consults the
// environment after that.
type Resolver struct {
	// Home is the operator's home directory, substituted for "~".
	Home string

	// Exclude holds categories the operator opted out of for this run.
	// An excluded category never reaches the working set.
	Exclude map[catalog.Category]bool

	// Templates overrides the static catalog. Nil means catalog.Templates().
	Templates []catalog.Template

	// AndroidRoots overrides the project-root discovery list. Nil means
	// catalog.AndroidProjectRoots().
	AndroidRoots []string
}

// Resolve produces the ordered working set: static templates in catalog
// order, glob expansions inserted in matched order, then one ANDROID entry
// per existing project root. Paths that do not exist, or whose existence
// check errors, are silently omitted.
func (r *Resolver) Resolve() []*catalog.Entry {
	templates := r.Templates
	if templates == nil {
		templates = catalog.Templates()
	}
	roots := r.AndroidRoots
	if roots == nil {
		roots = catalog.AndroidProjectRoots()
	}

	var set []*catalog.Entry
	for _, t := range templates {
		if r.Exclude[t.Category] {
			continue
		}
		for _, path := range r.expand(t.Pattern) {
			set = append(set, &catalog.Entry{Path: path, Category: t.Category})
		}
	}

	if !r.Exclude[catalog.Android] {
		for _, root := range roots {
			path := r.home(root)
			info, err := os.Stat(path)
			if err != nil || !info.IsDir() {
				continue
			}
			set = append(set, &catalog.Entry{Path: path, Category: catalog.Android})
		}
	}

	slog.Debug("scan complete", "entries", len(set))
	return set
}

// expand resolves one template pattern to zero or more existing paths.
// Non-glob patterns must be directories; glob matches may also be plain
// files (e.g. downloaded disk images).
func (r *Resolver) expand(pattern string) []string {
	path := r.home(pattern)

	if !strings.ContainsAny(path, "*?[") {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			return nil
		}
		return []string{filepath.Clean(path)}
	}

	matches, err := filepath.Glob(path)
	if err != nil {
		return nil
	}
	var paths []string
	for _, m := range matches {
		if _, err := os.Stat(m); err != nil {
			continue
		}
		paths = append(paths, filepath.Clean(m))
	}
	return paths
}

// home substitutes the injected home directory for a leading "~".
func (r *Resolver) home(pattern string) string {
	if pattern == "~" {
		return r.Home
	}
	if strings.HasPrefix(pattern, "~/") {
		return filepath.Join(r.Home, pattern[2:])
	}
	return pattern
}
