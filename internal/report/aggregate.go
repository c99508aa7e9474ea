// Package report aggregates the working set into category totals and
// renders the entry table, totals block, and action menu.
package report

import "github.com/lakemirror/cachesweep/internal/catalog"

// Totals is the pure reduction of a working set: one running total per
// category plus the grand total. It is recomputed from scratch on every
// render, never mutated incrementally, so totals cannot drift after
// partial deletion.
type Totals struct {
	Grand      int64
	ByCategory map[catalog.Category]int64
}

// Reduce folds the live (non-deleted) entries into Totals. Unmeasured
// entries contribute 0 but are still listed by the presenter.
func Reduce(set []*catalog.Entry) Totals {
	t := Totals{ByCategory: make(map[catalog.Category]int64)}
	for _, ent := range set {
		if ent.Deleted {
			continue
		}
		if !ent.Measured {
			// Still creates the category bucket so the menu offers it.
			t.ByCategory[ent.Category] += 0
			continue
		}
		t.ByCategory[ent.Category] += ent.Size
		t.Grand += ent.Size
	}
	return t
}

// Live reports how many entries remain in the working set.
func Live(set []*catalog.Entry) int {
	n := 0
	for _, ent := range set {
		if !ent.Deleted {
			n++
		}
	}
	return n
}

// PresentCategories returns, in display order, the categories that still
// have at least one live entry. Excluded categories never appear because
// they never entered the set.
func PresentCategories(set []*catalog.Entry) []catalog.Category {
	present := make(map[catalog.Category]bool)
	for _, ent := range set {
		if !ent.Deleted {
			present[ent.Category] = true
		}
	}
	var cats []catalog.Category
	for _, c := range catalog.Categories {
		if present[c] {
			cats = append(cats, c)
		}
	}
	return cats
}
