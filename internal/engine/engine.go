// Package engine drives the interactive confirm-then-delete loop: MENU
// accepts a selection, CONFIRM gates every destructive action behind an
// explicit yes, and the loop re-renders recomputed totals after each
// completed or cancelled action until the operator quits.
package engine

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lakemirror/cachesweep/internal/catalog"
	"github.com/lakemirror/cachesweep/internal/report"
	"github.com/lakemirror/cachesweep/internal/size"
)

// Deleter removes a path tree. Swapped for a recorder in tests.
type Deleter interface {
	Remove(path string) error
}

type osDeleter struct{}

func (osDeleter) Remove(path string) error { return os.RemoveAll(path) }

// NewOSDeleter returns the real filesystem deleter.
func NewOSDeleter() Deleter { return osDeleter{} }

// Engine holds the session working set and the I/O it is driven through.
type Engine struct {
	In      io.Reader
	Out     io.Writer
	Entries []*catalog.Entry
	Deleter Deleter
	Opts    report.Options

	mutated bool
}

// Run executes the menu loop until the operator quits (explicitly, with
// blank input, or by closing stdin). Quitting performs zero filesystem
// mutations. The returned error is always nil today; the signature leaves
// room for I/O failures.
func (e *Engine) Run() error {
	in := bufio.NewScanner(e.In)

	for {
		fmt.Fprintln(e.Out)
		fmt.Fprint(e.Out, report.Table(e.Entries, e.Opts))
		fmt.Fprint(e.Out, report.TotalsBlock(e.Entries, e.Opts))
		fmt.Fprintln(e.Out)
		fmt.Fprint(e.Out, report.Menu(e.Entries, e.Opts))
		fmt.Fprint(e.Out, "Select: ")

		if !in.Scan() {
			fmt.Fprintln(e.Out)
			e.printFarewell()
			return nil
		}

		act := Parse(in.Text(), e.Entries)
		switch act.Kind {

		case Quit:
			e.printFarewell()
			return nil

		case Invalid:
			fmt.Fprintf(e.Out, "Invalid selection: %s.\n", act.Reason)

		case DeleteAll:
			e.confirmAndDelete(in, e.liveEntries(), "Delete ALL listed cache folders?")

		case DeleteCategory:
			targets := e.categoryEntries(act.Category)
			prompt := fmt.Sprintf("Delete all %s cache folders?", act.Category)
			e.confirmAndDelete(in, targets, prompt)

		case DeleteIndex:
			ent := e.Entries[act.Index-1]
			prompt := fmt.Sprintf("Delete %s?", ent.Path)
			e.confirmAndDelete(in, []*catalog.Entry{ent}, prompt)
		}
	}
}

func (e *Engine) printFarewell() {
	if e.mutated {
		fmt.Fprintln(e.Out, "Done.")
		return
	}
	fmt.Fprintln(e.Out, "Nothing deleted.")
}

// ─── Confirmation ────────────────────────────────────────────────────────────

// confirm asks a yes/no question. Only y/yes (case-insensitive) proceeds;
// anything else, including blank or EOF, cancels.
func (e *Engine) confirm(in *bufio.Scanner, prompt string) bool {
	fmt.Fprintf(e.Out, "%s [y/N]: ", prompt)
	if !in.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(in.Text())) {
	case "y", "yes":
		return true
	}
	return false
}

func (e *Engine) confirmAndDelete(in *bufio.Scanner, targets []*catalog.Entry, prompt string) {
	if !e.confirm(in, prompt) {
		fmt.Fprintln(e.Out, "Cancelled.")
		return
	}

	deleted, failed := 0, 0
	for _, ent := range targets {
		if e.deleteEntry(ent) {
			deleted++
		} else {
			failed++
		}
	}
	if deleted > 0 {
		e.mutated = true
	}

	if failed == 0 {
		fmt.Fprintf(e.Out, "Deleted %d cache folder(s).\n", deleted)
	} else {
		fmt.Fprintf(e.Out, "Deleted %d of %d cache folder(s) (%d failed).\n",
			deleted, len(targets), failed)
	}
}

// ─── Deletion ────────────────────────────────────────────────────────────────

// deleteEntry removes one entry's tree and reports success. ANDROID
// entries re-run the build-artifact search and remove each match; the
// project root itself is never deleted. A failed entry stays in the
// working set with its last-known size.
func (e *Engine) deleteEntry(ent *catalog.Entry) bool {
	if ent.Category == catalog.Android {
		return e.deleteProjectBuilds(ent)
	}

	slog.Debug("deleting", "path", ent.Path)
	if err := e.Deleter.Remove(ent.Path); err != nil {
		fmt.Fprintf(e.Out, "  failed: %s\n", ent.Path)
		slog.Debug("delete failed", "path", ent.Path, "error", err)
		return false
	}
	ent.Deleted = true
	return true
}

// deleteProjectBuilds deletes every build-artifact directory beneath an
// Android project root, each attempt independent of the others.
func (e *Engine) deleteProjectBuilds(ent *catalog.Entry) bool {
	dirs, err := size.FindBuildDirs(ent.Path)
	if err != nil {
		fmt.Fprintf(e.Out, "  failed: %s\n", ent.Path)
		slog.Debug("build dir search failed", "path", ent.Path, "error", err)
		return false
	}

	failed := 0
	for _, dir := range dirs {
		slog.Debug("deleting build dir", "path", dir)
		if err := e.Deleter.Remove(dir); err != nil {
			failed++
			fmt.Fprintf(e.Out, "  failed: %s\n", dir)
			slog.Debug("delete failed", "path", dir, "error", err)
		}
	}

	if failed > 0 {
		return false
	}
	ent.Deleted = true
	return true
}

// ─── Target selection ────────────────────────────────────────────────────────

func (e *Engine) liveEntries() []*catalog.Entry {
	var out []*catalog.Entry
	for _, ent := range e.Entries {
		if !ent.Deleted {
			out = append(out, ent)
		}
	}
	return out
}

func (e *Engine) categoryEntries(c catalog.Category) []*catalog.Entry {
	var out []*catalog.Entry
	for _, ent := range e.Entries {
		if !ent.Deleted && ent.Category == c {
			out = append(out, ent)
		}
	}
	return out
}
