package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shirou/gopsutil/v4/disk"

	"github.com/lakemirror/cachesweep/internal/catalog"
	"github.com/lakemirror/cachesweep/internal/size"
	"github.com/lakemirror/cachesweep/internal/ui"
)

// Options controls presenter output.
type Options struct {
	// ShowSizes is false under --skip-size-calculation: the size column is
	// omitted entirely and totals render as "unknown".
	ShowSizes bool

	// Colored enables lipgloss styling. Off for non-TTY output and tests.
	Colored bool
}

func (o Options) style(s lipgloss.Style, text string) string {
	if !o.Colored {
		return text
	}
	return s.Render(text)
}

// ─── Disk banner ─────────────────────────────────────────────────────────────

// Banner renders a one-line free-space summary for the volume holding
// path. An empty string means the volume could not be queried; the caller
// just skips the line.
func Banner(path string, opts Options) string {
	usage, err := disk.Usage(path)
	if err != nil {
		return ""
	}
	line := fmt.Sprintf("Disk: %s free of %s",
		size.FormatSize(int64(usage.Free)), size.FormatSize(int64(usage.Total)))
	return opts.style(ui.MutedStyle(), line)
}

// ─── Entry table ─────────────────────────────────────────────────────────────

// Table renders the numbered working-set listing. Slot numbers are the
// entry's original position and survive deletions; deleted entries are
// simply not shown. Unmeasured entries display "N/A".
func Table(set []*catalog.Entry, opts Options) string {
	var b strings.Builder
	b.WriteString(opts.style(ui.TitleStyle(), "Cache folders"))
	b.WriteString("\n")

	for i, ent := range set {
		if ent.Deleted {
			continue
		}
		num := fmt.Sprintf("%3d.", i+1)
		cat := fmt.Sprintf("%-7s", ent.Category.String())
		if opts.Colored {
			cat = lipgloss.NewStyle().Foreground(ent.Category.Color()).Render(cat)
		}

		if !opts.ShowSizes {
			fmt.Fprintf(&b, "  %s %s %s\n", num, cat, ent.Path)
			continue
		}
		sz := "N/A"
		if ent.Measured {
			sz = size.FormatSize(ent.Size)
		}
		fmt.Fprintf(&b, "  %s %s %8s  %s\n", num, cat, sz, ent.Path)
	}

	if Live(set) == 0 {
		b.WriteString(opts.style(ui.MutedStyle(), "  (nothing left)"))
		b.WriteString("\n")
	}
	return b.String()
}

// ─── Totals ──────────────────────────────────────────────────────────────────

// TotalsBlock renders per-category totals and the grand total, recomputed
// from the current working set.
func TotalsBlock(set []*catalog.Entry, opts Options) string {
	var b strings.Builder

	if !opts.ShowSizes {
		fmt.Fprintf(&b, "Total: %s\n", opts.style(ui.MutedStyle(), "unknown"))
		return b.String()
	}

	t := Reduce(set)
	for _, c := range PresentCategories(set) {
		label := fmt.Sprintf("%-7s", c.String())
		if opts.Colored {
			label = lipgloss.NewStyle().Foreground(c.Color()).Render(label)
		}
		fmt.Fprintf(&b, "  %s %s\n", label, size.FormatSize(t.ByCategory[c]))
	}
	total := size.FormatSize(t.Grand)
	if opts.Colored {
		total = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorSuccess).Render(total)
	}
	fmt.Fprintf(&b, "Total: %s\n", total)
	return b.String()
}

// ─── Menu ────────────────────────────────────────────────────────────────────

// Menu renders the selectable actions: delete-all, one action per present
// category, delete-by-number, and quit. Excluded categories are never
// present, so their actions are never offered.
func Menu(set []*catalog.Entry, opts Options) string {
	var b strings.Builder
	key := func(k string) string {
		return opts.style(lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary), k)
	}

	live := Live(set)
	if live > 0 {
		fmt.Fprintf(&b, "  [%s] Delete all\n", key("a"))
		for _, c := range PresentCategories(set) {
			fmt.Fprintf(&b, "  [%s] Delete %s caches\n", key(c.Key()), c.String())
		}
		fmt.Fprintf(&b, "  [%s] Delete folder N\n", key(fmt.Sprintf("1-%d", len(set))))
	}
	fmt.Fprintf(&b, "  [%s] Quit (blank input quits too)\n", key("q"))
	return b.String()
}
