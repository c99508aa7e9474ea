// Package progress renders the measurement pass: a spinner, a progress
// bar, and the path currently being sized. The measuring goroutines stream
// one message per finished entry into the bubbletea program; on a plain
// pipe the pass runs without any UI.
package progress

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lakemirror/cachesweep/internal/catalog"
	"github.com/lakemirror/cachesweep/internal/size"
	"github.com/lakemirror/cachesweep/internal/ui"
)

// ─── Messages ────────────────────────────────────────────────────────────────

type entrySizedMsg struct {
	path     string
	bytes    int64
	measured bool
}

type measureDoneMsg struct{}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea model for the sizing pass.
type Model struct {
	spinner spinner.Model
	bar     progress.Model
	total   int
	done    int
	bytes   int64
	current string
	width   int
}

// New creates a Model expecting total entry results.
func New(total int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorPrimary)

	return Model{
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient()),
		total:   total,
		width:   80,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case entrySizedMsg:
		m.done++
		m.current = msg.path
		if msg.measured {
			m.bytes += msg.bytes
		}
		return m, nil

	case measureDoneMsg:
		return m, tea.Quit
	}

	// Measurement is not cancellable; key presses are ignored.
	return m, nil
}

func (m Model) View() string {
	if m.total == 0 {
		return ""
	}

	frac := float64(m.done) / float64(m.total)
	current := m.current
	if maxLen := m.width - 10; maxLen > 0 && len(current) > maxLen {
		current = "…" + current[len(current)-maxLen+1:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s Measuring caches  %d/%d  %s\n",
		m.spinner.View(), m.done, m.total, size.FormatSize(m.bytes))
	fmt.Fprintf(&b, "  %s\n", m.bar.ViewAs(frac))
	fmt.Fprintf(&b, "  %s\n", ui.MutedStyle().Render(current))
	return b.String()
}

// ─── Runner ──────────────────────────────────────────────────────────────────

// Measure runs the sizing pass over the working set. When interactive, the
// pass renders through bubbletea on stderr; otherwise it runs silently
// (debug tracing still applies). Either way every entry has been measured
// when Measure returns.
func Measure(est *size.Estimator, set []*catalog.Entry, interactive bool) {
	if !interactive || len(set) == 0 {
		est.MeasureAll(set, nil)
		return
	}

	p := tea.NewProgram(New(len(set)), tea.WithOutput(os.Stderr))
	done := make(chan struct{})
	go func() {
		est.MeasureAll(set, func(ent *catalog.Entry) {
			p.Send(entrySizedMsg{path: ent.Path, bytes: ent.Size, measured: ent.Measured})
		})
		close(done)
		p.Send(measureDoneMsg{})
	}()

	// A TUI failure must not sink the pipeline: even if Run returns early,
	// wait for the measuring goroutine so the menu sees final sizes.
	_, _ = p.Run()
	<-done
}
