package engine

import (
	"strconv"
	"strings"

	"github.com/lakemirror/cachesweep/internal/catalog"
	"github.com/lakemirror/cachesweep/internal/report"
)

// Kind tags the action variants accepted at the menu.
type Kind int

const (
	Quit Kind = iota
	DeleteAll
	DeleteCategory
	DeleteIndex
	Invalid
)

// Action is one parsed menu selection. Category is set for DeleteCategory,
// Index (1-based slot number) for DeleteIndex, Reason for Invalid.
type Action struct {
	Kind     Kind
	Category catalog.Category
	Index    int
	Reason   string
}

// Parse turns one input line into an Action. Blank input quits. Category
// keys are accepted only for categories still present in the working set;
// numbers refer to original slot positions and must name a live entry.
// Everything else is Invalid and causes a re-prompt with no side effects.
func Parse(line string, set []*catalog.Entry) Action {
	s := strings.ToLower(strings.TrimSpace(line))

	switch s {
	case "", "q", "quit":
		return Action{Kind: Quit}
	case "a", "all":
		if report.Live(set) == 0 {
			return Action{Kind: Invalid, Reason: "no cache folders left"}
		}
		return Action{Kind: DeleteAll}
	}

	for _, c := range report.PresentCategories(set) {
		if s == c.Key() {
			return Action{Kind: DeleteCategory, Category: c}
		}
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(set) {
			return Action{Kind: Invalid, Reason: "no such folder number"}
		}
		if set[n-1].Deleted {
			return Action{Kind: Invalid, Reason: "folder already deleted"}
		}
		return Action{Kind: DeleteIndex, Index: n}
	}

	return Action{Kind: Invalid, Reason: "unrecognized selection"}
}
