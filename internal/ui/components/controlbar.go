package components

import (
	"strings"

	"folio/internal/modules/showcase/dto"
	"folio/internal/ui/theme"
)

// ControlBar is a cursor over rows of filter buttons. It never changes the
// active control itself; it reports which control the cursor is on and the
// caller activates it.
type ControlBar struct {
	groups []dto.ControlGroupOutput
	row    int
	col    int
}

// SetGroups replaces the rows and keeps the cursor in bounds.
func (b *ControlBar) SetGroups(groups []dto.ControlGroupOutput) {
	b.groups = groups
	if b.row >= len(groups) {
		b.row = 0
		b.col = 0
	}
	b.clampCol()
}

func (b ControlBar) Empty() bool { return len(b.groups) == 0 }

func (b *ControlBar) Left() {
	if b.col > 0 {
		b.col--
	}
}

func (b *ControlBar) Right() {
	if len(b.groups) == 0 {
		return
	}
	if b.col < len(b.groups[b.row].Controls)-1 {
		b.col++
	}
}

func (b *ControlBar) Up() {
	if b.row > 0 {
		b.row--
		b.clampCol()
	}
}

func (b *ControlBar) Down() {
	if b.row < len(b.groups)-1 {
		b.row++
		b.clampCol()
	}
}

// Focused returns the control id under the cursor.
func (b ControlBar) Focused() (string, bool) {
	if len(b.groups) == 0 || len(b.groups[b.row].Controls) == 0 {
		return "", false
	}
	return b.groups[b.row].Controls[b.col].ID, true
}

// IDs lists every control id, row by row.
func (b ControlBar) IDs() []string {
	var out []string
	for _, g := range b.groups {
		for _, c := range g.Controls {
			out = append(out, c.ID)
		}
	}
	return out
}

func (b ControlBar) View() string {
	rows := make([]string, 0, len(b.groups))
	for r, g := range b.groups {
		buttons := make([]theme.RowButton, len(g.Controls))
		for c, ctl := range g.Controls {
			buttons[c] = theme.RowButton{Label: ctl.Label, Active: ctl.Active, Focused: r == b.row && c == b.col}
		}
		rows = append(rows, theme.ButtonRow(g.Group, buttons))
	}
	return strings.Join(rows, "\n")
}

func (b *ControlBar) clampCol() {
	if len(b.groups) == 0 {
		b.col = 0
		return
	}
	if n := len(b.groups[b.row].Controls); b.col >= n {
		b.col = max(n-1, 0)
	}
}
