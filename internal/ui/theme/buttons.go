package theme

import "github.com/charmbracelet/lipgloss"

var GroupLabel = lipgloss.NewStyle().Foreground(Subtext0).Width(8)

// RowButton is one filter button as drawn in a control row.
type RowButton struct {
	Label   string
	Active  bool
	Focused bool
}

// ButtonRow draws a control group: its name, then its buttons left to right.
// The active button keeps its highlight under the cursor.
func ButtonRow(group string, buttons []RowButton) string {
	parts := make([]string, 0, len(buttons)+1)
	parts = append(parts, GroupLabel.Render(group))
	for _, b := range buttons {
		style := Button
		switch {
		case b.Active:
			style = ButtonActive
		case b.Focused:
			style = ButtonFocus
		}
		label := b.Label
		if b.Focused {
			label = "›" + label
		}
		parts = append(parts, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
