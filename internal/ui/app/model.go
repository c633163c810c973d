package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/modules/showcase/dto"
	"folio/internal/ui/components"
	"folio/internal/ui/theme"
	browseview "folio/internal/ui/views/browse"
)

// ─── ports ───────────────────────────────────────────────────────────────────

// Port is what the root model needs: the page list plus everything the
// per-page browse views need.
type Port interface {
	browseview.Port
	Pages(ctx context.Context) []dto.PageOutput
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Move    key.Binding
	Group   key.Binding
	Enter   key.Binding
	Reload  key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		Move:    key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "move in group")),
		Group:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "change group")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "activate")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "jump to control")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Move, k.Group, k.Enter},
		{k.Reload, k.Palette},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns page tabs, the help overlay
// and the jump palette; each tab is a browse view over one page.
type Model struct {
	titles []string
	views  []browseview.Model

	active   int
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	width    int
	height   int
}

func NewModel(port Port) Model {
	pages := port.Pages(context.Background())
	m := Model{
		keys:    defaultKeys(),
		help:    help.New(),
		palette: components.NewPalette(),
		status:  "ready",
	}
	for _, p := range pages {
		title := p.Title
		if title == "" {
			title = p.Name
		}
		m.titles = append(m.titles, title)
		m.views = append(m.views, browseview.New(port, p.Name))
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.views))
	for _, v := range m.views {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	// Load and activation results are routed by page, not by the active tab,
	// so a page that finishes loading in the background is not lost.
	case browseview.LoadedMsg:
		return m.route(msg.Page, msg)
	case browseview.ActivatedMsg:
		return m.route(msg.Page, msg)

	case components.PaletteSubmitMsg:
		if len(m.views) == 0 || msg.Input == "" {
			return m, nil
		}
		return m, m.views[m.active].Activate(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			if len(m.views) > 0 {
				m.active = (m.active + 1) % len(m.views)
			}
			return m, nil
		case "shift+tab":
			if len(m.views) > 0 {
				m.active = (m.active + len(m.views) - 1) % len(m.views)
			}
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			if len(m.views) == 0 {
				return m, nil
			}
			return m, m.palette.Open(m.views[m.active].ControlIDs())
		}
	}

	// Spinner ticks carry their spinner's id, so every page may see them.
	if _, tick := msg.(spinner.TickMsg); tick {
		return m.broadcast(msg)
	}
	if len(m.views) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.views[m.active], cmd = m.views[m.active].Update(msg)
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	case len(m.views) == 0:
		content = theme.Muted.Render("no pages configured")
	default:
		content = m.views[m.active].View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) renderTabBar() string {
	parts := make([]string, len(m.titles))
	for i, label := range m.titles {
		if i == m.active {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "folio  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if len(m.views) > 0 {
		if s := m.views[m.active].Status(); s != "" {
			left = s
		}
	}
	right := theme.Muted.Render("?:help  tab:page  enter:activate  :jump  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) route(page string, msg tea.Msg) (tea.Model, tea.Cmd) {
	for i, v := range m.views {
		if v.Page() == page {
			var cmd tea.Cmd
			m.views[i], cmd = v.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(m.views))
	for i, v := range m.views {
		var cmd tea.Cmd
		m.views[i], cmd = v.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 4}
	for i, v := range m.views {
		m.views[i], _ = v.Update(sz)
	}
}
