package browse

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/modules/showcase/dto"
	"folio/internal/ui/components"
	"folio/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the showcase use-case.
type Port interface {
	Load(ctx context.Context, page string) (dto.LoadOutput, error)
	View(ctx context.Context, page string) (dto.ViewOutput, error)
	Controls(ctx context.Context, page string) ([]dto.ControlGroupOutput, error)
	Activate(ctx context.Context, page, controlID string) (dto.ViewOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// LoadedMsg carries the first view of a page, or the load-error placeholder.
type LoadedMsg struct {
	Page     string
	View     dto.ViewOutput
	Controls []dto.ControlGroupOutput
	Failure  string
	Err      error
}

// ActivatedMsg carries the view produced by one control activation.
type ActivatedMsg struct {
	Page     string
	View     dto.ViewOutput
	Controls []dto.ControlGroupOutput
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model browses one page: a control bar over the rendered list.
type Model struct {
	port     Port
	page     string
	controls components.ControlBar
	content  viewport.Model
	spinner  spinner.Model
	view     dto.ViewOutput
	failure  string
	status   string
	loading  bool
	width    int
	height   int
}

func New(port Port, page string) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(0, 1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Green)

	return Model{port: port, page: page, content: vp, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

func (m Model) Page() string { return m.page }

func (m Model) Status() string { return m.status }

// ControlIDs lists the ids the palette can jump to.
func (m Model) ControlIDs() []string { return m.controls.IDs() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		if msg.Page != m.page {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.failure = msg.Failure
			if m.failure == "" {
				m.failure = theme.Hot.Render(msg.Err.Error())
			}
			m.status = "load failed: " + msg.Err.Error()
			m.controls.SetGroups(nil)
			m.content.SetContent(m.failure)
			return m, nil
		}
		m.failure = ""
		m.view = msg.View
		m.controls.SetGroups(msg.Controls)
		m.status = msg.View.Summary
		m.content.SetContent(m.renderContent())
		m.content.GotoTop()
		m.resize()

	case ActivatedMsg:
		if msg.Page != m.page {
			return m, nil
		}
		if msg.Err != nil {
			m.status = "activate: " + msg.Err.Error()
			return m, nil
		}
		m.view = msg.View
		m.controls.SetGroups(msg.Controls)
		m.status = msg.View.Summary
		m.content.SetContent(m.renderContent())
		m.content.GotoTop()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			m.controls.Left()
			return m, nil
		case "right", "l":
			m.controls.Right()
			return m, nil
		case "up", "k":
			m.controls.Up()
			return m, nil
		case "down", "j":
			m.controls.Down()
			return m, nil
		case "enter", " ":
			if id, ok := m.controls.Focused(); ok {
				return m, m.Activate(id)
			}
			return m, nil
		case "r":
			m.loading = true
			return m, tea.Batch(m.Reload(), m.spinner.Tick)
		}
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading "+m.page+"…")
	}
	if m.controls.Empty() {
		return m.content.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.controls.View(), "", m.content.View())
}

// ─── commands ────────────────────────────────────────────────────────────────

// Reload fetches the page from its sources and renders the default selection.
func (m Model) Reload() tea.Cmd {
	port, page := m.port, m.page
	return func() tea.Msg {
		if port == nil {
			return LoadedMsg{Page: page}
		}
		ctx := context.Background()
		loaded, err := port.Load(ctx, page)
		if err != nil {
			return LoadedMsg{Page: page, Failure: loaded.Failure, Err: err}
		}
		view, err := port.View(ctx, page)
		if err != nil {
			return LoadedMsg{Page: page, Err: err}
		}
		controls, err := port.Controls(ctx, page)
		return LoadedMsg{Page: page, View: view, Controls: controls, Err: err}
	}
}

// Activate routes a control activation through the use-case.
func (m Model) Activate(controlID string) tea.Cmd {
	port, page := m.port, m.page
	return func() tea.Msg {
		if port == nil {
			return ActivatedMsg{Page: page}
		}
		ctx := context.Background()
		view, err := port.Activate(ctx, page, controlID)
		if err != nil {
			return ActivatedMsg{Page: page, Err: err}
		}
		controls, err := port.Controls(ctx, page)
		return ActivatedMsg{Page: page, View: view, Controls: controls, Err: err}
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	controlsH := 0
	if !m.controls.Empty() {
		controlsH = lipgloss.Height(m.controls.View()) + 1
	}
	m.content.Width = m.width
	m.content.Height = max(m.height-controlsH, 1)
}

func (m Model) renderContent() string {
	body := theme.Muted.Render(m.view.Summary) + "\n\n" + m.view.Markup
	if m.view.FeaturedVisible {
		body = theme.Hot.Render("Featured") + "\n\n" + m.view.Featured + "\n\n" + body
	}
	return body
}
