package cli

import (
	"context"
	"fmt"
	"strings"

	homekeepapp "github.com/alexanderramin/homekeep/internal/app"
	"github.com/alexanderramin/homekeep/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// ── key bindings ─────────────────────────────────────────────────────────────

type dashboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

// ── messages ─────────────────────────────────────────────────────────────────

// dashboardLoadedMsg carries a fresh status report.
type dashboardLoadedMsg struct {
	status *homekeepapp.StatusResponse
	err    error
}

// ── model ────────────────────────────────────────────────────────────────────

// dashboardModel shows a split-pane layout: the room list on the left and
// the selected room's areas and tasks on the right.
type dashboardModel struct {
	app     *App
	keys    dashboardKeyMap
	status  *homekeepapp.StatusResponse
	loading bool
	err     error
	cursor  int
	width   int
}

func newDashboardModel(app *App) dashboardModel {
	return dashboardModel{
		app:     app,
		keys:    newDashboardKeyMap(),
		loading: true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadData()
}

func (m dashboardModel) loadData() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		resp, err := app.Status.GetStatus(context.Background(), homekeepapp.NewStatusRequest())
		return dashboardLoadedMsg{status: resp, err: err}
	}
}

func (m dashboardModel) selectedRoom() (homekeepapp.RoomStatusView, bool) {
	if m.status == nil || m.cursor >= len(m.status.Rooms) {
		return homekeepapp.RoomStatusView{}, false
	}
	return m.status.Rooms[m.cursor], true
}

// ── update ───────────────────────────────────────────────────────────────────

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		// Keep the cursor on the same room across refreshes when it still exists.
		var selected string
		if room, ok := m.selectedRoom(); ok {
			selected = room.RoomID
		}
		m.status = msg.status
		m.cursor = 0
		for i, r := range m.status.Rooms {
			if r.RoomID == selected {
				m.cursor = i
				break
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			m.err = nil
			return m, m.loadData()
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.status != nil && m.cursor < len(m.status.Rooms)-1 {
				m.cursor++
			}
		}
	}

	return m, nil
}

// ── view rendering ───────────────────────────────────────────────────────────

const dashLeftPaneWidth = 36

func (m dashboardModel) View() string {
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.status == nil {
		return "\n  " + formatter.Dim("Loading...") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render("HOMEKEEP") + "  ")
	b.WriteString(formatter.FormatCounts("Tasks", m.status.Summary.TasksByStatus))
	b.WriteString("\n")

	if len(m.status.Rooms) == 0 {
		b.WriteString("  " + formatter.Dim("No rooms yet. Add one with `homekeep room add <name>`."))
		b.WriteString("\n")
		return b.String()
	}

	leftPane := m.renderLeftPane()
	rightPane := m.renderRightPane()

	if m.width < 80 {
		b.WriteString(leftPane)
		b.WriteString("\n")
		b.WriteString(rightPane)
	} else {
		rightWidth := max(m.width-dashLeftPaneWidth-3, 20)
		leftCol := lipgloss.NewStyle().Width(dashLeftPaneWidth).Render(leftPane)
		divider := lipgloss.NewStyle().Foreground(formatter.ColorDim).Render("│")
		rightCol := lipgloss.NewStyle().Width(rightWidth).Render(rightPane)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " "+divider+" ", rightCol))
	}

	b.WriteString("\n\n" + m.renderHelp())
	if m.loading {
		b.WriteString("  " + formatter.Dim("refreshing..."))
	}
	b.WriteString("\n")
	return b.String()
}

func (m dashboardModel) renderLeftPane() string {
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("ROOMS") + "\n\n")

	for i, r := range m.status.Rooms {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		name := r.RoomName
		if len([]rune(name)) > 16 {
			name = string([]rune(name)[:15]) + "…"
		}

		fmt.Fprintf(&b, "%s%s %s %s\n",
			cursor,
			formatter.StatusDot(r.Status),
			nameStyle.Render(padRight(name, 16)),
			formatter.ScoreBar(r.Score, r.Status, r.HasSignal, 6),
		)
	}
	return b.String()
}

func (m dashboardModel) renderRightPane() string {
	room, ok := m.selectedRoom()
	if !ok {
		return formatter.Dim("Select a room to see details.")
	}
	return formatter.FormatRoomDetail(room, m.status.Summary.GeneratedAt)
}

func (m dashboardModel) renderHelp() string {
	parts := make([]string, 0, 4)
	for _, kb := range m.keys.ShortHelp() {
		h := kb.Help()
		parts = append(parts, formatter.StyleFg.Render(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return "  " + strings.Join(parts, formatter.Dim("  ·  "))
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive room and area status dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(newDashboardModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
