package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stacktower/stacktower/internal/game"
	"github.com/stacktower/stacktower/internal/leaderboard"
	"github.com/stacktower/stacktower/internal/sound"
)

// Leaderboard layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show filter sidebar
	sidebarWidth       = 20 // Width of filter sidebar
)

// LeaderboardKeyMap defines the key bindings for the leaderboard.
type LeaderboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LeaderboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.PrevFilter, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k LeaderboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextFilter, k.PrevFilter},
		{k.Back, k.Quit},
	}
}

// DefaultLeaderboardKeyMap returns default key bindings.
func DefaultLeaderboardKeyMap() LeaderboardKeyMap {
	return LeaderboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next filter"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev filter"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoresLoadedMsg carries one finished leaderboard fetch. The seq
// field pairs the response with the request that issued it so a slow
// response for an old filter can never overwrite a newer one.
type scoresLoadedMsg struct {
	seq     int
	filter  leaderboard.Filter
	entries []leaderboard.Entry
	err     error
}

// LeaderboardModel is the Bubble Tea model for the leaderboard screen.
type LeaderboardModel struct {
	deps        Deps
	filter      leaderboard.Filter
	entries     []leaderboard.Entry
	seq         int // monotonic fetch sequence number
	loading     bool
	table       table.Model
	help        help.Model
	keys        LeaderboardKeyMap
	width       int
	height      int
	showSidebar bool
	done        bool
	quitting    bool
}

// NewLeaderboardModel creates a new leaderboard model.
func NewLeaderboardModel(deps Deps, width, height int) LeaderboardModel {
	h := help.New()
	h.ShowAll = false

	m := LeaderboardModel{
		deps:        deps,
		filter:      leaderboard.FilterAll,
		keys:        DefaultLeaderboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	return m
}

// Init issues the first fetch.
func (m LeaderboardModel) Init() tea.Cmd {
	return m.fetchCmd()
}

// fetchCmd loads scores for the current filter, stamped with the
// current sequence number.
func (m LeaderboardModel) fetchCmd() tea.Cmd {
	deps := m.deps
	filter := m.filter
	seq := m.seq
	return func() tea.Msg {
		records, err := deps.Scores.TopScores(filter.Mode, deps.LeaderboardLimit)
		if err != nil {
			return scoresLoadedMsg{seq: seq, filter: filter, err: err}
		}
		return scoresLoadedMsg{seq: seq, filter: filter, entries: leaderboard.Rank(records)}
	}
}

// createTable creates a new table with appropriate columns.
func (m *LeaderboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Blocks", Width: 7},
		{Title: "Difficulty", Width: 10},
		{Title: "Mode", Width: 12},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-9), // Leave room for header, help, and margins
	)

	theme := m.deps.theme()
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = theme.Palette.Selected
	t.SetStyles(s)

	return t
}

// updateTableRows rebuilds the table from the ranked entries.
func (m *LeaderboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rank := fmt.Sprintf("#%d", e.Rank)
		if medal := e.Tier.Medal(); medal != "" {
			rank = fmt.Sprintf("#%d %s", e.Rank, medal)
		}

		detail := e.Record.Mode.Title()
		if e.Record.Mode == game.ModeChallenge && e.Record.Level != "" {
			detail = game.LevelName(e.Record.Level)
		}

		rows[i] = table.Row{
			rank,
			fmt.Sprintf("%d", e.Record.Score),
			fmt.Sprintf("%d", e.Record.Blocks),
			e.Record.EffectiveDifficulty().Title(),
			detail,
			e.Record.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// setFilter switches the visible filter and issues a fresh fetch.
func (m LeaderboardModel) setFilter(f leaderboard.Filter) (LeaderboardModel, tea.Cmd) {
	m.filter = f
	m.seq++
	m.loading = true
	m.deps.play(sound.EffectClick)
	return m, m.fetchCmd()
}

// Update handles messages for the leaderboard.
func (m LeaderboardModel) Update(msg tea.Msg) (LeaderboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case scoresLoadedMsg:
		if msg.seq != m.seq {
			// Stale response from an earlier filter; drop it.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			// Keep the previously displayed entries on fetch failure.
			m.deps.Logger.Warn("leaderboard fetch failed",
				"filter", msg.filter.Title(), "error", msg.err)
			return m, nil
		}
		m.entries = msg.entries
		m.updateTableRows()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.done = true
			return m, nil

		case key.Matches(msg, m.keys.NextFilter):
			return m.setFilter(m.filter.Next())

		case key.Matches(msg, m.keys.PrevFilter):
			return m.setFilter(m.filter.Prev())

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the leaderboard.
func (m LeaderboardModel) View() string {
	if m.quitting {
		return ""
	}

	theme := m.deps.theme()
	var b strings.Builder

	title := fmt.Sprintf("LEADERBOARD - %s", m.filter.Title())
	b.WriteString(theme.Palette.Title.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(theme.Palette.Muted.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the leaderboard with a filter sidebar.
func (m LeaderboardModel) renderWideLayout() string {
	theme := m.deps.theme()

	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Filters\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for _, f := range leaderboard.Filters() {
		cursor := "  "
		line := f.Title()
		if f == m.filter {
			cursor = "> "
			line = theme.Palette.Accent.Bold(true).Render(line)
		}
		sidebar.WriteString(cursor + line)
		sidebar.WriteString("\n")
	}

	sidebarRendered := sidebarStyle.Render(sidebar.String())

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders the leaderboard with filter tabs above
// the table.
func (m LeaderboardModel) renderNarrowLayout() string {
	theme := m.deps.theme()
	var b strings.Builder

	tabs := make([]string, 0, len(leaderboard.Filters()))
	for _, f := range leaderboard.Filters() {
		label := f.Title()
		if f == m.filter {
			tabs = append(tabs, theme.Palette.Selected.Padding(0, 1).Render(label))
		} else {
			tabs = append(tabs, theme.Palette.Muted.Render(" "+label+" "))
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 {
		tabLine = fmt.Sprintf("< %s >", m.filter.Title())
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the podium, table or empty message.
func (m LeaderboardModel) renderTableContent() string {
	theme := m.deps.theme()

	if m.loading && len(m.entries) == 0 {
		return theme.Palette.Muted.Italic(true).Padding(2, 4).Render("Loading scores...")
	}

	if len(m.entries) == 0 {
		return theme.Palette.Muted.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nStack some blocks to claim the podium!")
	}

	return m.renderPodium() + "\n" + m.table.View()
}

// renderPodium shows the medal tiers for the top three entries.
func (m LeaderboardModel) renderPodium() string {
	theme := m.deps.theme()
	styles := map[leaderboard.Tier]lipgloss.Style{
		leaderboard.TierGold:   theme.Palette.Gold,
		leaderboard.TierSilver: theme.Palette.Silver,
		leaderboard.TierBronze: theme.Palette.Bronze,
	}

	parts := make([]string, 0, 3)
	for _, e := range m.entries {
		style, ok := styles[e.Tier]
		if !ok {
			break
		}
		parts = append(parts, style.Render(fmt.Sprintf("%s %d", e.Tier.Medal(), e.Record.Score)))
	}
	return strings.Join(parts, "   ")
}

// Done reports the user pressed back.
func (m LeaderboardModel) Done() bool {
	return m.done
}

// IsQuitting returns true if user wants to quit entirely.
func (m LeaderboardModel) IsQuitting() bool {
	return m.quitting
}
