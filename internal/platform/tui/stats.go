package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stacktower/stacktower/internal/game"
	"github.com/stacktower/stacktower/internal/stats"
)

// statsLoadedMsg carries one finished statistics fetch.
type statsLoadedMsg struct {
	seq     int
	perMode map[game.Mode]stats.ModeStats
	overall stats.Overall
	err     error
}

// StatsModel is the Bubble Tea model for the statistics screen.
type StatsModel struct {
	deps      Deps
	perMode   map[game.Mode]stats.ModeStats
	overall   stats.Overall
	seq       int
	loading   bool
	loaded    bool
	width     int
	height    int
	keyMapper *KeyMapper
	done      bool
	quitting  bool
}

// NewStatsModel creates a new statistics model.
func NewStatsModel(deps Deps, width, height int) StatsModel {
	return StatsModel{
		deps:      deps,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		loading:   true,
	}
}

// Init issues the first fetch.
func (m StatsModel) Init() tea.Cmd {
	return m.fetchCmd()
}

// fetchCmd samples the most recent records per mode and aggregates
// them. When one mode's fetch fails the whole refresh is dropped and
// the previous numbers stay on screen.
func (m StatsModel) fetchCmd() tea.Cmd {
	deps := m.deps
	seq := m.seq
	return func() tea.Msg {
		samples := make(map[game.Mode][]game.ScoreRecord, len(game.Modes()))
		for _, mode := range game.Modes() {
			records, err := deps.Scores.RecentScores(mode, deps.StatsSampleSize)
			if err != nil {
				return statsLoadedMsg{seq: seq, err: err}
			}
			samples[mode] = records
		}

		perMode := make(map[game.Mode]stats.ModeStats, len(samples))
		for mode, records := range samples {
			st := stats.AggregateMode(mode, records)
			if mode == game.ModeChallenge {
				st = stats.WithChallengeProgress(st, deps.Profile.Current().ChallengeProgress)
			}
			perMode[mode] = st
		}

		return statsLoadedMsg{
			seq:     seq,
			perMode: perMode,
			overall: stats.AggregateOverall(samples),
		}
	}
}

// Update handles messages for the statistics screen.
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.deps.Logger.Warn("stats fetch failed", "error", msg.err)
			return m, nil
		}
		m.perMode = msg.perMode
		m.overall = msg.overall
		m.loaded = true
		return m, nil

	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack:
			m.done = true
			return m, nil
		case MenuActionSelect:
			// Manual refresh.
			m.seq++
			m.loading = true
			return m, m.fetchCmd()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// View renders the statistics screen.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	theme := m.deps.theme()
	var b strings.Builder

	b.WriteString(theme.Palette.Title.Render(centerText("STATISTICS", m.width)))
	b.WriteString("\n\n")

	if !m.loaded {
		b.WriteString(centerText(theme.Palette.Muted.Italic(true).Render("Loading statistics..."), m.width))
		b.WriteString("\n")
		return b.String()
	}

	panels := make([]string, 0, len(game.Modes()))
	for _, mode := range game.Modes() {
		panels = append(panels, m.renderModePanel(m.perMode[mode]))
	}

	if m.width >= 3*(modePanelWidth+4) {
		b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, panels...), m.width))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, panels...))
	}
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderOverall(), m.width))
	b.WriteString("\n\n")

	controls := "Enter: Refresh  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(theme.Palette.Muted.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

const modePanelWidth = 28

// renderModePanel renders one mode's statistics panel.
func (m StatsModel) renderModePanel(st stats.ModeStats) string {
	theme := m.deps.theme()

	var b strings.Builder
	b.WriteString(theme.Palette.Accent.Bold(true).Render(st.Mode.Title()))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Games played   %d\n", st.GamesPlayed))
	b.WriteString(fmt.Sprintf("Average score  %d\n", st.AverageScore))

	switch st.Mode {
	case game.ModeClassic:
		b.WriteString(fmt.Sprintf("Best streak    %d blocks\n", st.BestStreak))
	case game.ModeTimeAttack:
		b.WriteString(fmt.Sprintf("Best run       %d blocks\n", st.BestTime))
	case game.ModeChallenge:
		b.WriteString(fmt.Sprintf("Completed      %d/%d levels\n", st.LevelsCompleted, len(game.Levels())))
		b.WriteString(fmt.Sprintf("Stars          %d (avg %.1f)\n", st.TotalStars, st.AverageStars))
	}

	b.WriteString("\n")
	b.WriteString(m.renderBreakdown(st.Breakdown))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(modePanelWidth).
		Padding(0, 1).
		Render(b.String())
}

// renderBreakdown renders a difficulty histogram.
func (m StatsModel) renderBreakdown(b stats.Breakdown) string {
	theme := m.deps.theme()
	var sb strings.Builder
	sb.WriteString(theme.Palette.Muted.Render("By difficulty"))
	sb.WriteString("\n")
	for _, d := range game.Difficulties() {
		sb.WriteString(fmt.Sprintf("  %-7s %d\n", d.Title(), b.Count(d)))
	}
	return sb.String()
}

// renderOverall renders the cross-mode summary line.
func (m StatsModel) renderOverall() string {
	theme := m.deps.theme()
	summary := fmt.Sprintf("Sampled games: %d   Easy: %d  Medium: %d  Hard: %d",
		m.overall.TotalGamesPlayed,
		m.overall.Breakdown.Easy,
		m.overall.Breakdown.Medium,
		m.overall.Breakdown.Hard,
	)
	return theme.Palette.Subtitle.Render(summary)
}

// Done reports the user pressed back.
func (m StatsModel) Done() bool {
	return m.done
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}
