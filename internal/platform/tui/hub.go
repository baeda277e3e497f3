package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen identifies one of the hub's destinations.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenLeaderboard
	ScreenStats
	ScreenSettings
)

// HubModel hosts the full screen flow: menu -> screen -> menu. It is
// the top-level model for both local runs and SSH sessions.
type HubModel struct {
	deps   Deps
	active Screen
	width  int
	height int

	// standalone means the hub was started directly on a sub-screen;
	// leaving that screen quits instead of returning to the menu.
	standalone bool

	menu        MenuModel
	leaderboard LeaderboardModel
	stats       StatsModel
	settings    SettingsModel
}

// NewHubModel creates a hub starting at the menu.
func NewHubModel(deps Deps, width, height int) HubModel {
	deps = deps.normalized()
	return HubModel{
		deps:   deps,
		active: ScreenMenu,
		width:  width,
		height: height,
		menu:   NewMenuModel(deps, width, height),
	}
}

// NewStandaloneModel creates a hub pinned to a single screen; backing
// out of it exits the program.
func NewStandaloneModel(deps Deps, screen Screen, width, height int) HubModel {
	m := NewHubModel(deps, width, height)
	m.standalone = true
	return m.open(screen)
}

// open switches to a screen, creating a fresh child model.
func (m HubModel) open(screen Screen) HubModel {
	m.active = screen
	switch screen {
	case ScreenMenu:
		m.menu = NewMenuModel(m.deps, m.width, m.height)
	case ScreenLeaderboard:
		m.leaderboard = NewLeaderboardModel(m.deps, m.width, m.height)
	case ScreenStats:
		m.stats = NewStatsModel(m.deps, m.width, m.height)
	case ScreenSettings:
		m.settings = NewSettingsModel(m.deps, m.width, m.height)
	}
	return m
}

// initCmd returns the active screen's Init command.
func (m HubModel) initCmd() tea.Cmd {
	switch m.active {
	case ScreenLeaderboard:
		return m.leaderboard.Init()
	case ScreenStats:
		return m.stats.Init()
	case ScreenSettings:
		return m.settings.Init()
	}
	return nil
}

// Init initializes the hub.
func (m HubModel) Init() tea.Cmd {
	return m.initCmd()
}

// Update delegates to the active screen and handles navigation.
func (m HubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}

	var cmd tea.Cmd
	switch m.active {
	case ScreenMenu:
		m.menu, cmd = m.menu.Update(msg)
		if sel := m.menu.Selected(); sel != nil {
			m = m.open(sel.Screen)
			return m, m.initCmd()
		}

	case ScreenLeaderboard:
		m.leaderboard, cmd = m.leaderboard.Update(msg)
		if m.leaderboard.Done() {
			return m.leave()
		}

	case ScreenStats:
		m.stats, cmd = m.stats.Update(msg)
		if m.stats.Done() {
			return m.leave()
		}

	case ScreenSettings:
		m.settings, cmd = m.settings.Update(msg)
		if m.settings.Done() {
			return m.leave()
		}
	}

	return m, cmd
}

// leave returns from a sub-screen to the menu, or quits when running
// standalone.
func (m HubModel) leave() (tea.Model, tea.Cmd) {
	if m.standalone {
		return m, tea.Quit
	}
	m = m.open(ScreenMenu)
	return m, nil
}

// View renders the active screen.
func (m HubModel) View() string {
	switch m.active {
	case ScreenLeaderboard:
		return m.leaderboard.View()
	case ScreenStats:
		return m.stats.View()
	case ScreenSettings:
		return m.settings.View()
	}
	return m.menu.View()
}

// Run starts the hub as a full-screen program.
func Run(deps Deps, width, height int) error {
	p := tea.NewProgram(NewHubModel(deps, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunScreen starts the hub pinned to a single screen.
func RunScreen(deps Deps, screen Screen, width, height int) error {
	p := tea.NewProgram(NewStandaloneModel(deps, screen, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
