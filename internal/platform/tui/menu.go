package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stacktower/stacktower/internal/sound"
)

// MenuItem is one hub menu destination.
type MenuItem struct {
	Screen Screen
	Title  string
}

// MenuModel is the Bubble Tea model for the hub menu.
type MenuModel struct {
	deps      Deps
	items     []MenuItem
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  *MenuItem
	quitting  bool
}

// NewMenuModel creates a new hub menu model.
func NewMenuModel(deps Deps, width, height int) MenuModel {
	return MenuModel{
		deps: deps,
		items: []MenuItem{
			{Screen: ScreenLeaderboard, Title: "Leaderboard"},
			{Screen: ScreenStats, Title: "Statistics"},
			{Screen: ScreenSettings, Title: "Settings"},
		},
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.deps.play(sound.EffectClick)
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
			m.deps.play(sound.EffectClick)
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			m.deps.play(sound.EffectButton)
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	theme := m.deps.theme()
	var b strings.Builder

	title := "  S T A C K   T O W E R  "
	b.WriteString("\n")
	b.WriteString(centerText(theme.Palette.Title.Render(title), m.width))
	b.WriteString("\n\n")

	snapshot := m.deps.Profile.Current()
	subtitle := fmt.Sprintf("Coins: %d   Games: %d   Difficulty: %s",
		snapshot.Coins, snapshot.TotalGamesPlayed, snapshot.Difficulty.Title())
	b.WriteString(centerText(theme.Palette.Subtitle.Render(subtitle), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		line := item.Title
		if i == m.cursor {
			cursor = "> "
			line = theme.Palette.Selected.Render(line)
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(theme.Palette.Muted.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen destination and clears it.
func (m *MenuModel) Selected() *MenuItem {
	sel := m.selected
	m.selected = nil
	return sel
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
