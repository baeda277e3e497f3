package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stacktower/stacktower/internal/game"
	"github.com/stacktower/stacktower/internal/profile"
	"github.com/stacktower/stacktower/internal/settings"
	"github.com/stacktower/stacktower/internal/sound"
	"github.com/stacktower/stacktower/internal/themes"
)

// Settings rows, top to bottom.
const (
	rowDifficulty = iota
	rowTheme
	rowSoundTest
	rowReset
	rowCount
)

// resetDoneMsg carries the outcome of a destructive reset.
type resetDoneMsg struct {
	err error
}

// SettingsModel is the Bubble Tea model for the settings screen.
type SettingsModel struct {
	deps       Deps
	cursor     int
	themeIndex int // cursor within themes.List()
	flow       *settings.Flow
	notice     string
	noticeFail bool
	width      int
	height     int
	keyMapper  *KeyMapper
	done       bool
	quitting   bool
}

// NewSettingsModel creates a new settings model.
func NewSettingsModel(deps Deps, width, height int) SettingsModel {
	m := SettingsModel{
		deps:      deps,
		flow:      settings.NewFlow(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	m.themeIndex = m.currentThemeIndex()
	return m
}

// currentThemeIndex finds the profile's active theme in the registry
// list.
func (m SettingsModel) currentThemeIndex() int {
	current := m.deps.Profile.Current().CurrentTheme
	for i, t := range themes.List() {
		if t.ID == current {
			return i
		}
	}
	return 0
}

// Init initializes the settings model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings screen.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case resetDoneMsg:
		m.flow.Finish(msg.err)
		if msg.err != nil {
			m.deps.Logger.Error("reset failed", "error", msg.err)
			m.deps.play(sound.EffectFailed)
			m.notice = "Reset failed - your data is untouched."
			m.noticeFail = true
		} else {
			m.deps.play(sound.EffectSuccess)
			m.notice = "All data has been reset."
			m.noticeFail = false
			m.themeIndex = m.currentThemeIndex()
		}
		m.flow.Acknowledge()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m SettingsModel) handleKey(msg tea.KeyMsg) (SettingsModel, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	// While a reset is armed, only confirm or cancel are meaningful.
	if m.flow.Phase() == settings.PhaseArmed {
		switch action {
		case MenuActionSelect:
			return m.confirmReset()
		case MenuActionBack, MenuActionQuit:
			m.flow.Disarm()
			m.notice = ""
			return m, nil
		}
		return m, nil
	}

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionBack:
		m.done = true
		return m, nil

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.deps.play(sound.EffectClick)
		}

	case MenuActionDown:
		if m.cursor < rowCount-1 {
			m.cursor++
			m.deps.play(sound.EffectClick)
		}

	case MenuActionLeft:
		return m.adjust(-1)

	case MenuActionRight:
		return m.adjust(1)

	case MenuActionSelect:
		return m.activate()
	}

	return m, nil
}

// adjust handles left/right on value rows.
func (m SettingsModel) adjust(delta int) (SettingsModel, tea.Cmd) {
	switch m.cursor {
	case rowDifficulty:
		return m.cycleDifficulty(delta), nil
	case rowTheme:
		list := themes.List()
		m.themeIndex = (m.themeIndex + delta + len(list)) % len(list)
		m.deps.play(sound.EffectClick)
	}
	return m, nil
}

// cycleDifficulty steps the difficulty setting and persists it
// immediately. Already-recorded scores are unaffected.
func (m SettingsModel) cycleDifficulty(delta int) SettingsModel {
	levels := game.Difficulties()
	current := m.deps.Profile.Current().Difficulty
	idx := 0
	for i, d := range levels {
		if d == current {
			idx = i
			break
		}
	}
	next := levels[(idx+delta+len(levels))%len(levels)]

	if err := settings.SelectDifficulty(m.deps.Profile, next); err != nil {
		m.deps.Logger.Error("difficulty update failed", "error", err)
		m.deps.play(sound.EffectFailed)
		m.notice = "Could not save difficulty."
		m.noticeFail = true
		return m
	}
	m.deps.play(sound.EffectClick)
	m.notice = ""
	return m
}

// activate handles Enter on the current row.
func (m SettingsModel) activate() (SettingsModel, tea.Cmd) {
	switch m.cursor {
	case rowTheme:
		return m.applyTheme(), nil

	case rowSoundTest:
		m.deps.play(sound.EffectChime)
		return m, nil

	case rowReset:
		if m.flow.Arm() {
			m.deps.play(sound.EffectButton)
			m.notice = ""
		}
		return m, nil
	}
	return m, nil
}

// applyTheme selects the highlighted theme, unlocking it first when
// the player has enough coins.
func (m SettingsModel) applyTheme() SettingsModel {
	list := themes.List()
	selected := list[m.themeIndex]
	snapshot := m.deps.Profile.Current()

	if snapshot.ThemeUnlocked(selected.ID) {
		id := selected.ID
		if err := m.deps.Profile.Update(profile.Patch{CurrentTheme: &id}); err != nil {
			m.deps.Logger.Error("theme update failed", "error", err)
			m.deps.play(sound.EffectFailed)
			m.notice = "Could not save theme."
			m.noticeFail = true
			return m
		}
		m.deps.play(sound.EffectChime)
		m.notice = fmt.Sprintf("Theme set to %s.", selected.Name)
		m.noticeFail = false
		return m
	}

	if snapshot.Coins < selected.Cost {
		m.deps.play(sound.EffectFailed)
		m.notice = fmt.Sprintf("Need %d more coins to unlock %s.", selected.Cost-snapshot.Coins, selected.Name)
		m.noticeFail = true
		return m
	}

	coins := snapshot.Coins - selected.Cost
	unlocked := append(append([]string(nil), snapshot.UnlockedThemes...), selected.ID)
	id := selected.ID
	patch := profile.Patch{
		Coins:          &coins,
		UnlockedThemes: unlocked,
		CurrentTheme:   &id,
	}
	if err := m.deps.Profile.Update(patch); err != nil {
		m.deps.Logger.Error("theme unlock failed", "error", err)
		m.deps.play(sound.EffectFailed)
		m.notice = "Could not save theme unlock."
		m.noticeFail = true
		return m
	}
	m.deps.play(sound.EffectSuccess)
	m.notice = fmt.Sprintf("%s unlocked!", selected.Name)
	m.noticeFail = false
	return m
}

// confirmReset starts the destructive reset. The flow guard makes a
// second confirm while one is in flight a no-op.
func (m SettingsModel) confirmReset() (SettingsModel, tea.Cmd) {
	if !m.flow.Confirm() {
		return m, nil
	}
	m.notice = ""
	deps := m.deps
	return m, func() tea.Msg {
		return resetDoneMsg{err: settings.PerformReset(deps.Scores, deps.Profile)}
	}
}

// View renders the settings screen.
func (m SettingsModel) View() string {
	if m.quitting {
		return ""
	}

	theme := m.deps.theme()
	snapshot := m.deps.Profile.Current()
	var b strings.Builder

	b.WriteString(theme.Palette.Title.Render(centerText("SETTINGS", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(theme.Palette.Subtitle.Render(fmt.Sprintf("Coins: %d", snapshot.Coins)), m.width))
	b.WriteString("\n\n")

	rows := []string{
		m.renderRow(rowDifficulty, "Difficulty", m.renderDifficultyValue(snapshot)),
		m.renderRow(rowTheme, "Theme", m.renderThemeValue(snapshot)),
		m.renderRow(rowSoundTest, "Sound test", "play chime"),
		m.renderRow(rowReset, "Reset all data", m.renderResetValue()),
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Render(strings.Join(rows, "\n"))
	b.WriteString(centerText(panel, m.width))
	b.WriteString("\n\n")

	if m.notice != "" {
		style := theme.Palette.Success
		if m.noticeFail {
			style = theme.Palette.Failure
		}
		b.WriteString(centerText(style.Render(m.notice), m.width))
		b.WriteString("\n")
	}

	controls := "Left/Right: Change  |  Enter: Apply  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(theme.Palette.Muted.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// renderRow renders one settings row with cursor highlight.
func (m SettingsModel) renderRow(row int, label, value string) string {
	theme := m.deps.theme()
	cursor := "  "
	labelText := fmt.Sprintf("%-16s", label)
	if m.cursor == row {
		cursor = "> "
		labelText = theme.Palette.Accent.Bold(true).Render(labelText)
	}
	return cursor + labelText + value
}

func (m SettingsModel) renderDifficultyValue(snapshot profile.Profile) string {
	theme := m.deps.theme()
	parts := make([]string, 0, 3)
	for _, d := range game.Difficulties() {
		label := d.Title()
		if d == snapshot.Difficulty {
			label = theme.Palette.Selected.Padding(0, 1).Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

func (m SettingsModel) renderThemeValue(snapshot profile.Profile) string {
	theme := m.deps.theme()
	list := themes.List()
	highlighted := list[m.themeIndex]

	status := fmt.Sprintf("locked, %d coins", highlighted.Cost)
	switch {
	case highlighted.ID == snapshot.CurrentTheme:
		status = "active"
	case snapshot.ThemeUnlocked(highlighted.ID):
		status = "unlocked"
	}

	return fmt.Sprintf("< %s > %s", highlighted.Name, theme.Palette.Muted.Render("("+status+")"))
}

func (m SettingsModel) renderResetValue() string {
	theme := m.deps.theme()
	switch m.flow.Phase() {
	case settings.PhaseArmed:
		return theme.Palette.Failure.Render("Press Enter to confirm, Esc to cancel")
	case settings.PhaseResetting:
		return theme.Palette.Muted.Render("Resetting...")
	}
	return theme.Palette.Muted.Render("scores, coins, themes, progress")
}

// Done reports the user pressed back.
func (m SettingsModel) Done() bool {
	return m.done
}

// IsQuitting returns true if user wants to quit entirely.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}
