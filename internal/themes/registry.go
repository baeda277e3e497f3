// Package themes provides the fixed registry of visual themes. Themes
// register themselves in init() and are looked up by id, with any
// unknown id resolving to the default theme.
package themes

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// DefaultID is the theme every profile starts with. It can never be
// locked.
const DefaultID = "default"

// Palette holds the lipgloss styles a theme contributes to the
// screens.
type Palette struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Border   lipgloss.Style
	Selected lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style
	Gold     lipgloss.Style
	Silver   lipgloss.Style
	Bronze   lipgloss.Style
}

// Theme is one visual theme with its unlock cost in coins.
type Theme struct {
	ID      string
	Name    string
	Cost    int // coins to unlock; 0 = free
	Palette Palette
}

var (
	mu     sync.RWMutex
	themes = make(map[string]Theme)
	order  []string
)

// Register adds a theme to the registry.
// Panics if a theme with the same ID is already registered.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := themes[t.ID]; exists {
		panic(fmt.Sprintf("themes: theme %q already registered", t.ID))
	}
	themes[t.ID] = t
	order = append(order, t.ID)
}

// List returns all registered themes sorted by unlock cost, then id.
func List() []Theme {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Theme, 0, len(order))
	for _, id := range order {
		result = append(result, themes[id])
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Cost != result[j].Cost {
			return result[i].Cost < result[j].Cost
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Resolve returns the theme for an id, falling back to the default
// theme when the id is unknown.
func Resolve(id string) Theme {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := themes[id]; ok {
		return t
	}
	return themes[DefaultID]
}

// Exists reports whether a theme with the given id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[id]
	return ok
}
