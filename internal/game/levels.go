package game

import (
	"fmt"
	"sort"
	"sync"
)

// ChallengeLevel describes one discrete challenge stage.
type ChallengeLevel struct {
	ID           string
	Name         string
	TargetBlocks int // blocks required to complete the stage
}

var (
	levelMu     sync.RWMutex
	levelsByID  = make(map[string]ChallengeLevel)
	levelsOrder []string
)

// RegisterLevel adds a challenge level to the registry.
// Panics if a level with the same ID is already registered.
func RegisterLevel(l ChallengeLevel) {
	levelMu.Lock()
	defer levelMu.Unlock()

	if _, exists := levelsByID[l.ID]; exists {
		panic(fmt.Sprintf("game: level %q already registered", l.ID))
	}
	levelsByID[l.ID] = l
	levelsOrder = append(levelsOrder, l.ID)
}

// Levels returns all registered challenge levels in registration order.
func Levels() []ChallengeLevel {
	levelMu.RLock()
	defer levelMu.RUnlock()

	result := make([]ChallengeLevel, 0, len(levelsOrder))
	for _, id := range levelsOrder {
		result = append(result, levelsByID[id])
	}
	return result
}

// LevelByID looks up a challenge level. The second return value is
// false for unknown ids.
func LevelByID(id string) (ChallengeLevel, bool) {
	levelMu.RLock()
	defer levelMu.RUnlock()

	l, ok := levelsByID[id]
	return l, ok
}

// LevelName returns the display name for a level id, falling back to
// the raw id when the level is unknown.
func LevelName(id string) string {
	if l, ok := LevelByID(id); ok {
		return l.Name
	}
	return id
}

// LevelIDs returns all registered level ids sorted lexically.
func LevelIDs() []string {
	levelMu.RLock()
	defer levelMu.RUnlock()

	ids := make([]string, len(levelsOrder))
	copy(ids, levelsOrder)
	sort.Strings(ids)
	return ids
}

func init() {
	for i, def := range []struct {
		name   string
		target int
	}{
		{"First Steps", 10},
		{"Steady Hands", 15},
		{"High Winds", 20},
		{"Narrow Base", 20},
		{"Night Shift", 25},
		{"Double Speed", 25},
		{"Glass Floors", 30},
		{"Crosswind", 30},
		{"Skyline", 35},
		{"Stratosphere", 40},
		{"Orbital", 45},
		{"Impossible Tower", 50},
	} {
		RegisterLevel(ChallengeLevel{
			ID:           fmt.Sprintf("level_%d", i+1),
			Name:         def.name,
			TargetBlocks: def.target,
		})
	}
}
