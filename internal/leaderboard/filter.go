package leaderboard

import "github.com/stacktower/stacktower/internal/game"

// Filter selects which modes the leaderboard shows. The zero value
// shows all modes merged.
type Filter struct {
	Mode game.Mode // empty = all modes
}

// FilterAll matches every mode.
var FilterAll = Filter{}

// Filters returns the full cycle in display order: all, then each
// mode.
func Filters() []Filter {
	modes := game.Modes()
	result := make([]Filter, 0, len(modes)+1)
	result = append(result, FilterAll)
	for _, m := range modes {
		result = append(result, Filter{Mode: m})
	}
	return result
}

// Title returns the display label for the filter.
func (f Filter) Title() string {
	if f.Mode == "" {
		return "All Modes"
	}
	return f.Mode.Title()
}

// Next advances to the next filter in the cycle, wrapping around.
func (f Filter) Next() Filter {
	filters := Filters()
	for i, cur := range filters {
		if cur == f {
			return filters[(i+1)%len(filters)]
		}
	}
	return FilterAll
}

// Prev steps back to the previous filter in the cycle, wrapping
// around.
func (f Filter) Prev() Filter {
	filters := Filters()
	for i, cur := range filters {
		if cur == f {
			return filters[(i-1+len(filters))%len(filters)]
		}
	}
	return FilterAll
}
