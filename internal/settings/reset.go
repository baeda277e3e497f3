// Package settings implements the settings mutation flow: difficulty
// selection and the destructive reset of all persisted game data.
package settings

import (
	"fmt"

	"github.com/stacktower/stacktower/internal/game"
)

// ScoreClearer truncates the score store.
type ScoreClearer interface {
	ClearAllData() error
}

// ProfileResetter restores the player profile to factory defaults.
type ProfileResetter interface {
	ResetToFactory() error
}

// DifficultySetter records the selected difficulty.
type DifficultySetter interface {
	SetDifficulty(game.Difficulty) error
}

// Phase is the state of the destructive-reset flow.
type Phase int

const (
	// PhaseIdle accepts a new reset request (after arming).
	PhaseIdle Phase = iota
	// PhaseArmed is the confirm gate: the user has requested a reset
	// and must confirm once more before anything is destroyed.
	PhaseArmed
	// PhaseResetting means the reset is in flight; further requests
	// are no-ops until it finishes.
	PhaseResetting
	// PhaseSuccess and PhaseFailed are terminal until acknowledged,
	// after which the flow returns to PhaseIdle.
	PhaseSuccess
	PhaseFailed
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseArmed:
		return "armed"
	case PhaseResetting:
		return "resetting"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Flow is the reset state machine. It owns no I/O; callers run
// PerformReset when Confirm reports the reset should start, then feed
// the outcome back through Finish.
type Flow struct {
	phase Phase
	err   error
}

// NewFlow returns a flow in the idle state.
func NewFlow() *Flow {
	return &Flow{phase: PhaseIdle}
}

// Phase returns the current phase.
func (f *Flow) Phase() Phase {
	return f.phase
}

// Err returns the failure recorded by the last finished reset, nil
// after a success or before any reset ran.
func (f *Flow) Err() error {
	return f.err
}

// Arm moves Idle to Armed, the first step of the two-step confirm
// gate. Returns false (no state change) in any other phase.
func (f *Flow) Arm() bool {
	if f.phase != PhaseIdle {
		return false
	}
	f.phase = PhaseArmed
	return true
}

// Disarm cancels an armed reset and returns to Idle.
func (f *Flow) Disarm() bool {
	if f.phase != PhaseArmed {
		return false
	}
	f.phase = PhaseIdle
	return true
}

// Confirm moves Armed to Resetting and reports whether the caller
// should start the reset. While already Resetting (or in any other
// phase) it is a no-op, which is the double-submit guard.
func (f *Flow) Confirm() bool {
	if f.phase != PhaseArmed {
		return false
	}
	f.phase = PhaseResetting
	f.err = nil
	return true
}

// Finish records the reset outcome. Only valid while Resetting.
func (f *Flow) Finish(err error) {
	if f.phase != PhaseResetting {
		return
	}
	f.err = err
	if err != nil {
		f.phase = PhaseFailed
		return
	}
	f.phase = PhaseSuccess
}

// Acknowledge returns a terminal phase to Idle, re-enabling the
// action.
func (f *Flow) Acknowledge() bool {
	if f.phase != PhaseSuccess && f.phase != PhaseFailed {
		return false
	}
	f.phase = PhaseIdle
	return true
}

// PerformReset truncates the score store and restores the profile to
// factory defaults. The two operations are independent and not
// transactional: the first failure aborts and is reported, and no
// partial state is assumed committed.
func PerformReset(scores ScoreClearer, profiles ProfileResetter) error {
	if err := scores.ClearAllData(); err != nil {
		return fmt.Errorf("settings: clearing scores: %w", err)
	}
	if err := profiles.ResetToFactory(); err != nil {
		return fmt.Errorf("settings: resetting profile: %w", err)
	}
	return nil
}

// SelectDifficulty validates and records a difficulty choice. It has
// no effect on already-recorded scores.
func SelectDifficulty(profiles DifficultySetter, d game.Difficulty) error {
	if !d.Valid() {
		return fmt.Errorf("settings: unknown difficulty %q", d)
	}
	return profiles.SetDifficulty(d)
}
