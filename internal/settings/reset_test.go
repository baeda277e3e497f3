package settings

import (
	"errors"
	"testing"

	"github.com/stacktower/stacktower/internal/game"
)

type fakeClearer struct {
	calls int
	err   error
}

func (f *fakeClearer) ClearAllData() error {
	f.calls++
	return f.err
}

type fakeResetter struct {
	calls int
	err   error
}

func (f *fakeResetter) ResetToFactory() error {
	f.calls++
	return f.err
}

func TestFlowHappyPath(t *testing.T) {
	f := NewFlow()

	if f.Phase() != PhaseIdle {
		t.Fatalf("New flow should be idle, got %v", f.Phase())
	}
	if !f.Arm() {
		t.Fatal("Arm() from idle should succeed")
	}
	if f.Phase() != PhaseArmed {
		t.Fatalf("Expected armed, got %v", f.Phase())
	}
	if !f.Confirm() {
		t.Fatal("Confirm() from armed should start the reset")
	}
	if f.Phase() != PhaseResetting {
		t.Fatalf("Expected resetting, got %v", f.Phase())
	}

	f.Finish(nil)
	if f.Phase() != PhaseSuccess {
		t.Fatalf("Expected success, got %v", f.Phase())
	}
	if !f.Acknowledge() {
		t.Fatal("Acknowledge() from success should return to idle")
	}
	if f.Phase() != PhaseIdle {
		t.Fatalf("Expected idle after acknowledge, got %v", f.Phase())
	}
}

func TestFlowFailureReturnsToIdle(t *testing.T) {
	f := NewFlow()
	f.Arm()
	f.Confirm()

	failure := errors.New("disk full")
	f.Finish(failure)

	if f.Phase() != PhaseFailed {
		t.Fatalf("Expected failed, got %v", f.Phase())
	}
	if !errors.Is(f.Err(), failure) {
		t.Errorf("Expected recorded error %v, got %v", failure, f.Err())
	}
	if !f.Acknowledge() {
		t.Fatal("Acknowledge() from failed should return to idle")
	}
	if f.Phase() != PhaseIdle {
		t.Fatalf("Flow stuck in %v after failure", f.Phase())
	}

	// The action is re-enterable after a failure.
	if !f.Arm() {
		t.Error("Arm() should succeed again after an acknowledged failure")
	}
}

func TestFlowDoubleSubmitGuard(t *testing.T) {
	f := NewFlow()
	f.Arm()

	if !f.Confirm() {
		t.Fatal("First confirm should start the reset")
	}

	// Rapid repeated confirms while resetting are no-ops.
	for i := 0; i < 5; i++ {
		if f.Confirm() {
			t.Fatal("Confirm() while resetting must be a no-op")
		}
	}
	if f.Arm() {
		t.Error("Arm() while resetting must be a no-op")
	}
	if f.Phase() != PhaseResetting {
		t.Errorf("Guarded flow left resetting state: %v", f.Phase())
	}
}

func TestFlowConfirmRequiresArm(t *testing.T) {
	f := NewFlow()
	if f.Confirm() {
		t.Error("Confirm() without arming must be a no-op")
	}
	if f.Phase() != PhaseIdle {
		t.Errorf("Expected idle, got %v", f.Phase())
	}
}

func TestFlowDisarmCancels(t *testing.T) {
	f := NewFlow()
	f.Arm()

	if !f.Disarm() {
		t.Fatal("Disarm() from armed should succeed")
	}
	if f.Phase() != PhaseIdle {
		t.Errorf("Expected idle after disarm, got %v", f.Phase())
	}
	if f.Confirm() {
		t.Error("Confirm() after disarm must be a no-op")
	}
}

func TestPerformResetRunsBothSteps(t *testing.T) {
	scores := &fakeClearer{}
	profiles := &fakeResetter{}

	if err := PerformReset(scores, profiles); err != nil {
		t.Fatalf("PerformReset() failed: %v", err)
	}
	if scores.calls != 1 {
		t.Errorf("Expected 1 clear call, got %d", scores.calls)
	}
	if profiles.calls != 1 {
		t.Errorf("Expected 1 profile reset call, got %d", profiles.calls)
	}
}

func TestPerformResetAbortsOnClearFailure(t *testing.T) {
	scores := &fakeClearer{err: errors.New("locked")}
	profiles := &fakeResetter{}

	if err := PerformReset(scores, profiles); err == nil {
		t.Fatal("Expected error when store clear fails")
	}
	if profiles.calls != 0 {
		t.Errorf("Profile reset must not run after clear failure, ran %d times", profiles.calls)
	}
}

func TestPerformResetReportsProfileFailure(t *testing.T) {
	scores := &fakeClearer{}
	profiles := &fakeResetter{err: errors.New("read-only fs")}

	if err := PerformReset(scores, profiles); err == nil {
		t.Fatal("Expected error when profile reset fails")
	}
	if scores.calls != 1 {
		t.Errorf("Expected the clear step to have run once, got %d", scores.calls)
	}
}

type fakeDifficultySetter struct {
	set []game.Difficulty
}

func (f *fakeDifficultySetter) SetDifficulty(d game.Difficulty) error {
	f.set = append(f.set, d)
	return nil
}

func TestSelectDifficulty(t *testing.T) {
	setter := &fakeDifficultySetter{}

	if err := SelectDifficulty(setter, game.DifficultyHard); err != nil {
		t.Fatalf("SelectDifficulty() failed: %v", err)
	}
	if len(setter.set) != 1 || setter.set[0] != game.DifficultyHard {
		t.Errorf("Expected hard to be recorded, got %v", setter.set)
	}

	if err := SelectDifficulty(setter, "nightmare"); err == nil {
		t.Error("Expected error for unknown difficulty")
	}
	if len(setter.set) != 1 {
		t.Errorf("Invalid difficulty must not be recorded, got %v", setter.set)
	}
}
