package sound

import "testing"

func TestRecorderCountsEffects(t *testing.T) {
	rec := &Recorder{}

	rec.Play(EffectClick, 0.8)
	rec.Play(EffectClick, 0.8)
	rec.Play(EffectSuccess, 1.0)

	if got := rec.Played(EffectClick); got != 2 {
		t.Errorf("Expected 2 click events, got %d", got)
	}
	if got := rec.Played(EffectSuccess); got != 1 {
		t.Errorf("Expected 1 success event, got %d", got)
	}
	if got := rec.Played(EffectFailed); got != 0 {
		t.Errorf("Expected 0 failed events, got %d", got)
	}
}

func TestRecorderKeepsVolume(t *testing.T) {
	rec := &Recorder{}
	rec.Play(EffectChime, 0.5)

	if len(rec.Events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(rec.Events))
	}
	if rec.Events[0].Volume != 0.5 {
		t.Errorf("Expected volume 0.5, got %f", rec.Events[0].Volume)
	}
}

func TestNopIsSafe(t *testing.T) {
	var trigger Trigger = Nop{}
	trigger.Play(EffectButton, 1.0) // must not panic
}

func TestVolumeExponent(t *testing.T) {
	if got := volumeExponent(1.0); got != 0 {
		t.Errorf("Full volume should map to exponent 0, got %f", got)
	}
	if got := volumeExponent(0.5); got != -3 {
		t.Errorf("Half volume should map to exponent -3, got %f", got)
	}
}

func TestClamp01(t *testing.T) {
	if got := clamp01(2.0); got != 1 {
		t.Errorf("Expected clamp to 1, got %f", got)
	}
	if got := clamp01(-0.5); got != 0 {
		t.Errorf("Expected clamp to 0, got %f", got)
	}
	if got := clamp01(0.8); got != 0.8 {
		t.Errorf("In-range value must pass through, got %f", got)
	}
}
