// Package sound decouples UI sound effects from audio playback.
// Screens emit named effect events through a Trigger; the playback
// backend consumes them fire-and-forget. State transitions never wait
// on playback, and playback errors are swallowed by the backend.
package sound

// Effect names used by the screens.
const (
	EffectButton  = "button"
	EffectClick   = "click"
	EffectSuccess = "success"
	EffectFailed  = "failed"
	EffectChime   = "chime"
)

// Event is a single playback intent.
type Event struct {
	Effect string
	Volume float64 // 0.0 silent .. 1.0 full
}

// Trigger receives playback intents. Implementations must not block.
type Trigger interface {
	Play(effect string, volume float64)
}

// Nop discards all events. Used when sound is muted and as the
// default when no backend is configured.
type Nop struct{}

// Play implements Trigger.
func (Nop) Play(string, float64) {}

// Recorder captures emitted events for tests.
type Recorder struct {
	Events []Event
}

// Play implements Trigger.
func (r *Recorder) Play(effect string, volume float64) {
	r.Events = append(r.Events, Event{Effect: effect, Volume: volume})
}

// Played returns how many times the named effect was emitted.
func (r *Recorder) Played(effect string) int {
	n := 0
	for _, e := range r.Events {
		if e.Effect == effect {
			n++
		}
	}
	return n
}
