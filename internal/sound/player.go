package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const playerSampleRate = beep.SampleRate(44100)

// note is one synthesized tone within an effect.
type note struct {
	freq     int
	duration time.Duration
}

// effectNotes maps effect names to their tone sequences.
var effectNotes = map[string][]note{
	EffectButton:  {{440, 60 * time.Millisecond}},
	EffectClick:   {{880, 40 * time.Millisecond}},
	EffectSuccess: {{523, 90 * time.Millisecond}, {784, 140 * time.Millisecond}},
	EffectFailed:  {{220, 180 * time.Millisecond}},
	EffectChime:   {{659, 80 * time.Millisecond}, {880, 80 * time.Millisecond}, {1047, 160 * time.Millisecond}},
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

// Player synthesizes effect tones and plays them through the system
// speaker. Playback is fire-and-forget: Play returns immediately and
// any backend error silences that one event.
type Player struct {
	masterVolume float64
}

// NewPlayer initializes the speaker once and returns a player with
// the given master volume in [0, 1].
func NewPlayer(masterVolume float64) (*Player, error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(playerSampleRate, playerSampleRate.N(50*time.Millisecond))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("sound: cannot initialize speaker: %w", speakerErr)
	}
	return &Player{masterVolume: clamp01(masterVolume)}, nil
}

// Play implements Trigger.
func (p *Player) Play(effect string, volume float64) {
	notes, ok := effectNotes[effect]
	if !ok {
		return
	}

	vol := clamp01(volume) * p.masterVolume
	if vol <= 0 {
		return
	}

	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(playerSampleRate, float64(n.freq))
		if err != nil {
			return
		}
		streamers = append(streamers, beep.Take(playerSampleRate.N(n.duration), tone))
	}

	speaker.Play(&effects.Volume{
		Streamer: beep.Seq(streamers...),
		Base:     2,
		Volume:   volumeExponent(vol),
		Silent:   false,
	})
}

// volumeExponent maps a linear volume in (0, 1] onto the exponential
// scale used by effects.Volume: 1.0 plays at full gain, lower values
// attenuate by up to six doublings.
func volumeExponent(v float64) float64 {
	return -6 * (1 - v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
