// Package audio plays synthesized cues for game events through the system
// speaker. Audio is strictly best-effort: if the device cannot be opened the
// player degrades to a silent no-op and the game runs unaffected.
package audio

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Cue identifies one of the synthesized game sounds.
type Cue int

const (
	CueImpulse Cue = iota
	CueScore
	CueCrash
)

// Player owns the speaker and a mixer that short cue streamers are added to.
// All methods are safe on a disabled player.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
	muted       bool
}

// NewPlayer creates a player; call Init before playing.
func NewPlayer() *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "audio"}),
	}
}

// Init opens the speaker. On failure the player stays disabled and every
// later call is a no-op; the error is returned for logging only.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Enabled reports whether the speaker was opened successfully.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// SetMuted silences cue playback without releasing the device.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Play queues the cue on the mixer. Silent when disabled or muted. A panic
// anywhere in the tone pipeline is recovered and logged; a bad cue must
// never take the game loop down with it.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	guard(p.logger, "play", func() {
		var s beep.Streamer
		switch c {
		case CueImpulse:
			s = impulseTone(sampleRate)
		case CueScore:
			s = scoreTone(sampleRate)
		case CueCrash:
			s = crashTone(sampleRate)
		default:
			return
		}

		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	})
}

// guard runs fn, recovering any panic so failures stop at the audio boundary
// instead of unwinding the caller's tick loop.
func guard(logger *log.Logger, op string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("audio call panicked", "op", op, "panic", r)
		}
	}()
	fn()
}

// Close silences the mixer. The speaker itself stays open; beep provides no
// close, and clearing the mixer is enough to stop artifacts on exit.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
