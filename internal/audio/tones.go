package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveType selects the oscillator wave shape.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveNoise
)

// oscillator generates a fixed-length raw audio wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fadeOut applies a linear release over the tail of a fixed-length stream.
type fadeOut struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

func newFadeOut(s beep.Streamer, duration, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fadeOut{
		streamer: s,
		total:    rate.N(duration),
		release:  rate.N(release),
	}
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if remaining := f.total - f.position; remaining < f.release && f.release > 0 {
			vol = float64(remaining) / float64(f.release)
			if vol < 0 {
				vol = 0
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }

// withVolume wraps a streamer in a gain stage. Zero or negative volume is
// silent rather than math.Log2(0).
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// impulseTone is a quick upward square blip for the player impulse.
func impulseTone(rate beep.SampleRate) beep.Streamer {
	d := 60 * time.Millisecond
	low := newFadeOut(newOscillator(330, d/2, waveSquare, rate), d/2, 10*time.Millisecond, rate)
	high := newFadeOut(newOscillator(523.25, d/2, waveSquare, rate), d/2, 20*time.Millisecond, rate)
	return withVolume(beep.Seq(low, high), 0.25)
}

// scoreTone is a bell-like ding: a sine fundamental with one overtone.
func scoreTone(rate beep.SampleRate) beep.Streamer {
	d := 180 * time.Millisecond
	fund := newFadeOut(newOscillator(880, d, waveSine, rate), d, 150*time.Millisecond, rate)
	over := newFadeOut(newOscillator(1760, d, waveSine, rate), d, 80*time.Millisecond, rate)
	return withVolume(beep.Mix(
		withVolume(fund, 0.7),
		withVolume(over, 0.3),
	), 0.3)
}

// crashTone is a noise burst with a low rumble under it.
func crashTone(rate beep.SampleRate) beep.Streamer {
	d := 350 * time.Millisecond
	noise := newFadeOut(newOscillator(0, d, waveNoise, rate), d, 300*time.Millisecond, rate)
	rumble := newFadeOut(newOscillator(70, d, waveSine, rate), d, 300*time.Millisecond, rate)
	return withVolume(beep.Mix(
		withVolume(noise, 0.5),
		withVolume(rumble, 0.5),
	), 0.35)
}
