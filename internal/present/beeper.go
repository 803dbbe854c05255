package present

import (
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
)

const (
	beepSampleRate = beep.SampleRate(44100)
	beepFrequency  = 440.0 // A4, close to the VIP's native buzzer pitch
)

// Beeper plays a continuous tone for as long as a CHIP-8 machine's sound
// timer is nonzero. The source decoded an mp3 asset from disk and
// replayed it per event; there's no bundled asset here, so a tone is
// synthesized with beep/generators instead and gated through gatedTone.
type Beeper struct {
	gate *gatedTone
}

// NewBeeper initializes the global speaker and starts a muted tone.
func NewBeeper() (*Beeper, error) {
	tone, err := generators.SinTone(beepSampleRate, beepFrequency)
	if err != nil {
		return nil, errors.Wrap(err, "present: generating tone")
	}
	if err := speaker.Init(beepSampleRate, beepSampleRate.N(time.Second/10)); err != nil {
		return nil, errors.Wrap(err, "present: initializing speaker")
	}

	g := &gatedTone{source: tone}
	speaker.Play(g)
	return &Beeper{gate: g}, nil
}

// SetActive toggles the tone on or off. Call it once per frame with
// vm.SoundTimer() > 0.
func (b *Beeper) SetActive(on bool) { b.gate.setActive(on) }

// Close stops playback.
func (b *Beeper) Close() { speaker.Clear() }

// gatedTone wraps a beep.Streamer, silencing its output while inactive
// instead of stopping it, so phase stays continuous across gate changes.
// Streamer.Stream is called from the speaker's mixing goroutine, so the
// gate is stored behind an atomic flag rather than a mutex.
type gatedTone struct {
	source beep.Streamer
	active int32
}

func (g *gatedTone) setActive(on bool) {
	var v int32
	if on {
		v = 1
	}
	atomic.StoreInt32(&g.active, v)
}

func (g *gatedTone) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.source.Stream(samples)
	if atomic.LoadInt32(&g.active) == 0 {
		for i := range samples[:n] {
			samples[i] = [2]float64{}
		}
	}
	return n, ok
}

func (g *gatedTone) Err() error { return g.source.Err() }
