package tty

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Beeper plays answer cues through the system speaker.
type Beeper struct {
	ready bool
}

func NewBeeper() (*Beeper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Beeper{}, err
	}
	return &Beeper{ready: true}, nil
}

// Cue plays a rising pair of notes for a correct answer and a falling
// pair for a wrong one.
func (b *Beeper) Cue(correct bool) {
	if b == nil || !b.ready {
		return
	}
	notes := []float64{220, 165}
	if correct {
		notes = []float64{660, 880}
	}

	var seq []beep.Streamer
	for _, f := range notes {
		sine, err := generators.SineTone(sampleRate, f)
		if err != nil {
			return
		}
		seq = append(seq, beep.Take(sampleRate.N(120*time.Millisecond), sine))
	}
	speaker.Clear()
	speaker.Play(&effects.Volume{Streamer: beep.Seq(seq...), Base: 2, Volume: -2})
}

func (b *Beeper) Close() {
	if b != nil && b.ready {
		speaker.Close()
	}
}
