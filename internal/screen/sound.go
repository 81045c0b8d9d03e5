package screen

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// Sound plays short tones for answer feedback.
type Sound struct {
	ctx    *audio.Context
	good   []byte
	bad    []byte
	player *audio.Player
}

func NewSound() *Sound {
	return &Sound{
		ctx:  audio.NewContext(sampleRate),
		good: tone([]float64{660, 880}, 0.12),
		bad:  tone([]float64{220, 165}, 0.18),
	}
}

// Cue plays the correct or wrong jingle, cutting off any tone in flight.
func (s *Sound) Cue(correct bool) {
	if s == nil {
		return
	}
	if s.player != nil {
		_ = s.player.Close()
	}
	pcm := s.bad
	if correct {
		pcm = s.good
	}
	s.player = s.ctx.NewPlayerFromBytes(pcm)
	s.player.SetVolume(0.4)
	s.player.Play()
}

// tone renders notes back to back as 16-bit stereo little endian PCM.
func tone(freqs []float64, noteSec float64) []byte {
	n := int(noteSec * sampleRate)
	buf := make([]byte, 0, len(freqs)*n*4)
	for _, f := range freqs {
		for i := 0; i < n; i++ {
			// short linear fade to avoid clicks
			env := math.Min(1, math.Min(float64(i), float64(n-i))/200)
			v := int16(math.Sin(2*math.Pi*f*float64(i)/sampleRate) * env * 0.6 * math.MaxInt16)
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
		}
	}
	return buf
}
