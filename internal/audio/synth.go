package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// tone is an oscillator with an exponential decay envelope.
type tone struct {
	i, n  int
	freq  float64
	rate  beep.SampleRate
	decay float64
	phase float64
	// square turns the sine into a buzz.
	square bool
}

func newTone(freq float64, d time.Duration, rate beep.SampleRate, decay float64) *tone {
	return &tone{n: rate.N(d), freq: freq, rate: rate, decay: decay}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.i >= t.n {
			return i, i > 0
		}
		v := math.Sin(2 * math.Pi * t.phase)
		if t.square {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}
		v *= math.Exp(-t.decay * float64(t.i) / float64(t.n))
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.i++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// gain scales s by a linear factor; zero mutes it.
func gain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g)}
}

// at delays s by start samples.
func at(start int, s beep.Streamer) beep.Streamer {
	if start <= 0 {
		return s
	}
	return beep.Seq(beep.Silence(start), s)
}

// render pulls exactly samples frames out of s as 16-bit little-endian stereo
// PCM, the format ebiten's audio players expect. A stream that ends early is
// padded with silence.
func render(s beep.Streamer, samples int) []byte {
	out := make([]byte, samples*4)
	buf := make([][2]float64, 512)
	s = beep.Take(samples, s)
	for frame := 0; frame < samples; {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			putFrame(out, frame+i, buf[i][0], buf[i][1])
		}
		frame += n
		if !ok {
			break
		}
	}
	return out
}

func putFrame(buf []byte, frame int, l, r float64) {
	off := frame * 4
	ls, rs := pcm16(l), pcm16(r)
	buf[off] = byte(ls)
	buf[off+1] = byte(ls >> 8)
	buf[off+2] = byte(rs)
	buf[off+3] = byte(rs >> 8)
}

func pcm16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(v * 32767)
}

// A-minor pentatonic arpeggio, one note per step.
var loopNotes = []float64{440, 523.25, 659.25, 783.99, 880, 783.99, 659.25, 523.25}

const loopStep = 250 * time.Millisecond

// AmbientLoop renders a short seamless melody used when no music file can be
// played. The length is a whole number of steps so it loops without a click.
func AmbientLoop(rate beep.SampleRate) []byte {
	step := rate.N(loopStep)
	var voices []beep.Streamer
	for i, f := range loopNotes {
		voices = append(voices, at(i*step, gain(newTone(f, loopStep, rate, 4), 0.25)))
		if i%4 == 0 {
			voices = append(voices, at(i*step, gain(newTone(f/4, 4*loopStep, rate, 2), 0.2)))
		}
	}
	return render(beep.Mix(voices...), step*len(loopNotes))
}

// CueCorrect is a rising two-note chime.
func CueCorrect(rate beep.SampleRate) []byte {
	const step = 90 * time.Millisecond
	chime := beep.Seq(
		gain(newTone(659.25, step, rate, 3), 0.5),
		gain(newTone(880, step, rate, 3), 0.5),
	)
	return render(chime, 2*rate.N(step))
}

// CueIncorrect is a short low buzz.
func CueIncorrect(rate beep.SampleRate) []byte {
	const dur = 150 * time.Millisecond
	t := newTone(120, dur, rate, 2)
	t.square = true
	return render(gain(t, 0.35), rate.N(dur))
}
