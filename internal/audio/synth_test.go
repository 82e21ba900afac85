package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/ingyamilmolinar/wanted/core/round"
	"github.com/ingyamilmolinar/wanted/internal/config"
)

func frame(buf []byte, i int) (l, r int16) {
	off := i * 4
	return int16(buf[off]) | int16(buf[off+1])<<8, int16(buf[off+2]) | int16(buf[off+3])<<8
}

func nonZeroFrames(buf []byte) int {
	n := 0
	for i := 0; i < len(buf)/4; i++ {
		if l, _ := frame(buf, i); l != 0 {
			n++
		}
	}
	return n
}

func TestAmbientLoopLength(t *testing.T) {
	buf := AmbientLoop(SampleRate)
	step := beep.SampleRate(SampleRate).N(loopStep)
	if len(buf) != step*len(loopNotes)*4 {
		t.Fatalf("len = %d, want %d", len(buf), step*len(loopNotes)*4)
	}
	if nonZeroFrames(buf) < len(buf)/8 {
		t.Fatalf("loop is mostly silent")
	}
}

func TestRenderIsStereoAndClamped(t *testing.T) {
	loud := beep.Mix(
		newTone(100, 10*time.Millisecond, SampleRate, 0),
		newTone(100, 10*time.Millisecond, SampleRate, 0),
		newTone(100, 10*time.Millisecond, SampleRate, 0),
	)
	buf := render(loud, 441)
	peak := int16(0)
	for i := 0; i < 441; i++ {
		l, r := frame(buf, i)
		if l != r {
			t.Fatalf("frame %d: channels differ %d/%d", i, l, r)
		}
		if l > peak {
			peak = l
		}
	}
	if peak != 32767 {
		t.Fatalf("peak = %d, want clamped 32767", peak)
	}
}

func TestRenderPadsShortStreams(t *testing.T) {
	buf := render(newTone(440, 5*time.Millisecond, SampleRate, 1), 1000)
	if len(buf) != 4000 {
		t.Fatalf("len = %d", len(buf))
	}
	for i := SampleRate * 5 / 1000; i < 1000; i++ {
		if l, _ := frame(buf, i); l != 0 {
			t.Fatalf("frame %d not silent after the tone ended", i)
		}
	}
}

func TestAtDelaysStart(t *testing.T) {
	buf := render(at(100, newTone(440, 5*time.Millisecond, SampleRate, 1)), 400)
	for i := 0; i < 100; i++ {
		if l, _ := frame(buf, i); l != 0 {
			t.Fatalf("frame %d not silent before start", i)
		}
	}
	if nonZeroFrames(buf) == 0 {
		t.Fatalf("voice never played")
	}
}

func TestGainMutes(t *testing.T) {
	if nonZeroFrames(render(gain(newTone(440, 10*time.Millisecond, SampleRate, 0), 0), 441)) != 0 {
		t.Fatalf("zero gain still audible")
	}
}

func TestCues(t *testing.T) {
	ok := CueCorrect(SampleRate)
	bad := CueIncorrect(SampleRate)
	if len(ok) == 0 || len(bad) == 0 || len(ok)%4 != 0 || len(bad)%4 != 0 {
		t.Fatalf("cue sizes %d/%d", len(ok), len(bad))
	}
	if nonZeroFrames(ok) == 0 || nonZeroFrames(bad) == 0 {
		t.Fatalf("silent cue")
	}
}

func TestCueCacheAndDisabledCues(t *testing.T) {
	p := NewPlayer(nil, config.Audio{Cues: false}, nil)
	p.Cue(round.FeedbackCorrect) // disabled: must not touch the audio device
	if p.ctx != nil {
		t.Fatalf("disabled cues created an audio context")
	}
	a := p.cue(round.FeedbackIncorrect)
	b := p.cue(round.FeedbackIncorrect)
	if len(a) == 0 || &a[0] != &b[0] {
		t.Fatalf("cue data not cached")
	}
	if p.cue(round.FeedbackNone) != nil {
		t.Fatalf("no cue expected for FeedbackNone")
	}
}
