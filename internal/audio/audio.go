// Package audio plays the background music loop and the short click cues.
// Playback is best effort: anything that goes wrong is logged and the game
// carries on silently.
package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"

	"github.com/ingyamilmolinar/wanted/core/round"
	"github.com/ingyamilmolinar/wanted/internal/assets"
	"github.com/ingyamilmolinar/wanted/internal/config"
	game_log "github.com/ingyamilmolinar/wanted/internal/log"
)

const SampleRate = 44100

// ErrPlaybackRejected wraps every failure to start playback.
var ErrPlaybackRejected = errors.New("audio playback rejected")

type Player struct {
	src    assets.Source
	cfg    config.Audio
	logger *game_log.Logger

	once sync.Once
	ctx  *audio.Context

	mu      sync.Mutex
	music   loopPlayer
	cueData map[round.Feedback][]byte
}

func NewPlayer(src assets.Source, cfg config.Audio, logger *game_log.Logger) *Player {
	if logger == nil {
		logger = game_log.Discard()
	}
	return &Player{src: src, cfg: cfg, logger: logger}
}

type loopPlayer interface {
	SetVolume(volume float64)
	Play()
}

// newLoopPlayer creates the player for the music loop. Swapped in tests so no
// audio device is opened.
var newLoopPlayer = func(p *Player, r io.Reader) (loopPlayer, error) {
	ac := p.context()
	pl, err := ac.NewPlayer(r)
	if err != nil {
		return nil, err
	}
	if !ac.IsReady() {
		p.logger.Infof("audio context not ready yet, music starts once the browser allows it")
	}
	return pl, nil
}

// context lazily creates the process-wide ebiten audio context. ebiten
// allows only one per process.
func (p *Player) context() *audio.Context {
	p.once.Do(func() {
		if c := audio.CurrentContext(); c != nil {
			p.ctx = c
			return
		}
		p.ctx = audio.NewContext(SampleRate)
	})
	return p.ctx
}

// StartLoop starts the background music in its own goroutine and returns at
// once; the music file may have to be fetched over the network first.
func (p *Player) StartLoop() {
	go func() {
		if err := p.startLoop(context.Background()); err != nil {
			p.logger.Errorf("%v", err)
		}
	}()
}

func (p *Player) startLoop(ctx context.Context) error {
	p.mu.Lock()
	playing := p.music != nil
	p.mu.Unlock()
	if playing {
		return nil
	}

	pl, err := newLoopPlayer(p, p.loopStream(ctx))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPlaybackRejected, err)
	}
	pl.SetVolume(p.cfg.Volume)
	pl.Play()

	p.mu.Lock()
	p.music = pl
	p.mu.Unlock()
	p.logger.Infof("music started")
	return nil
}

// loopStream is the configured music, or the synthesized loop when the music
// cannot be loaded or decoded.
func (p *Player) loopStream(ctx context.Context) *audio.InfiniteLoop {
	loop, err := p.musicStream(ctx)
	if err != nil {
		p.logger.Warnf("music %q unavailable, using synthesized loop: %v", p.cfg.Music, err)
		pcm := AmbientLoop(SampleRate)
		return audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	}
	return loop
}

func (p *Player) musicStream(ctx context.Context) (*audio.InfiniteLoop, error) {
	if p.cfg.Music == "" || p.src == nil {
		return nil, errors.New("no music configured")
	}
	data, err := assets.ReadAll(ctx, p.src, p.cfg.Music)
	if err != nil {
		return nil, err
	}
	stream, err := mp3.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p.cfg.Music, err)
	}
	return audio.NewInfiniteLoop(stream, stream.Length()), nil
}

// Cue plays the short sound for a click outcome.
func (p *Player) Cue(kind round.Feedback) {
	if !p.cfg.Cues {
		return
	}
	data := p.cue(kind)
	if data == nil {
		return
	}
	pl := p.context().NewPlayerFromBytes(data)
	pl.SetVolume(p.cfg.Volume)
	pl.Play()
}

func (p *Player) cue(kind round.Feedback) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cueData == nil {
		p.cueData = map[round.Feedback][]byte{
			round.FeedbackCorrect:   CueCorrect(SampleRate),
			round.FeedbackIncorrect: CueIncorrect(SampleRate),
		}
	}
	return p.cueData[kind]
}
