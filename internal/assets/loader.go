// Package assets loads tile images in the background and hands them back to
// the game loop over a channel.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"

	"golang.org/x/sync/errgroup"

	game_log "github.com/ingyamilmolinar/wanted/internal/log"
)

// ErrAssetLoad is wrapped by every per-asset failure. A failed asset leaves
// its tile invisible; it is never fatal.
var ErrAssetLoad = errors.New("asset load failed")

// Result is the outcome of loading the asset for one tile.
type Result struct {
	Index int
	Name  string
	Image image.Image
	Err   error
}

type Loader struct {
	src     Source
	size    int
	workers int
	logger  *game_log.Logger
}

func NewLoader(src Source, rasterSize, workers int, logger *game_log.Logger) *Loader {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = game_log.Discard()
	}
	return &Loader{src: src, size: rasterSize, workers: workers, logger: logger}
}

// Load starts decoding every name and returns immediately. The channel is
// buffered for all results, so nothing blocks if the reader is slow, and it
// is closed once every asset is done or ctx is cancelled.
func (l *Loader) Load(ctx context.Context, names []string) <-chan Result {
	out := make(chan Result, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)

	go func() {
		defer close(out)
		for i, name := range names {
			if ctx.Err() != nil {
				break
			}
			i, name := i, name
			g.Go(func() error {
				img, err := l.load(ctx, name)
				if err != nil {
					err = fmt.Errorf("%w: %q: %w", ErrAssetLoad, name, err)
				}
				out <- Result{Index: i, Name: name, Image: img, Err: err}
				return nil
			})
		}
		_ = g.Wait()
		l.logger.Debugf("finished %d assets", len(names))
	}()
	return out
}

func (l *Loader) load(ctx context.Context, name string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rc, err := l.src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Decode(name, rc, l.size)
}

// ReadAll opens a single asset and returns its bytes.
func ReadAll(ctx context.Context, src Source, name string) ([]byte, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrAssetLoad, name, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrAssetLoad, name, err)
	}
	return b, nil
}
