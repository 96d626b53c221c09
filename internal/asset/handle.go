package asset

import (
	"context"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// State is the loading state of an asset handle.
type State int

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Handle is a sprite that may still be loading.
// All methods are safe to call from any goroutine.
type Handle struct {
	name string
	done chan struct{}

	// Written once before done is closed.
	img *core.Image
	err error
}

func newHandle(name string) *Handle {
	return &Handle{name: name, done: make(chan struct{})}
}

// Preloaded returns a handle that is already Ready with img.
func Preloaded(img *core.Image) *Handle {
	h := newHandle(img.Name)
	h.finish(img, nil)
	return h
}

// Failed returns a handle that is already Failed with err.
func Failed(name string, err error) *Handle {
	h := newHandle(name)
	h.finish(nil, err)
	return h
}

func (h *Handle) finish(img *core.Image, err error) {
	h.img = img
	h.err = err
	close(h.done)
}

// Name returns the sprite name.
func (h *Handle) Name() string {
	return h.name
}

// Done is closed once loading has finished, successfully or not.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// State reports Loading, Ready or Failed.
func (h *Handle) State() State {
	select {
	case <-h.done:
		if h.err != nil {
			return StateFailed
		}
		return StateReady
	default:
		return StateLoading
	}
}

// Ready reports whether the image is available.
func (h *Handle) Ready() bool {
	return h.State() == StateReady
}

// Image returns the decoded image, or nil unless the handle is Ready.
func (h *Handle) Image() *core.Image {
	if !h.Ready() {
		return nil
	}
	return h.img
}

// Err returns the load error once the handle has Failed.
func (h *Handle) Err() error {
	if h.State() != StateFailed {
		return nil
	}
	return h.err
}

// Wait blocks until loading finishes or ctx is done.
func (h *Handle) Wait(ctx context.Context) (*core.Image, error) {
	select {
	case <-h.done:
		return h.img, h.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
