package capture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
)

// Facing selects which camera a stream comes from.
type Facing string

const (
	FacingEnvironment Facing = "environment"
	FacingUser        Facing = "user"
)

func (f Facing) toggle() Facing {
	if f == FacingUser {
		return FacingEnvironment
	}
	return FacingUser
}

var (
	ErrPermissionDenied = errors.New("camera permission denied")
	ErrNoDevice         = errors.New("no camera device")
	ErrClosed           = errors.New("capture closed")
)

// Camera acquires video streams. Implementations return ErrPermissionDenied or
// ErrNoDevice (possibly wrapped) when acquisition is refused.
type Camera interface {
	Open(ctx context.Context, facing Facing) (Stream, error)
}

// Stream is an acquired video stream. Stop releases the device and may be
// called more than once.
type Stream interface {
	Frame() (image.Image, error)
	Stop()
}

// Live owns one camera stream from acquisition until Capture or Close.
//
// When acquisition fails Live enters an error state: Err reports the cause,
// Capture fails and Close still succeeds.
type Live struct {
	camera Camera
	opts   Options

	mu     sync.Mutex
	stream Stream
	facing Facing
	err    error
	closed bool
}

// NewLive acquires a stream facing the environment.
func NewLive(ctx context.Context, camera Camera, opts Options) *Live {
	l := &Live{camera: camera, opts: opts, facing: FacingEnvironment}
	l.acquire(ctx)
	return l
}

// acquire must be called with mu held or before l is shared.
func (l *Live) acquire(ctx context.Context) {
	stream, err := l.camera.Open(ctx, l.facing)
	if err != nil {
		l.stream = nil
		l.err = fmt.Errorf("open %s camera: %w", l.facing, err)
		return
	}
	l.stream = stream
	l.err = nil
}

func (l *Live) release() {
	if l.stream != nil {
		l.stream.Stop()
		l.stream = nil
	}
}

// Err returns the acquisition error, if Live is in the error state.
func (l *Live) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Facing returns the current facing mode.
func (l *Live) Facing() Facing {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.facing
}

// SwitchFacing releases the current stream and acquires one from the other
// camera. A failed acquisition leaves Live in the error state with no stream.
func (l *Live) SwitchFacing(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}
	l.release()
	l.facing = l.facing.toggle()
	l.acquire(ctx)
	return l.err
}

// Capture grabs the current frame, releases the stream and returns the frame
// as base64 JPEG. Live is closed afterwards.
func (l *Live) Capture() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return "", ErrClosed
	}
	if l.err != nil {
		return "", l.err
	}

	frame, err := l.stream.Frame()
	l.release()
	l.closed = true
	if err != nil {
		return "", fmt.Errorf("capture frame: %w", err)
	}
	return Encode(frame, l.opts)
}

// Close releases the stream. It is safe to call concurrently and repeatedly.
func (l *Live) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.release()
	l.closed = true
	return nil
}
