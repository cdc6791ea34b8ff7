package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/heartmarshall/lenslearn/pkg/client"
)

// Marker is an object ready to draw over the captured image. X and Y are
// clamped to 0..100.
type Marker struct {
	ID       string
	Name     string
	X        float64
	Y        float64
	Selected bool
	Saved    bool
}

// ResultView presents the objects of one identification. It starts with the
// first object selected; once something is selected there is always a
// selection until the view closes. Every request the view makes runs on the
// view's context, so Close aborts them.
type ResultView struct {
	ctx     context.Context
	cancel  context.CancelFunc
	image   string
	objects []client.IdentifiedObject
	session client.Session

	words      wordStore
	pronouncer pronouncer
	player     Player
	library    *Library
	notifier   Notifier
	onClose    func()
	log        *slog.Logger

	mu       sync.Mutex
	selected int
	saved    map[string]bool
	playing  bool
	closed   bool
}

type viewDeps struct {
	session    client.Session
	words      wordStore
	pronouncer pronouncer
	player     Player
	library    *Library
	notifier   Notifier
	onClose    func()
	log        *slog.Logger
}

func newResultView(parent context.Context, image string, objects []client.IdentifiedObject, deps viewDeps) *ResultView {
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))

	selected := -1
	if len(objects) > 0 {
		selected = 0
	}

	return &ResultView{
		ctx:        ctx,
		cancel:     cancel,
		image:      image,
		objects:    append([]client.IdentifiedObject(nil), objects...),
		session:    deps.session,
		words:      deps.words,
		pronouncer: deps.pronouncer,
		player:     deps.player,
		library:    deps.library,
		notifier:   deps.notifier,
		onClose:    deps.onClose,
		log:        deps.log,
		selected:   selected,
		saved:      make(map[string]bool),
	}
}

// Image returns the captured image as base64 JPEG.
func (v *ResultView) Image() string { return v.image }

// Objects returns the identified objects in response order.
func (v *ResultView) Objects() []client.IdentifiedObject {
	return append([]client.IdentifiedObject(nil), v.objects...)
}

// Selected returns the selected object, if any.
func (v *ResultView) Selected() (client.IdentifiedObject, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.selected < 0 {
		return client.IdentifiedObject{}, false
	}
	return v.objects[v.selected], true
}

// Select makes the object with the given id the selection.
func (v *ResultView) Select(id string) error {
	i := v.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownObject, id)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrViewClosed
	}
	v.selected = i
	return nil
}

// IsSaved reports whether the object was saved during this view.
func (v *ResultView) IsSaved(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.saved[id]
}

// Markers returns one marker per object with positions clamped to 0..100.
func (v *ResultView) Markers() []Marker {
	v.mu.Lock()
	defer v.mu.Unlock()

	markers := make([]Marker, len(v.objects))
	for i, o := range v.objects {
		markers[i] = Marker{
			ID:       o.ID,
			Name:     o.Name,
			X:        clampPercent(o.Position.X),
			Y:        clampPercent(o.Position.Y),
			Selected: i == v.selected,
			Saved:    v.saved[o.ID],
		}
	}
	return markers
}

// Save stores the object as a vocabulary entry and adds it to the library.
// Saving an object that is already saved or being saved does nothing. If the
// store call fails the object is no longer marked as saved.
func (v *ResultView) Save(id string) error {
	i := v.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownObject, id)
	}
	obj := v.objects[i]

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrViewClosed
	}
	if v.saved[id] {
		v.mu.Unlock()
		return nil
	}
	v.saved[id] = true
	v.mu.Unlock()

	var secondary *string
	if obj.Translation != "" {
		tr := obj.Translation
		secondary = &tr
	}

	word, err := v.words.CreateWord(v.ctx, v.session, client.NewWord{
		Word:                 obj.Name,
		SecondaryTranslation: secondary,
		Language:             obj.Language,
	})
	if err != nil {
		v.mu.Lock()
		delete(v.saved, id)
		v.mu.Unlock()

		if !isCanceled(err) {
			v.log.Warn("save word failed", slog.String("word", obj.Name), slog.String("error", err.Error()))
			v.notifier.Notify(MsgSaveFailed)
		}
		return fmt.Errorf("save %q: %w", obj.Name, err)
	}

	if v.library != nil {
		v.library.Add(*word)
	}
	return nil
}

// Play pronounces the selected object. Only one playback runs at a time;
// a call made while one is in flight returns ErrPlaybackInFlight.
func (v *ResultView) Play() error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrViewClosed
	}
	if v.playing {
		v.mu.Unlock()
		return ErrPlaybackInFlight
	}
	if v.selected < 0 {
		v.mu.Unlock()
		return ErrNoSelection
	}
	obj := v.objects[v.selected]
	v.playing = true
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.playing = false
		v.mu.Unlock()
	}()

	audio, err := v.pronouncer.Pronounce(v.ctx, v.session, obj.Name, obj.Language)
	if err != nil {
		if !isCanceled(err) {
			v.log.Warn("pronunciation failed", slog.String("word", obj.Name), slog.String("error", err.Error()))
			v.notifier.Notify(MsgPlaybackFailed)
		}
		return fmt.Errorf("pronounce %q: %w", obj.Name, err)
	}
	if audio == nil {
		return ErrNoAudio
	}

	if err := v.player.Play(v.ctx, audio); err != nil {
		if !isCanceled(err) {
			v.notifier.Notify(MsgPlaybackFailed)
		}
		return fmt.Errorf("play %q: %w", obj.Name, err)
	}
	return nil
}

// Playing reports whether a playback is in flight.
func (v *ResultView) Playing() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.playing
}

// Close cancels every outstanding request of the view and forgets which
// objects were saved. It is safe to call more than once.
func (v *ResultView) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	v.saved = make(map[string]bool)
	v.mu.Unlock()

	v.cancel()
	if v.onClose != nil {
		v.onClose()
	}
}

// Done is closed when the view is closed.
func (v *ResultView) Done() <-chan struct{} { return v.ctx.Done() }

func (v *ResultView) indexOf(id string) int {
	for i, o := range v.objects {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// clampPercent limits v to [0,100]. NaN renders at 0.
func clampPercent(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(max(v, 0), 100)
}
