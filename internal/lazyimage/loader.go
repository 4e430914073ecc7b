package lazyimage

import (
	"context"
	"errors"
	"image"
	"sync"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/ytget/imageboost/internal/model"
)

// ErrNoSource is recorded when a loader becomes visible without any URL to load
var ErrNoSource = errors.New("no image source")

// Options describe one image to load
type Options struct {
	Source       string // primary resource URL
	Placeholder  string // inline data URI, optional
	MaxDimension uint   // display cap for the decoded image, 0 = unlimited
}

// Display is the set of elements to render for the current state
type Display struct {
	Placeholder bool // blurred placeholder
	Image       bool // image element present (transparent until loaded)
	Opaque      bool // image faded in to full opacity
	Error       bool // error indicator
	Spinner     bool // generic loading spinner
}

// Loader drives one image through Idle, Visible, then Loaded or Errored
type Loader struct {
	source       string
	maxDimension uint
	fetcher      Fetcher
	pool         pond.Pool
	log          *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	state       model.LoadState
	placeholder image.Image
	image       image.Image
	err         error
	task        pond.Task
	closed      bool
	onChange    func(model.LoadState)
	mu          sync.RWMutex
}

// NewLoader creates an idle loader. Fetches are submitted to pool, which is
// shared by all loaders of a view. The placeholder is decoded eagerly.
func NewLoader(opts Options, fetcher Fetcher, pool pond.Pool, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())

	l := &Loader{
		source:       opts.Source,
		maxDimension: opts.MaxDimension,
		fetcher:      fetcher,
		pool:         pool,
		log:          log,
		ctx:          ctx,
		cancel:       cancel,
		state:        model.LoadStateIdle,
	}

	if opts.Placeholder != "" {
		placeholder, err := DecodePlaceholder(opts.Placeholder)
		if err != nil {
			log.Warn("ignoring undecodable placeholder", zap.String("source", opts.Source), zap.Error(err))
		} else {
			l.placeholder = placeholder
		}
	}

	return l
}

// SetChangeCallback sets the function called after every state transition.
// It runs on whichever goroutine made the transition.
func (l *Loader) SetChangeCallback(callback func(model.LoadState)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = callback
}

// MarkVisible reports that the element came into proximity of the viewport.
// Only the first call has an effect; it starts the single fetch.
func (l *Loader) MarkVisible() {
	l.mu.Lock()
	if l.state != model.LoadStateIdle || l.closed {
		l.mu.Unlock()
		return
	}

	if l.source == "" {
		l.state = model.LoadStateErrored
		l.err = ErrNoSource
		l.mu.Unlock()
		l.log.Warn("image has no source")
		l.notify(model.LoadStateErrored)
		return
	}

	l.state = model.LoadStateVisible
	l.task = l.pool.Submit(l.load)
	l.mu.Unlock()

	l.notify(model.LoadStateVisible)
}

// load fetches and decodes the primary resource
func (l *Loader) load() {
	data, err := l.fetcher.FetchResource(l.ctx, l.source)
	var img image.Image
	if err == nil {
		img, err = decodeImage(data, l.maxDimension)
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	state := model.LoadStateLoaded
	if err != nil {
		state = model.LoadStateErrored
		l.err = err
	} else {
		l.image = img
	}
	l.state = state
	l.mu.Unlock()

	if err != nil {
		l.log.Error("failed to load image", zap.String("source", l.source), zap.Error(err))
	}
	l.notify(state)
}

// Wait blocks until the fetch started by MarkVisible has settled
func (l *Loader) Wait() {
	l.mu.RLock()
	task := l.task
	l.mu.RUnlock()

	if task != nil {
		_ = task.Wait()
	}
}

// Close cancels an in-flight fetch and suppresses further notifications
func (l *Loader) Close() {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	l.cancel()
}

// State returns the current load state
func (l *Loader) State() model.LoadState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Source returns the primary resource URL
func (l *Loader) Source() string {
	return l.source
}

// Image returns the decoded image once loaded
func (l *Loader) Image() image.Image {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.image
}

// Placeholder returns the decoded placeholder, if any
func (l *Loader) Placeholder() image.Image {
	return l.placeholder
}

// Err returns the load failure, if any
func (l *Loader) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

// Display computes what to render. The placeholder and the spinner are never
// shown together.
func (l *Loader) Display() Display {
	l.mu.RLock()
	defer l.mu.RUnlock()

	terminal := l.state.IsTerminal()
	showPlaceholder := l.placeholder != nil && !terminal

	return Display{
		Placeholder: showPlaceholder,
		Image:       l.state != model.LoadStateIdle,
		Opaque:      l.state == model.LoadStateLoaded,
		Error:       l.state == model.LoadStateErrored,
		Spinner:     l.state == model.LoadStateVisible && !showPlaceholder,
	}
}

func (l *Loader) notify(state model.LoadState) {
	l.mu.RLock()
	callback := l.onChange
	closed := l.closed
	l.mu.RUnlock()

	if callback != nil && !closed {
		callback(state)
	}
}
