package squircle

import (
	"context"
	"sync"
	"time"
)

const (
	// DefaultFrameInterval is the interval at which [Observer.Run] applies
	// size changes when no frame source is configured.
	DefaultFrameInterval = time.Second / 60

	// DefaultResizeThreshold is the smallest change in width or height, in
	// device-independent units, that causes an [Observer] to regenerate its
	// path.
	DefaultResizeThreshold = 0.5
)

// ObserverOption configures an [Observer] during creation.
type ObserverOption func(*observerOptions)

type observerOptions struct {
	interval  time.Duration
	frames    <-chan time.Time
	threshold float64
	cache     *Cache
}

func defaultObserverOptions() observerOptions {
	return observerOptions{
		interval:  DefaultFrameInterval,
		threshold: DefaultResizeThreshold,
	}
}

// WithFrameInterval sets the interval at which [Observer.Run] applies size
// changes. It is ignored if [WithFrames] is used.
func WithFrameInterval(d time.Duration) ObserverOption {
	return func(o *observerOptions) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithFrames makes [Observer.Run] apply size changes whenever a value is
// received from frames, instead of on a timer. Hosts with their own render
// loop use this to regenerate paths in step with the frames they draw. Run
// returns when frames is closed.
func WithFrames(frames <-chan time.Time) ObserverOption {
	return func(o *observerOptions) {
		o.frames = frames
	}
}

// WithThreshold sets the smallest change in width or height that causes the
// path to be regenerated. Smaller changes are ignored.
func WithThreshold(t float64) ObserverOption {
	return func(o *observerOptions) {
		if t >= 0 {
			o.threshold = t
		}
	}
}

// WithCache makes the observer generate paths through c, which may be shared
// between observers. By default, each observer has a cache of its own.
func WithCache(c *Cache) ObserverOption {
	return func(o *observerOptions) {
		o.cache = c
	}
}

// Observer tracks the size of a rendered element and keeps the element's
// squircle path up to date.
//
// Hosts report sizes with [Observer.Notify] as often as their layout system
// produces them. Notifications are coalesced: only the latest size is kept,
// and it is applied at most once per frame, by [Observer.Run] or
// [Observer.Flush]. Changes below the threshold (see [WithThreshold]) are
// ignored. Applying a change invalidates the cache, regenerates the path and
// calls the change callback.
//
// An Observer is safe for concurrent use.
type Observer struct {
	opts     observerOptions
	cache    *Cache
	onChange func(Size, Path)

	// flushMu serializes applying changes, so that callbacks observe sizes in
	// order.
	flushMu sync.Mutex

	mu         sync.Mutex
	radii      CornerRadii
	profile    Profile
	pending    Size
	hasPending bool
	styleDirty bool
	coalesced  int
	current    Size
	path       Path
}

// NewObserver returns an observer generating paths with the given radii and
// profile. onChange, which may be nil, is called with every applied size and
// its path. Until a non-degenerate size has been applied, the observer's path
// is empty.
func NewObserver(radii CornerRadii, profile Profile, onChange func(Size, Path), opts ...ObserverOption) *Observer {
	o := defaultObserverOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cache := o.cache
	if cache == nil {
		cache = NewCache(0)
	}
	return &Observer{
		opts:     o,
		cache:    cache,
		onChange: onChange,
		radii:    radii,
		profile:  profile,
	}
}

// Notify records the element's latest size. It never blocks on path
// generation.
func (o *Observer) Notify(sz Size) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.hasPending {
		o.coalesced++
	}
	o.pending = sz
	o.hasPending = true
}

// SetStyle changes the radii and profile. The path is regenerated on the next
// frame, even if the size stays the same.
func (o *Observer) SetStyle(radii CornerRadii, profile Profile) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.radii = radii
	o.profile = profile
	o.styleDirty = true
}

// Path returns the most recently applied size and its path.
func (o *Observer) Path() (Size, Path) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current, o.path
}

// Flush applies the latest notified size, if it differs enough from the
// current one, or a pending style change. It reports whether the path was
// regenerated.
//
// Hosts that don't use [Observer.Run] call Flush once per frame.
func (o *Observer) Flush() bool {
	o.flushMu.Lock()
	defer o.flushMu.Unlock()

	o.mu.Lock()
	sz := o.current
	resized := o.hasPending && o.pending.Differs(o.current, o.opts.threshold)
	if resized {
		sz = o.pending
	}
	if !resized && !o.styleDirty {
		o.hasPending = false
		o.coalesced = 0
		o.mu.Unlock()
		return false
	}
	radii, profile := o.radii, o.profile
	coalesced := o.coalesced
	prev := o.current
	o.hasPending = false
	o.styleDirty = false
	o.coalesced = 0
	o.mu.Unlock()

	if resized {
		Logger().Debug("squircle: size changed",
			"from", prev, "to", sz, "coalesced", coalesced)
		o.cache.Invalidate()
	}
	p := o.cache.Path(sz, radii, profile)

	o.mu.Lock()
	o.current = sz
	o.path = p
	o.mu.Unlock()

	if o.onChange != nil {
		o.onChange(sz, p)
	}
	return true
}

// Run applies size changes once per frame until ctx is canceled, in which case
// it returns ctx.Err(), or until the frame source configured with
// [WithFrames] is closed, in which case it returns nil.
func (o *Observer) Run(ctx context.Context) error {
	frames := o.opts.frames
	if frames == nil {
		t := time.NewTicker(o.opts.interval)
		defer t.Stop()
		frames = t.C
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			o.Flush()
		}
	}
}
