package window

import (
	"sync"
)

// Surface provides platform windowing and input event delivery for a camera
// controller: a queryable pixel size, a per-frame tick source, and pointer
// input events. Event registration returns a Subscription handle; releasing
// the handle detaches the callback and is safe to do more than once.
type Surface interface {
	// Size returns the current surface client area size in pixels.
	//
	// Returns:
	//   - width, height: dimensions in pixels
	Size() (width, height int)

	// OnFrame registers a callback invoked once per rendered frame with the
	// elapsed time since the previous frame.
	//
	// Parameters:
	//   - fn: callback receiving the frame event
	//
	// Returns:
	//   - Subscription: handle releasing the registration
	OnFrame(fn func(FrameEvent)) Subscription

	// OnScroll registers a callback for pointer wheel events.
	// Positive delta = scroll up (zoom in), negative = scroll down (zoom out).
	//
	// Parameters:
	//   - fn: callback receiving the scroll event
	//
	// Returns:
	//   - Subscription: handle releasing the registration
	OnScroll(fn func(ScrollEvent)) Subscription

	// OnPointerDown registers a callback for secondary-button press events.
	//
	// Parameters:
	//   - fn: callback receiving the pointer event
	//
	// Returns:
	//   - Subscription: handle releasing the registration
	OnPointerDown(fn func(PointerEvent)) Subscription

	// OnPointerUp registers a callback for secondary-button release events.
	//
	// Parameters:
	//   - fn: callback receiving the pointer event
	//
	// Returns:
	//   - Subscription: handle releasing the registration
	OnPointerUp(fn func(PointerEvent)) Subscription

	// OnPointerMove registers a callback for pointer movement.
	//
	// Parameters:
	//   - fn: callback receiving the pointer event
	//
	// Returns:
	//   - Subscription: handle releasing the registration
	OnPointerMove(fn func(PointerEvent)) Subscription

	// OnResize registers a callback for surface size changes.
	//
	// Parameters:
	//   - fn: callback receiving the resize event
	//
	// Returns:
	//   - Subscription: handle releasing the registration
	OnResize(fn func(ResizeEvent)) Subscription

	// Run drives the surface's message/frame loop. Blocks until the surface
	// is closed.
	//
	// Returns:
	//   - error: error if the loop terminates abnormally
	Run() error

	// Close shuts the surface down and releases platform resources.
	// Safe to call multiple times.
	//
	// Returns:
	//   - error: error if the close operation fails
	Close() error
}

// FrameEvent carries the elapsed time of one frame.
type FrameEvent struct {
	// DeltaTime is the time since the previous frame in seconds.
	DeltaTime float32
}

// ScrollEvent carries one wheel movement.
type ScrollEvent struct {
	// Delta is the wheel movement; positive = up/zoom in.
	Delta float32
}

// PointerEvent carries a pointer position in surface pixel coordinates.
type PointerEvent struct {
	X, Y int32
}

// ResizeEvent carries the new surface size in pixels.
type ResizeEvent struct {
	Width, Height int
}

// Subscription is an owned registration handle. Release detaches the
// callback; it is idempotent, so releasing twice (or releasing a handle
// whose surface is already closed) is a no-op.
type Subscription interface {
	// Release detaches the subscribed callback.
	Release()
}

type subscription struct {
	once    sync.Once
	release func()
}

var _ Subscription = &subscription{}

func (s *subscription) Release() {
	s.once.Do(s.release)
}

// callbackList is a registry of event callbacks keyed by registration ID.
// emit snapshots the callbacks under the lock and invokes them outside it,
// so a callback may release its own subscription.
type callbackList[T any] struct {
	mu      *sync.Mutex
	nextID  uint64
	entries map[uint64]func(T)
}

func newCallbackList[T any]() *callbackList[T] {
	return &callbackList[T]{
		mu:      &sync.Mutex{},
		entries: make(map[uint64]func(T)),
	}
}

func (l *callbackList[T]) subscribe(fn func(T)) Subscription {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextID
	l.nextID++
	l.entries[id] = fn
	return &subscription{
		release: func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			delete(l.entries, id)
		},
	}
}

func (l *callbackList[T]) emit(event T) {
	l.mu.Lock()
	callbacks := make([]func(T), 0, len(l.entries))
	for _, fn := range l.entries {
		callbacks = append(callbacks, fn)
	}
	l.mu.Unlock()

	for _, fn := range callbacks {
		fn(event)
	}
}

func (l *callbackList[T]) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// surfaceEvents bundles the callback registries shared by every Surface
// backend.
type surfaceEvents struct {
	frame       *callbackList[FrameEvent]
	scroll      *callbackList[ScrollEvent]
	pointerDown *callbackList[PointerEvent]
	pointerUp   *callbackList[PointerEvent]
	pointerMove *callbackList[PointerEvent]
	resize      *callbackList[ResizeEvent]
}

func newSurfaceEvents() surfaceEvents {
	return surfaceEvents{
		frame:       newCallbackList[FrameEvent](),
		scroll:      newCallbackList[ScrollEvent](),
		pointerDown: newCallbackList[PointerEvent](),
		pointerUp:   newCallbackList[PointerEvent](),
		pointerMove: newCallbackList[PointerEvent](),
		resize:      newCallbackList[ResizeEvent](),
	}
}

func (e *surfaceEvents) OnFrame(fn func(FrameEvent)) Subscription {
	return e.frame.subscribe(fn)
}

func (e *surfaceEvents) OnScroll(fn func(ScrollEvent)) Subscription {
	return e.scroll.subscribe(fn)
}

func (e *surfaceEvents) OnPointerDown(fn func(PointerEvent)) Subscription {
	return e.pointerDown.subscribe(fn)
}

func (e *surfaceEvents) OnPointerUp(fn func(PointerEvent)) Subscription {
	return e.pointerUp.subscribe(fn)
}

func (e *surfaceEvents) OnPointerMove(fn func(PointerEvent)) Subscription {
	return e.pointerMove.subscribe(fn)
}

func (e *surfaceEvents) OnResize(fn func(ResizeEvent)) Subscription {
	return e.resize.subscribe(fn)
}
