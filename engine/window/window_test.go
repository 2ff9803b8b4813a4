package window

import (
	"testing"
)

func TestCallbackList_SubscribeEmitRelease(t *testing.T) {
	events := newSurfaceEvents()

	var got []float32
	sub := events.OnFrame(func(e FrameEvent) {
		got = append(got, e.DeltaTime)
	})

	events.frame.emit(FrameEvent{DeltaTime: 0.016})
	events.frame.emit(FrameEvent{DeltaTime: 0.032})
	if len(got) != 2 || got[0] != 0.016 || got[1] != 0.032 {
		t.Fatalf("got %v, want [0.016 0.032]", got)
	}

	sub.Release()
	events.frame.emit(FrameEvent{DeltaTime: 0.048})
	if len(got) != 2 {
		t.Errorf("callback fired after release: %v", got)
	}
	if n := events.frame.len(); n != 0 {
		t.Errorf("dangling entries after release: %d", n)
	}
}

func TestSubscription_ReleaseIdempotent(t *testing.T) {
	events := newSurfaceEvents()

	calls := 0
	sub := events.OnScroll(func(ScrollEvent) { calls++ })

	// Releasing twice in a row must be a harmless no-op.
	sub.Release()
	sub.Release()

	events.scroll.emit(ScrollEvent{Delta: 1})
	if calls != 0 {
		t.Errorf("callback fired after double release")
	}
}

func TestCallbackList_IndependentSubscribers(t *testing.T) {
	events := newSurfaceEvents()

	a, b := 0, 0
	subA := events.OnPointerMove(func(PointerEvent) { a++ })
	events.OnPointerMove(func(PointerEvent) { b++ })

	events.pointerMove.emit(PointerEvent{X: 1, Y: 2})
	subA.Release()
	events.pointerMove.emit(PointerEvent{X: 3, Y: 4})

	if a != 1 {
		t.Errorf("a = %d, want 1", a)
	}
	if b != 2 {
		t.Errorf("b = %d, want 2", b)
	}
}

func TestCallbackList_ReleaseDuringEmit(t *testing.T) {
	events := newSurfaceEvents()

	var sub Subscription
	calls := 0
	sub = events.OnPointerDown(func(PointerEvent) {
		calls++
		sub.Release()
	})

	// A callback releasing its own subscription must not deadlock and must
	// not fire again.
	events.pointerDown.emit(PointerEvent{})
	events.pointerDown.emit(PointerEvent{})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
