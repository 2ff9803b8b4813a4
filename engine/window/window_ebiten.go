package window

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenSurface is the Ebitengine-backed Surface implementation, for hosts
// that want a pure-Go window without native GLFW/WebGPU bindings. It
// implements ebiten.Game and translates the engine's polled input state
// into surface events each update.
type ebitenSurface struct {
	surfaceEvents

	mu *sync.Mutex

	config surfaceConfig

	width  int
	height int

	lastTick     time.Time
	lastPointerX int32
	lastPointerY int32

	draw func(screen *ebiten.Image)

	closed bool
}

var _ Surface = &ebitenSurface{}
var _ ebiten.Game = &ebitenSurface{}

// NewEbitenSurface creates an Ebitengine-backed Surface.
//
// Parameters:
//   - options: functional options to configure the surface
//
// Returns:
//   - Surface: the configured surface (call Run to start the game loop)
func NewEbitenSurface(options ...WindowBuilderOption) Surface {
	config := defaultSurfaceConfig()
	for _, opt := range options {
		opt(&config)
	}
	return &ebitenSurface{
		surfaceEvents: newSurfaceEvents(),
		mu:            &sync.Mutex{},
		config:        config,
		width:         config.width,
		height:        config.height,
	}
}

func (s *ebitenSurface) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// SetDrawCallback sets an optional per-frame draw hook invoked with the
// screen image. The surface itself draws nothing.
//
// Parameters:
//   - draw: the draw callback (or nil to disable)
func (s *ebitenSurface) SetDrawCallback(draw func(screen *ebiten.Image)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draw = draw
}

// Update polls input state and emits the per-frame events.
// Part of the ebiten.Game interface; called once per tick by the engine.
func (s *ebitenSurface) Update() error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return ebiten.Termination
	}

	cx, cy := ebiten.CursorPosition()
	x, y := int32(cx), int32(cy)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.pointerDown.emit(PointerEvent{X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		s.pointerUp.emit(PointerEvent{X: x, Y: y})
	}

	s.mu.Lock()
	moved := x != s.lastPointerX || y != s.lastPointerY
	s.lastPointerX, s.lastPointerY = x, y
	s.mu.Unlock()
	if moved {
		s.pointerMove.emit(PointerEvent{X: x, Y: y})
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		s.scroll.emit(ScrollEvent{Delta: float32(wheelY)})
	}

	s.mu.Lock()
	now := time.Now()
	var dt float32
	if !s.lastTick.IsZero() {
		dt = float32(now.Sub(s.lastTick).Seconds())
	}
	s.lastTick = now
	s.mu.Unlock()

	s.frame.emit(FrameEvent{DeltaTime: dt})
	return nil
}

// Draw forwards to the configured draw callback, if any.
// Part of the ebiten.Game interface.
func (s *ebitenSurface) Draw(screen *ebiten.Image) {
	s.mu.Lock()
	draw := s.draw
	s.mu.Unlock()
	if draw != nil {
		draw(screen)
	}
}

// Layout reports the logical screen size and emits resize events when the
// outside size changes. Part of the ebiten.Game interface.
func (s *ebitenSurface) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.mu.Lock()
	changed := outsideWidth != s.width || outsideHeight != s.height
	if changed && outsideWidth > 0 && outsideHeight > 0 {
		s.width = outsideWidth
		s.height = outsideHeight
	}
	width, height := s.width, s.height
	s.mu.Unlock()

	if changed {
		s.resize.emit(ResizeEvent{Width: width, Height: height})
	}
	return width, height
}

// Run starts the Ebitengine game loop. Blocks until the window closes or
// Close is called.
func (s *ebitenSurface) Run() error {
	ebiten.SetWindowTitle(s.config.title)
	ebiten.SetWindowSize(s.config.width, s.config.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(s); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

func (s *ebitenSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
