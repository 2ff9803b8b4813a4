package window

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwSurface is the GLFW-backed Surface implementation.
// It owns the platform window, translates GLFW input callbacks into
// surface events, and drives the frame loop from the message pump.
type glfwSurface struct {
	surfaceEvents

	mu *sync.Mutex

	config surfaceConfig
	window *glfw.Window

	width  int
	height int

	running bool
}

var _ Surface = &glfwSurface{}

// NewGLFWSurface creates a GLFW-backed Surface.
// Panics if the platform window cannot be created, matching GLFW's
// unrecoverable initialization semantics.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
//
// Parameters:
//   - options: functional options to configure the surface
//
// Returns:
//   - Surface: the configured surface (call Run to start the loop)
func NewGLFWSurface(options ...WindowBuilderOption) Surface {
	config := defaultSurfaceConfig()
	for _, opt := range options {
		opt(&config)
	}

	s := &glfwSurface{
		surfaceEvents: newSurfaceEvents(),
		mu:            &sync.Mutex{},
		config:        config,
		width:         config.width,
		height:        config.height,
	}
	if err := s.initPlatform(); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return s
}

// initPlatform creates the GLFW window and registers input callbacks.
func (s *glfwSurface) initPlatform() error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	// WebGPU provides its own graphics API, so disable OpenGL context creation.
	// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_hints_ctx
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(s.config.width, s.config.height, s.config.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %v", err)
	}
	s.window = win
	s.running = true

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetScrollCallback
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		s.scroll.emit(ScrollEvent{Delta: float32(yoff)})
	})

	// The secondary (right) button begins and ends drag gestures.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetMouseButtonCallback
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonRight {
			return
		}
		xpos, ypos := win.GetCursorPos()
		event := PointerEvent{X: int32(xpos), Y: int32(ypos)}
		switch action {
		case glfw.Press:
			s.pointerDown.emit(event)
		case glfw.Release:
			s.pointerUp.emit(event)
		}
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetCursorPosCallback
	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		s.pointerMove.emit(PointerEvent{X: int32(xpos), Y: int32(ypos)})
	})

	// Use framebuffer size for pixel-accurate resize events. On high-DPI
	// displays the framebuffer size differs from the window size, and the
	// calibration requires pixel dimensions.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetFramebufferSizeCallback
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		s.mu.Lock()
		s.width = width
		s.height = height
		s.mu.Unlock()
		s.resize.emit(ResizeEvent{Width: width, Height: height})
	})

	// Update stored dimensions to reflect actual framebuffer size (may differ from requested on high-DPI).
	fbWidth, fbHeight := win.GetFramebufferSize()
	s.mu.Lock()
	s.width = fbWidth
	s.height = fbHeight
	s.mu.Unlock()

	return nil
}

func (s *glfwSurface) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a
// WebGPU surface, so a host renderer can attach to this window. The
// descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland,
// macOS Metal, etc.) and is created by the wgpuglfw bridge.
//
// Returns:
//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if the window is closed
func (s *glfwSurface) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.window == nil {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(s.window)
}

// Run pumps the GLFW message loop, emitting a frame event with measured
// delta time on each iteration. Blocks until the window is closed.
func (s *glfwSurface) Run() error {
	lastFrame := time.Now()

	for s.isRunning() {
		glfw.PollEvents()
		if s.window.ShouldClose() {
			break
		}

		now := time.Now()
		dt := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now
		s.frame.emit(FrameEvent{DeltaTime: dt})

		runtime.Gosched()
	}
	return s.Close()
}

func (s *glfwSurface) isRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running && s.window != nil
}

func (s *glfwSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return nil
	}
	s.running = false
	if s.window != nil {
		s.window.Destroy()
		s.window = nil
	}
	glfw.Terminate()
	return nil
}
