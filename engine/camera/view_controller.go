package camera

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-view/engine/model"
	"github.com/Carmen-Shannon/oxy-view/engine/viewport"
)

// ErrResetInProgress is returned by ResetCamera when a reset sequence is
// already running; callers must wait for it to finish before starting
// another.
var ErrResetInProgress = errors.New("camera reset already in progress")

// ErrNotFitted is returned by operations that need a home pose before
// FitModel has established one.
var ErrNotFitted = errors.New("no home pose: call FitModel first")

// ErrDegenerateBounds is returned by FitModel when the model's bounding
// radius is zero, leaving no volume to frame.
var ErrDegenerateBounds = errors.New("model bounds have zero radius")

// ViewController frames a single model inside a display surface and owns
// every camera movement: the home framing established by FitModel, pointer
// driven orbiting and zooming, continuous auto-orbit, and the animated
// reset back to the home pose.
//
// One controller owns one camera and one model. Feature toggles are
// idempotent and may be called in any order; each owns its input
// subscriptions and releases them on disable. All per-frame motion runs on
// the surface's frame callback, so nothing moves while animation is
// disabled.
type ViewController interface {
	// Camera returns the controller's camera. The host reads its matrices
	// for rendering.
	//
	// Returns:
	//   - Camera: the owned camera
	Camera() Camera

	// Model returns the displayed model.
	//
	// Returns:
	//   - model.Model: the owned model
	Model() model.Model

	// Calibration returns the current viewport calibration.
	//
	// Returns:
	//   - viewport.Calibration: the derived viewport constants
	Calibration() viewport.Calibration

	// FitModel frames the model: it recomputes the model's bounds, turns
	// the model's front toward the camera (a 180° yaw applied to the pivot
	// at most once per controller), and places the camera at the distance
	// where the bounding sphere exactly fills the viewport's tightest
	// angular dimension. The resulting transform becomes both the home
	// pose and the current camera pose.
	//
	// Returns:
	//   - error: ErrDegenerateBounds or a wrapped bounds error on failure
	FitModel() error

	// ResetCamera starts an animated return to the home pose. The sequence
	// advances one step per frame and suppresses drag input until the
	// camera is within 0.01 units of home.
	//
	// Returns:
	//   - error: ErrResetInProgress if a reset is active, ErrNotFitted if no home pose exists
	ResetCamera() error

	// Recalibrate re-derives the viewport calibration from the surface's
	// current size, updating the camera's aspect ratio. On failure the
	// previous calibration is kept and the camera is left untouched.
	//
	// Returns:
	//   - error: a wrapped viewport.ErrInvalidCalibration on degenerate surface size
	Recalibrate() error

	// SetAnimationEnabled toggles the per-frame animation subscription.
	// While disabled the camera pose freezes at its last value, including
	// any in-progress reset. Idempotent.
	//
	// Parameters:
	//   - enabled: true to subscribe to frame ticks, false to release
	SetAnimationEnabled(enabled bool)

	// SetDraggingEnabled toggles pointer-drag orbiting. Disabling releases
	// the pointer subscriptions; the last drag angles persist. Idempotent.
	//
	// Parameters:
	//   - enabled: true to subscribe to pointer events, false to release
	SetDraggingEnabled(enabled bool)

	// SetZoomingEnabled toggles wheel zoom. Disabling releases the scroll
	// subscription and leaves the zoom offset at its last value. Idempotent.
	//
	// Parameters:
	//   - enabled: true to subscribe to scroll events, false to release
	SetZoomingEnabled(enabled bool)

	// SetOrbitingEnabled toggles continuous auto-orbit around the model's
	// pivot. Motion is produced by the animation tick, not here. Idempotent.
	//
	// Parameters:
	//   - enabled: the new orbit flag
	SetOrbitingEnabled(enabled bool)

	// Close releases every subscription the controller holds. Safe to call
	// multiple times.
	//
	// Returns:
	//   - error: always nil; the signature matches the surface contract
	Close() error
}
