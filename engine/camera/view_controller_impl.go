package camera

import (
	"fmt"
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/Carmen-Shannon/oxy-view/engine/model"
	"github.com/Carmen-Shannon/oxy-view/engine/viewport"
	"github.com/Carmen-Shannon/oxy-view/engine/window"
)

const (
	// zoomOffsetMin/Max bound the discrete zoom offset in camera-forward units.
	zoomOffsetMin = -2
	zoomOffsetMax = 5

	// zoomMinDistance/zoomMaxDistance gate zoom input by the current
	// camera-to-pivot distance, preventing zooming through the model or
	// arbitrarily far away.
	defaultZoomMinDistance = 5.0
	defaultZoomMaxDistance = 10.0

	// dragScale converts drag pixel deltas to radians (pixels per radian).
	dragScale = 100.0

	// defaultSmoothingRate is the exponential blend rate toward the target
	// pose, in units of 1/second. The per-frame factor is rate*dt clamped
	// to [0, 1], so lower frame rates still converge at the same
	// wall-clock rate.
	defaultSmoothingRate = 6.0

	// defaultOrbitRate is the auto-orbit angular rate in radians per second.
	defaultOrbitRate = math.Pi / 2

	// resetStepFactor is the fixed per-frame lerp factor of the reset
	// sequence; resetEpsilon is the home-distance threshold that ends it.
	resetStepFactor = 0.1
	resetEpsilon    = 0.01

	defaultFovDegrees = 70.0
)

// viewControllerImpl is the single implementation of ViewController.
// All mutation happens on surface callbacks (frame tick plus input events)
// guarded by one mutex; the reset flag provides the cooperative exclusion
// between the reset sequence and drag input.
type viewControllerImpl struct {
	mu *sync.Mutex

	surface window.Surface
	mdl     model.Model
	cam     Camera

	calib      viewport.Calibration
	fovDegrees float32

	// Home framing state. frontFlipped records that the 180° front-facing
	// yaw was already applied to the model's pivot, keeping FitModel
	// idempotent.
	homePose     common.Transform
	fitted       bool
	frontFlipped bool

	// Interaction state.
	zoomOffset int
	yawDelta   float32
	pitchAngle float32

	dragActive bool
	dragStartX int32
	dragStartY int32

	orbiting  bool
	resetting bool

	// Tunables.
	smoothingRate   float32
	orbitRate       float32
	zoomMinDistance float32
	zoomMaxDistance float32

	// Owned subscriptions, nil while the feature is disabled.
	frameSub       window.Subscription
	scrollSub      window.Subscription
	pointerDownSub window.Subscription
	pointerUpSub   window.Subscription
	pointerMoveSub window.Subscription
}

var _ ViewController = &viewControllerImpl{}

// NewViewController creates a controller framing the given model inside the
// given surface. The viewport is calibrated from the surface's current size;
// a camera is created unless one is supplied via WithControllerCamera.
// No feature is enabled at construction; call the Set*Enabled toggles.
//
// Parameters:
//   - surface: the display surface delivering size, ticks, and input
//   - mdl: the model to frame
//   - options: functional options to configure the controller
//
// Returns:
//   - ViewController: the newly created controller
//   - error: error on nil collaborators or degenerate surface size
func NewViewController(surface window.Surface, mdl model.Model, options ...ViewControllerOption) (ViewController, error) {
	if surface == nil {
		return nil, fmt.Errorf("view controller: nil surface")
	}
	if mdl == nil {
		return nil, fmt.Errorf("view controller: nil model")
	}

	vc := &viewControllerImpl{
		mu:              &sync.Mutex{},
		surface:         surface,
		mdl:             mdl,
		fovDegrees:      defaultFovDegrees,
		smoothingRate:   defaultSmoothingRate,
		orbitRate:       defaultOrbitRate,
		zoomMinDistance: defaultZoomMinDistance,
		zoomMaxDistance: defaultZoomMaxDistance,
	}
	for _, option := range options {
		option(vc)
	}

	width, height := surface.Size()
	calib, err := viewport.Calibrate(width, height, vc.fovDegrees)
	if err != nil {
		return nil, err
	}
	vc.calib = calib

	if vc.cam == nil {
		vc.cam = NewCamera(
			WithFov(common.Radians(vc.fovDegrees)),
			WithAspect(calib.Aspect),
		)
	} else {
		vc.cam.SetFov(common.Radians(vc.fovDegrees))
		vc.cam.SetAspect(calib.Aspect)
	}

	return vc, nil
}

func (vc *viewControllerImpl) Camera() Camera {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.cam
}

func (vc *viewControllerImpl) Model() model.Model {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.mdl
}

func (vc *viewControllerImpl) Calibration() viewport.Calibration {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.calib
}

func (vc *viewControllerImpl) FitModel() error {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	// Turn the model's front toward the incoming camera. Applied to the
	// pivot at most once per controller so repeated fits don't compound
	// the rotation.
	if !vc.frontFlipped {
		vc.mdl.SetPivot(vc.mdl.Pivot().Mul(common.RotationY(math.Pi)))
		vc.frontFlipped = true
	}

	bounds, err := vc.mdl.RecomputeBounds()
	if err != nil {
		return fmt.Errorf("fit model: %w", err)
	}
	radius := vc.mdl.BoundingRadius()
	if radius <= 0 {
		return ErrDegenerateBounds
	}

	pivot := vc.mdl.Pivot()
	focusOffset := bounds.Center.DistanceTo(pivot)
	distance := vc.calib.FitDistance(radius, focusOffset)

	cx := bounds.Center.Position[0]
	cy := bounds.Center.Position[1]
	cz := bounds.Center.Position[2]
	fx, fy, fz := bounds.Center.Forward()

	pose := common.NewLookAt(
		cx+fx*distance, cy+fy*distance, cz+fz*distance,
		cx, cy, cz,
	).Orthonormalize()

	vc.homePose = pose
	vc.fitted = true
	vc.cam.SetPose(pose)
	return nil
}

func (vc *viewControllerImpl) ResetCamera() error {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	if vc.resetting {
		return ErrResetInProgress
	}
	if !vc.fitted {
		return ErrNotFitted
	}
	vc.resetting = true
	return nil
}

func (vc *viewControllerImpl) Recalibrate() error {
	width, height := vc.surface.Size()

	vc.mu.Lock()
	defer vc.mu.Unlock()

	calib, err := viewport.Calibrate(width, height, vc.fovDegrees)
	if err != nil {
		// Keep the previous calibration; the camera stays at its last
		// valid pose and lens settings.
		return err
	}
	vc.calib = calib
	vc.cam.SetAspect(calib.Aspect)
	return nil
}

func (vc *viewControllerImpl) SetAnimationEnabled(enabled bool) {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	switch {
	case enabled && vc.frameSub == nil:
		vc.frameSub = vc.surface.OnFrame(vc.tick)
	case !enabled && vc.frameSub != nil:
		vc.frameSub.Release()
		vc.frameSub = nil
	}
}

func (vc *viewControllerImpl) SetDraggingEnabled(enabled bool) {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	switch {
	case enabled && vc.pointerDownSub == nil:
		vc.pointerDownSub = vc.surface.OnPointerDown(vc.onPointerDown)
		vc.pointerUpSub = vc.surface.OnPointerUp(vc.onPointerUp)
		vc.pointerMoveSub = vc.surface.OnPointerMove(vc.onPointerMove)
	case !enabled && vc.pointerDownSub != nil:
		vc.pointerDownSub.Release()
		vc.pointerUpSub.Release()
		vc.pointerMoveSub.Release()
		vc.pointerDownSub = nil
		vc.pointerUpSub = nil
		vc.pointerMoveSub = nil
		vc.dragActive = false
	}
}

func (vc *viewControllerImpl) SetZoomingEnabled(enabled bool) {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	switch {
	case enabled && vc.scrollSub == nil:
		vc.scrollSub = vc.surface.OnScroll(vc.onScroll)
	case !enabled && vc.scrollSub != nil:
		vc.scrollSub.Release()
		vc.scrollSub = nil
	}
}

func (vc *viewControllerImpl) SetOrbitingEnabled(enabled bool) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.orbiting = enabled
}

func (vc *viewControllerImpl) Close() error {
	vc.SetAnimationEnabled(false)
	vc.SetDraggingEnabled(false)
	vc.SetZoomingEnabled(false)
	vc.SetOrbitingEnabled(false)
	return nil
}

// --- input handlers ---

// onScroll adjusts the zoom offset from wheel input, gated by the current
// camera-to-pivot distance and clamped to [zoomOffsetMin, zoomOffsetMax].
func (vc *viewControllerImpl) onScroll(event window.ScrollEvent) {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	pivot := vc.mdl.Pivot()
	distance := vc.cam.Pose().DistanceTo(pivot)

	switch {
	case event.Delta > 0:
		if distance > vc.zoomMinDistance && vc.zoomOffset > zoomOffsetMin {
			vc.zoomOffset--
		}
	case event.Delta < 0:
		if distance < vc.zoomMaxDistance && vc.zoomOffset < zoomOffsetMax {
			vc.zoomOffset++
		}
	}
}

// onPointerDown begins a drag gesture. At most one gesture is active;
// presses during a reset sequence are ignored.
func (vc *viewControllerImpl) onPointerDown(event window.PointerEvent) {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	if vc.resetting || vc.dragActive {
		return
	}
	vc.dragActive = true
	vc.dragStartX = event.X
	vc.dragStartY = event.Y
}

// onPointerMove updates the drag angles from the pointer delta relative to
// the gesture's start position. Ignored entirely while resetting.
func (vc *viewControllerImpl) onPointerMove(event window.PointerEvent) {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	if !vc.dragActive || vc.resetting {
		return
	}
	deltaX := float32(event.X - vc.dragStartX)
	deltaY := float32(event.Y - vc.dragStartY)

	vc.yawDelta = deltaX
	vc.pitchAngle = common.Clamp(-deltaY/dragScale, -math.Pi/2, math.Pi/2)
}

// onPointerUp ends the drag gesture. The last yaw/pitch persist until the
// next gesture begins.
func (vc *viewControllerImpl) onPointerUp(event window.PointerEvent) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.dragActive = false
}

// --- per-frame animation ---

// tick advances the camera one frame. Priority: reset step, then drag
// blending, then auto-orbit, then idle blending toward home plus zoom.
func (vc *viewControllerImpl) tick(event window.FrameEvent) {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	if !vc.fitted {
		return
	}

	switch {
	case vc.resetting:
		vc.resetStep()
	case vc.dragActive:
		alpha := common.Clamp(vc.smoothingRate*event.DeltaTime, 0, 1)
		vc.cam.SetPose(vc.cam.Pose().Lerp(vc.dragTarget(), alpha))
	case vc.orbiting:
		vc.orbitStep(event.DeltaTime)
	default:
		target := vc.homePose.Mul(common.Translation(0, 0, float32(vc.zoomOffset)))
		alpha := common.Clamp(vc.smoothingRate*event.DeltaTime, 0, 1)
		vc.cam.SetPose(vc.cam.Pose().Lerp(target, alpha))
	}
}

// resetStep advances the reset sequence one frame: a fixed-factor lerp
// toward home that ends once the position is within resetEpsilon of it.
// Caller must hold the mutex.
func (vc *viewControllerImpl) resetStep() {
	next := vc.cam.Pose().Lerp(vc.homePose, resetStepFactor)
	vc.cam.SetPose(next)
	if next.DistanceTo(vc.homePose) <= resetEpsilon {
		vc.resetting = false
	}
}

// dragTarget computes the drag pose: the zoomed home pose rotated about the
// model's pivot by the accumulated yaw and pitch of the active gesture.
// Caller must hold the mutex.
func (vc *viewControllerImpl) dragTarget() common.Transform {
	px := vc.mdl.Pivot().Position[0]
	py := vc.mdl.Pivot().Position[1]
	pz := vc.mdl.Pivot().Position[2]

	zoomed := vc.homePose.Mul(common.Translation(0, 0, float32(vc.zoomOffset)))
	aboutPivot := common.Translation(px, py, pz).
		Mul(common.RotationY(-vc.yawDelta / dragScale)).
		Mul(common.RotationX(vc.pitchAngle)).
		Mul(common.Translation(-px, -py, -pz))
	return aboutPivot.Mul(zoomed)
}

// orbitStep rotates the camera around the model's pivot at the orbit rate.
// The rotation is accumulated directly onto the current pose; this is the
// steady-state motion itself, not a blend target. Caller must hold the mutex.
func (vc *viewControllerImpl) orbitStep(deltaTime float32) {
	px := vc.mdl.Pivot().Position[0]
	py := vc.mdl.Pivot().Position[1]
	pz := vc.mdl.Pivot().Position[2]

	step := common.Translation(px, py, pz).
		Mul(common.RotationY(vc.orbitRate * deltaTime)).
		Mul(common.Translation(-px, -py, -pz))
	vc.cam.SetPose(step.Mul(vc.cam.Pose()).Orthonormalize())
}
