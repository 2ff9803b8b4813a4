package camera

// ViewControllerOption is a functional option for configuring a ViewController.
type ViewControllerOption func(*viewControllerImpl)

// WithFovDegrees sets the vertical field of view used for calibration and
// the camera lens, in degrees.
//
// Parameters:
//   - degrees: vertical field of view in degrees, in (0, 180)
//
// Returns:
//   - ViewControllerOption: functional option to set the field of view
func WithFovDegrees(degrees float32) ViewControllerOption {
	return func(vc *viewControllerImpl) {
		vc.fovDegrees = degrees
	}
}

// WithControllerCamera attaches an existing camera instead of creating one.
// The controller takes ownership of its pose.
//
// Parameters:
//   - cam: the camera to drive
//
// Returns:
//   - ViewControllerOption: functional option to attach the camera
func WithControllerCamera(cam Camera) ViewControllerOption {
	return func(vc *viewControllerImpl) {
		vc.cam = cam
	}
}

// WithSmoothingRate sets the exponential blend rate toward target poses,
// in 1/seconds.
//
// Parameters:
//   - rate: blend rate (values <= 0 are ignored)
//
// Returns:
//   - ViewControllerOption: functional option to set the smoothing rate
func WithSmoothingRate(rate float32) ViewControllerOption {
	return func(vc *viewControllerImpl) {
		if rate > 0 {
			vc.smoothingRate = rate
		}
	}
}

// WithOrbitRate sets the auto-orbit angular rate in radians per second.
//
// Parameters:
//   - rate: orbit rate (values <= 0 are ignored)
//
// Returns:
//   - ViewControllerOption: functional option to set the orbit rate
func WithOrbitRate(rate float32) ViewControllerOption {
	return func(vc *viewControllerImpl) {
		if rate > 0 {
			vc.orbitRate = rate
		}
	}
}

// WithZoomDistanceBounds sets the camera-to-pivot distance thresholds that
// gate zoom input: zooming in requires a distance above min, zooming out a
// distance below max.
//
// Parameters:
//   - min: minimum distance that still allows zooming in
//   - max: maximum distance that still allows zooming out
//
// Returns:
//   - ViewControllerOption: functional option to set the zoom thresholds
func WithZoomDistanceBounds(min, max float32) ViewControllerOption {
	return func(vc *viewControllerImpl) {
		vc.zoomMinDistance = min
		vc.zoomMaxDistance = max
	}
}
