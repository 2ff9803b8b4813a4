// package viewport derives the trigonometric constants a framing camera needs
// from a display surface's pixel size and vertical field of view.
package viewport

import (
	"errors"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-view/common"
)

// ErrInvalidCalibration is returned when a viewport size or field of view
// cannot produce a usable calibration.
var ErrInvalidCalibration = errors.New("invalid calibration")

// Calibration holds the derived half-angle constants for one viewport
// configuration. It is computed once by Calibrate and consumed read-only;
// recompute it whenever the viewport size or field of view changes.
type Calibration struct {
	// Aspect is the viewport width divided by height. Always > 0.
	Aspect float32

	// VerticalHalfTan is the tangent of half the vertical field of view.
	VerticalHalfTan float32

	// HorizontalHalfTan is the tangent of half the horizontal field of view,
	// derived from the vertical field of view and the aspect ratio.
	HorizontalHalfTan float32

	// CornerHalfSin is the sine of the binding half-angle: the vertical
	// half-angle for wide viewports (aspect >= 1), the horizontal half-angle
	// otherwise. A sphere inscribed at FitDistance under this angle is fully
	// visible regardless of viewport orientation. Always in (0, 1).
	CornerHalfSin float32
}

// Calibrate derives a Calibration from viewport pixel dimensions and a
// vertical field of view in degrees. Degenerate inputs (zero dimensions, a
// field of view outside (0, 180)) are rejected rather than producing NaN or
// Inf downstream.
//
// Parameters:
//   - width: viewport width in pixels (must be > 0)
//   - height: viewport height in pixels (must be > 0)
//   - verticalFovDegrees: vertical field of view in degrees, in (0, 180)
//
// Returns:
//   - Calibration: the derived constants
//   - error: ErrInvalidCalibration (wrapped) on degenerate input
func Calibrate(width, height int, verticalFovDegrees float32) (Calibration, error) {
	if width <= 0 || height <= 0 {
		return Calibration{}, fmt.Errorf("%w: viewport %dx%d has a non-positive dimension", ErrInvalidCalibration, width, height)
	}
	if verticalFovDegrees <= 0 || verticalFovDegrees >= 180 {
		return Calibration{}, fmt.Errorf("%w: vertical fov %.2f° outside (0, 180)", ErrInvalidCalibration, verticalFovDegrees)
	}

	aspect := float32(width) / float32(height)
	verticalHalfTan := float32(math.Tan(float64(common.Radians(verticalFovDegrees)) / 2))
	horizontalHalfAngle := math.Atan(float64(verticalHalfTan * aspect))
	cornerHalfAngle := math.Atan(float64(verticalHalfTan * min(1, aspect)))

	return Calibration{
		Aspect:            aspect,
		VerticalHalfTan:   verticalHalfTan,
		HorizontalHalfTan: float32(math.Tan(horizontalHalfAngle)),
		CornerHalfSin:     float32(math.Sin(cornerHalfAngle)),
	}, nil
}

// FitDistance computes the camera distance at which a sphere of the given
// bounding radius exactly inscribes the viewport's tightest angular
// dimension. focusOffset shifts the anchor from the sphere's geometric
// center to an alternate focus point (e.g. a model's pivot).
//
// The calibration must have come from Calibrate, which guarantees
// CornerHalfSin > 0.
//
// Parameters:
//   - boundingRadius: radius of the enclosing sphere
//   - focusOffset: distance from the sphere center to the focus point
//
// Returns:
//   - float32: the fitting camera distance
func (c Calibration) FitDistance(boundingRadius, focusOffset float32) float32 {
	return (boundingRadius + focusOffset) / c.CornerHalfSin
}

// Valid reports whether the calibration carries usable constants.
//
// Returns:
//   - bool: true if CornerHalfSin is in (0, 1)
func (c Calibration) Valid() bool {
	return c.CornerHalfSin > 0 && c.CornerHalfSin < 1 && c.Aspect > 0
}
