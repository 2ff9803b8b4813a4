package viewport

import (
	"errors"
	"math"
	"testing"
)

func TestCalibrate_ReferenceViewport(t *testing.T) {
	// 1920x1080 at 70° vertical FOV is the reference framing scenario.
	c, err := Calibrate(1920, 1080, 70)
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}

	if math.Abs(float64(c.Aspect)-1.778) > 1e-3 {
		t.Errorf("Aspect = %v, want ~1.778", c.Aspect)
	}

	wantVertical := math.Tan(35 * math.Pi / 180)
	if math.Abs(float64(c.VerticalHalfTan)-wantVertical) > 1e-4 {
		t.Errorf("VerticalHalfTan = %v, want %v", c.VerticalHalfTan, wantVertical)
	}

	// Wide viewport: the binding constraint is the vertical angle, so
	// cornerHalfSin = sin(atan(tan(35°))) = sin(35°)... via atan of the tangent.
	wantCorner := math.Sin(math.Atan(wantVertical))
	if math.Abs(float64(c.CornerHalfSin)-wantCorner) > 1e-4 {
		t.Errorf("CornerHalfSin = %v, want %v", c.CornerHalfSin, wantCorner)
	}
	if math.Abs(float64(c.CornerHalfSin)-0.573) > 1e-3 {
		t.Errorf("CornerHalfSin = %v, want ~0.573", c.CornerHalfSin)
	}

	if d := c.FitDistance(10, 0); math.Abs(float64(d)-17.45) > 0.05 {
		t.Errorf("FitDistance(10, 0) = %v, want ~17.45", d)
	}

	if !c.Valid() {
		t.Error("calibration should be valid")
	}
}

func TestCalibrate_CornerHalfSinRange(t *testing.T) {
	sizes := [][2]int{{100, 100}, {1920, 1080}, {1080, 1920}, {50, 400}, {3000, 200}}
	fovs := []float32{1, 30, 70, 90, 120, 179}

	for _, sz := range sizes {
		for _, fov := range fovs {
			c, err := Calibrate(sz[0], sz[1], fov)
			if err != nil {
				t.Fatalf("Calibrate(%v, %v): %v", sz, fov, err)
			}
			if c.CornerHalfSin <= 0 || c.CornerHalfSin >= 1 {
				t.Errorf("CornerHalfSin(%v, %v°) = %v, want in (0, 1)", sz, fov, c.CornerHalfSin)
			}
		}
	}
}

func TestCalibrate_CornerNonDecreasingInAspect(t *testing.T) {
	// For fixed FOV, cornerHalfSin must be non-decreasing as min(1, aspect)
	// increases: narrow viewports bind on the horizontal angle.
	prev := float32(0)
	for _, width := range []int{100, 250, 500, 750, 1000, 2000} {
		c, err := Calibrate(width, 1000, 70)
		if err != nil {
			t.Fatalf("Calibrate(width=%d): %v", width, err)
		}
		if c.CornerHalfSin < prev {
			t.Errorf("CornerHalfSin decreased at width %d: %v < %v", width, c.CornerHalfSin, prev)
		}
		prev = c.CornerHalfSin
	}
}

func TestFitDistance_Monotonic(t *testing.T) {
	c, err := Calibrate(800, 600, 60)
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}

	prev := float32(-1)
	for r := float32(0.5); r < 100; r *= 2 {
		d := c.FitDistance(r, 0)
		if d <= prev {
			t.Errorf("FitDistance(%v, 0) = %v, not increasing past %v", r, d, prev)
		}
		prev = d
	}

	base := c.FitDistance(10, 0)
	for _, offset := range []float32{0.5, 1, 5, 25} {
		if d := c.FitDistance(10, offset); d <= base {
			t.Errorf("FitDistance(10, %v) = %v, want > %v", offset, d, base)
		}
	}
}

func TestCalibrate_RejectsDegenerateInput(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		fov           float32
	}{
		{"zero width", 0, 1080, 70},
		{"zero height", 1920, 0, 70},
		{"negative width", -1, 1080, 70},
		{"zero fov", 1920, 1080, 0},
		{"negative fov", 1920, 1080, -45},
		{"straight fov", 1920, 1080, 180},
		{"reflex fov", 1920, 1080, 270},
	}
	for _, tc := range cases {
		if _, err := Calibrate(tc.width, tc.height, tc.fov); !errors.Is(err, ErrInvalidCalibration) {
			t.Errorf("%s: err = %v, want ErrInvalidCalibration", tc.name, err)
		}
	}
}
