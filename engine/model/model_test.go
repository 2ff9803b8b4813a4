package model

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/unixpickle/model3d/model3d"
)

// boxMesh builds a two-triangle mesh whose vertices span the box
// (0,0,0)..(2,4,6).
func boxMesh() *model3d.Mesh {
	return model3d.NewMeshTriangles([]*model3d.Triangle{
		{
			model3d.Coord3D{X: 0, Y: 0, Z: 0},
			model3d.Coord3D{X: 2, Y: 4, Z: 6},
			model3d.Coord3D{X: 0, Y: 4, Z: 0},
		},
		{
			model3d.Coord3D{X: 2, Y: 0, Z: 3},
			model3d.Coord3D{X: 1, Y: 2, Z: 6},
			model3d.Coord3D{X: 0, Y: 0, Z: 0},
		},
	})
}

func TestRecomputeBounds(t *testing.T) {
	m, err := NewModel(boxMesh(), WithName("box"), WithBoundsWorkers(2))
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}

	b, err := m.RecomputeBounds()
	if err != nil {
		t.Fatalf("RecomputeBounds: %v", err)
	}

	wantExtents := [3]float32{2, 4, 6}
	for i := range wantExtents {
		if math.Abs(float64(b.Extents[i]-wantExtents[i])) > 1e-5 {
			t.Errorf("Extents[%d] = %v, want %v", i, b.Extents[i], wantExtents[i])
		}
	}

	wantCenter := [3]float32{1, 2, 3}
	for i := range wantCenter {
		if math.Abs(float64(b.Center.Position[i]-wantCenter[i])) > 1e-5 {
			t.Errorf("Center[%d] = %v, want %v", i, b.Center.Position[i], wantCenter[i])
		}
	}

	wantRadius := float32(math.Sqrt(4+16+36) / 2)
	if math.Abs(float64(b.Radius()-wantRadius)) > 1e-5 {
		t.Errorf("Radius = %v, want %v", b.Radius(), wantRadius)
	}
	if math.Abs(float64(m.BoundingRadius()-wantRadius)) > 1e-5 {
		t.Errorf("BoundingRadius = %v, want %v", m.BoundingRadius(), wantRadius)
	}

	if cached := m.Bounds(); cached != b {
		t.Errorf("Bounds() = %+v, want cached copy of %+v", cached, b)
	}
}

func TestRecomputeBounds_FollowsPivot(t *testing.T) {
	m, err := NewModel(boxMesh())
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}

	m.SetPivot(common.Translation(10, -5, 0.5))
	b, err := m.RecomputeBounds()
	if err != nil {
		t.Fatalf("RecomputeBounds: %v", err)
	}

	wantCenter := [3]float32{11, -3, 3.5}
	for i := range wantCenter {
		if math.Abs(float64(b.Center.Position[i]-wantCenter[i])) > 1e-5 {
			t.Errorf("Center[%d] = %v, want %v", i, b.Center.Position[i], wantCenter[i])
		}
	}

	// Translation must not change the extents.
	wantExtents := [3]float32{2, 4, 6}
	for i := range wantExtents {
		if math.Abs(float64(b.Extents[i]-wantExtents[i])) > 1e-5 {
			t.Errorf("Extents[%d] = %v, want %v", i, b.Extents[i], wantExtents[i])
		}
	}

	// A 180° yaw about the pivot keeps the box size but mirrors X/Z.
	m.SetPivot(common.RotationY(math.Pi))
	b, err = m.RecomputeBounds()
	if err != nil {
		t.Fatalf("RecomputeBounds after yaw: %v", err)
	}
	for i := range wantExtents {
		if math.Abs(float64(b.Extents[i]-wantExtents[i])) > 1e-4 {
			t.Errorf("yawed Extents[%d] = %v, want %v", i, b.Extents[i], wantExtents[i])
		}
	}
	if math.Abs(float64(b.Center.Position[0]+1)) > 1e-4 || math.Abs(float64(b.Center.Position[2]+3)) > 1e-4 {
		t.Errorf("yawed Center = %v, want (-1, 2, -3)", b.Center.Position)
	}
}

func TestNewModel_Errors(t *testing.T) {
	if _, err := NewModel(nil); err == nil {
		t.Error("NewModel(nil) should fail")
	}

	empty, err := NewModel(model3d.NewMesh())
	if err != nil {
		t.Fatalf("NewModel(empty): %v", err)
	}
	if _, err := empty.RecomputeBounds(); !errors.Is(err, ErrEmptyMesh) {
		t.Errorf("RecomputeBounds on empty mesh: err = %v, want ErrEmptyMesh", err)
	}
}

func TestBoundingRadius_Override(t *testing.T) {
	m, err := NewModel(boxMesh(), WithBoundingRadius(42))
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	if _, err := m.RecomputeBounds(); err != nil {
		t.Fatalf("RecomputeBounds: %v", err)
	}
	if r := m.BoundingRadius(); r != 42 {
		t.Errorf("BoundingRadius = %v, want override 42", r)
	}
}
