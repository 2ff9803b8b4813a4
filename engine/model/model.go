package model

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-view/common"
	"github.com/unixpickle/model3d/model3d"
)

// ErrEmptyMesh is returned when bounds are requested for a mesh with no triangles.
var ErrEmptyMesh = errors.New("model has no triangles")

// Bounds describes a model's world-space axis-aligned bounding box: a center
// transform carrying the model's orientation, plus the box extents along each
// world axis. Immutable between recomputes.
type Bounds struct {
	// Center carries the bounding-box center position and the model's
	// pivot orientation at the time the bounds were computed.
	Center common.Transform

	// Extents is the full size of the box along each world axis.
	Extents [3]float32
}

// Radius returns the conservative enclosing-sphere radius: half the
// magnitude of the box extents.
//
// Returns:
//   - float32: the bounding radius
func (b Bounds) Radius() float32 {
	x, y, z := b.Extents[0], b.Extents[1], b.Extents[2]
	return float32(math.Sqrt(float64(x*x+y*y+z*z))) / 2
}

type meshModel struct {
	mu *sync.Mutex

	name string
	mesh *model3d.Mesh

	pivot  common.Transform
	bounds Bounds

	// boundingRadiusOverride replaces the computed radius when > 0.
	boundingRadiusOverride float32

	boundsWorkers int
	boundsPool    worker.DynamicWorkerPool
}

// Model defines the interface for a displayable 3D model.
// A Model owns a triangle mesh and a mutable pivot transform; its
// world-space bounds are recomputed on demand under the current pivot.
type Model interface {
	// Name returns the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Mesh returns the underlying triangle mesh.
	//
	// Returns:
	//   - *model3d.Mesh: the mesh
	Mesh() *model3d.Mesh

	// Pivot returns the model's pivot transform: its logical anchor,
	// distinct from the bounding-box geometric center.
	//
	// Returns:
	//   - common.Transform: the pivot transform
	Pivot() common.Transform

	// SetPivot replaces the pivot transform. Bounds are stale until the
	// next RecomputeBounds call.
	//
	// Parameters:
	//   - pivot: the new pivot transform
	SetPivot(pivot common.Transform)

	// Bounds returns the most recently computed world-space bounds.
	// Zero until RecomputeBounds has been called.
	//
	// Returns:
	//   - Bounds: the cached bounds
	Bounds() Bounds

	// RecomputeBounds transforms every mesh vertex by the current pivot and
	// reduces the world-space axis-aligned bounding box, fanning the work
	// out across the bounds worker pool for large meshes.
	//
	// Returns:
	//   - Bounds: the freshly computed bounds
	//   - error: ErrEmptyMesh if the mesh has no triangles
	RecomputeBounds() (Bounds, error)

	// BoundingRadius returns the enclosing-sphere radius: the manual
	// override when one was configured, otherwise the radius of the last
	// computed bounds.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32
}

var _ Model = &meshModel{}

// NewModel creates a Model wrapping the given mesh.
//
// Parameters:
//   - mesh: the triangle mesh to wrap (must not be nil)
//   - options: functional options to configure the model
//
// Returns:
//   - Model: the newly created model
//   - error: error if the mesh is nil
func NewModel(mesh *model3d.Mesh, options ...ModelBuilderOption) (Model, error) {
	if mesh == nil {
		return nil, fmt.Errorf("model: nil mesh")
	}
	m := &meshModel{
		mu:            &sync.Mutex{},
		name:          "model",
		mesh:          mesh,
		pivot:         common.IdentityTransform(),
		boundsWorkers: max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(m)
	}
	m.boundsPool = worker.NewDynamicWorkerPool(m.boundsWorkers, 256, 1*time.Second)
	return m, nil
}

func (m *meshModel) Name() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.name
}

func (m *meshModel) Mesh() *model3d.Mesh {
	return m.mesh
}

func (m *meshModel) Pivot() common.Transform {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pivot
}

func (m *meshModel) SetPivot(pivot common.Transform) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pivot = pivot
}

func (m *meshModel) Bounds() Bounds {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bounds
}

func (m *meshModel) BoundingRadius() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.boundingRadiusOverride > 0 {
		return m.boundingRadiusOverride
	}
	return m.bounds.Radius()
}

// boundsAccum is one chunk's partial min/max reduction.
type boundsAccum struct {
	min, max [3]float32
	valid    bool
}

func (a *boundsAccum) add(x, y, z float32) {
	if !a.valid {
		a.min = [3]float32{x, y, z}
		a.max = a.min
		a.valid = true
		return
	}
	a.min[0] = min(a.min[0], x)
	a.min[1] = min(a.min[1], y)
	a.min[2] = min(a.min[2], z)
	a.max[0] = max(a.max[0], x)
	a.max[1] = max(a.max[1], y)
	a.max[2] = max(a.max[2], z)
}

func (m *meshModel) RecomputeBounds() (Bounds, error) {
	m.mu.Lock()
	pivot := m.pivot
	workers := m.boundsWorkers
	m.mu.Unlock()

	tris := m.mesh.TriangleSlice()
	if len(tris) == 0 {
		return Bounds{}, ErrEmptyMesh
	}

	chunkSize := (len(tris) + workers - 1) / workers
	chunks := (len(tris) + chunkSize - 1) / chunkSize
	accums := make([]boundsAccum, chunks)

	// Fan the per-vertex transform and min/max reduction out over the pool.
	// A WaitGroup gives per-call barrier sync; workers are reused across calls.
	var wg sync.WaitGroup
	for ci := 0; ci < chunks; ci++ {
		lo := ci * chunkSize
		hi := min(lo+chunkSize, len(tris))
		acc := &accums[ci]
		id := ci

		wg.Add(1)
		m.boundsPool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				for _, tri := range tris[lo:hi] {
					for _, c := range tri {
						x, y, z := pivot.Apply(float32(c.X), float32(c.Y), float32(c.Z))
						acc.add(x, y, z)
					}
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	var total boundsAccum
	for i := range accums {
		if !accums[i].valid {
			continue
		}
		total.add(accums[i].min[0], accums[i].min[1], accums[i].min[2])
		total.add(accums[i].max[0], accums[i].max[1], accums[i].max[2])
	}

	center := pivot
	center.Position = [3]float32{
		(total.min[0] + total.max[0]) / 2,
		(total.min[1] + total.max[1]) / 2,
		(total.min[2] + total.max[2]) / 2,
	}
	bounds := Bounds{
		Center: center,
		Extents: [3]float32{
			total.max[0] - total.min[0],
			total.max[1] - total.min[1],
			total.max[2] - total.min[2],
		},
	}

	m.mu.Lock()
	m.bounds = bounds
	m.mu.Unlock()
	return bounds, nil
}
