// Command oxyview opens a window that frames a 3D model and drives the
// camera with drag, scroll-zoom, auto-orbit, and reset controls. The model
// is loaded from an STL file, or generated as a sphere when no file is given.
package main

import (
	"flag"
	"image/color"
	"log"
	"math"
	"os"

	"github.com/Carmen-Shannon/oxy-view/engine/camera"
	"github.com/Carmen-Shannon/oxy-view/engine/model"
	"github.com/Carmen-Shannon/oxy-view/engine/profiler"
	"github.com/Carmen-Shannon/oxy-view/engine/window"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
)

func main() {
	var modelPath string
	var radius float64
	var delta float64
	var width int
	var height int
	var fov float64
	var orbit bool
	var profile bool
	flag.StringVar(&modelPath, "model", "", "STL file to view (defaults to a generated sphere)")
	flag.Float64Var(&radius, "radius", 2.0, "radius of the generated sphere")
	flag.Float64Var(&delta, "delta", 0.1, "marching cubes delta for the generated sphere")
	flag.IntVar(&width, "width", 1280, "window width in pixels")
	flag.IntVar(&height, "height", 720, "window height in pixels")
	flag.Float64Var(&fov, "fov", 70, "vertical field of view in degrees")
	flag.BoolVar(&orbit, "orbit", true, "orbit the camera while idle")
	flag.BoolVar(&profile, "profile", false, "log frame pacing statistics")
	flag.Parse()

	mesh := loadMesh(modelPath, radius, delta)

	surface := window.NewEbitenSurface(
		window.WithTitle("Oxy View"),
		window.WithWidth(width),
		window.WithHeight(height),
	)

	mdl, err := model.NewModel(mesh, model.WithName("viewer"))
	essentials.Must(err)

	vc, err := camera.NewViewController(surface, mdl, camera.WithFovDegrees(float32(fov)))
	essentials.Must(err)
	defer vc.Close()

	essentials.Must(vc.FitModel())
	vc.SetAnimationEnabled(true)
	vc.SetDraggingEnabled(true)
	vc.SetZoomingEnabled(true)
	vc.SetOrbitingEnabled(orbit)

	if profile {
		prof := profiler.NewProfiler()
		profileSub := surface.OnFrame(func(window.FrameEvent) {
			prof.Tick()
		})
		defer profileSub.Release()
	}

	resizeSub := surface.OnResize(func(window.ResizeEvent) {
		if err := vc.Recalibrate(); err != nil {
			log.Println("recalibrate:", err)
		}
	})
	defer resizeSub.Release()

	if drawable, ok := surface.(interface {
		SetDrawCallback(func(*ebiten.Image))
	}); ok {
		drawable.SetDrawCallback(func(screen *ebiten.Image) {
			drawModel(screen, vc)
		})
	}

	log.Println("Starting viewer...")
	essentials.Must(surface.Run())
}

// loadMesh reads an STL file, or builds a sphere with marching cubes when
// no path is given.
func loadMesh(path string, radius, delta float64) *model3d.Mesh {
	if path != "" {
		log.Println("Loading mesh from", path)
		r, err := os.Open(path)
		essentials.Must(err)
		defer r.Close()

		triangles, err := model3d.ReadSTL(r)
		essentials.Must(err)
		return model3d.NewMeshTriangles(triangles)
	}

	log.Println("Generating sphere mesh...")
	solid := model3d.CheckedFuncSolid(
		model3d.XYZ(-radius, -radius, -radius),
		model3d.XYZ(radius, radius, radius),
		func(c model3d.Coord3D) bool {
			return math.Sqrt(c.X*c.X+c.Y*c.Y+c.Z*c.Z) < radius
		},
	)
	return model3d.MarchingCubesSearch(solid, delta, 8)
}

// drawModel plots the model's vertices through the camera's view-projection
// matrix as a point cloud.
func drawModel(screen *ebiten.Image, vc camera.ViewController) {
	screen.Fill(color.RGBA{R: 18, G: 18, B: 24, A: 255})

	bounds := screen.Bounds()
	width := float32(bounds.Dx())
	height := float32(bounds.Dy())

	viewProj := vc.Camera().ViewProjectionMatrix()
	pivot := vc.Model().Pivot()

	for _, tri := range vc.Model().Mesh().TriangleSlice() {
		for _, c := range tri {
			x, y, z := pivot.Apply(float32(c.X), float32(c.Y), float32(c.Z))

			clipX := viewProj[0]*x + viewProj[4]*y + viewProj[8]*z + viewProj[12]
			clipY := viewProj[1]*x + viewProj[5]*y + viewProj[9]*z + viewProj[13]
			clipW := viewProj[3]*x + viewProj[7]*y + viewProj[11]*z + viewProj[15]
			if clipW <= 0 {
				continue
			}

			px := int((clipX/clipW + 1) * 0.5 * width)
			py := int((1 - clipY/clipW) * 0.5 * height)
			screen.Set(px, py, color.White)
		}
	}
}
