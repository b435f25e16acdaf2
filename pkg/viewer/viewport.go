package viewer

import (
	"github.com/google/uuid"
	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/geometry"
	"github.com/philipparndt/gogarment/pkg/scene"
)

// Viewport owns the camera, surface, orbit controls and render loop of one garment.
// Nothing outside the viewport holds references to these resources.
type Viewport struct {
	ID uuid.UUID

	env      Environment
	camera   *Camera
	surface  Surface
	controls *OrbitControls
	scene    *scene.Scene

	frame        FrameID
	framePending bool
	resize       ListenerID
	listening    bool
	attached     bool
	running      bool
	torndown     bool
	frames       int
}

// Pose is a snapshot of the camera state
type Pose struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Aspect   float64
}

// New returns a viewport bound to env that holds no resources yet
func New(env Environment) *Viewport {
	return &Viewport{ID: uuid.New(), env: env}
}

// Mount creates a viewport for g and starts its render loop
func Mount(env Environment, g garment.Geometry) *Viewport {
	v := New(env)
	v.Init(g)
	return v
}

// Init acquires the camera, surface, controls and scene, then schedules the first frame.
// It does nothing on a viewport that was already initialized or torn down.
func (v *Viewport) Init(g garment.Geometry) {
	if v.torndown || v.camera != nil {
		return
	}

	width, height := v.env.Container.Size()

	// a zero-sized container yields NaN or Inf here; not guarded
	v.camera = NewCamera(float64(width) / float64(height))

	v.surface = v.env.Backend.NewSurface(width, height)
	v.env.Container.Attach(v.surface)
	v.attached = true

	v.controls = NewOrbitControls(v.camera, v.surface)
	v.scene = scene.Assemble(g, v.env.Backend)

	v.resize = v.env.Window.AddResizeListener(v.handleResize)
	v.listening = true

	v.running = true
	v.schedule()
}

func (v *Viewport) schedule() {
	v.frame = v.env.Window.RequestFrame(v.tick)
	v.framePending = true
}

// tick is one iteration of the render loop
func (v *Viewport) tick() {
	v.framePending = false
	if !v.running {
		return
	}
	v.schedule()
	v.controls.Update()
	v.surface.Render(v.scene, v.camera)
	v.frames++
}

func (v *Viewport) handleResize() {
	if !v.running {
		return
	}
	width, height := v.env.Container.Size()
	v.camera.Aspect = float64(width) / float64(height)
	v.camera.UpdateProjection()
	v.surface.Resize(width, height)
}

// Teardown stops the render loop and releases every resource, in order:
// pending frame, resize listener, surface attachment, GPU buffers, input bindings.
// It is safe to call more than once and on a viewport that never finished Init.
func (v *Viewport) Teardown() {
	if v.torndown {
		return
	}
	v.torndown = true
	v.running = false

	if v.framePending {
		v.env.Window.CancelFrame(v.frame)
		v.framePending = false
	}
	if v.listening {
		v.env.Window.RemoveResizeListener(v.resize)
		v.listening = false
	}
	if v.attached {
		v.env.Container.Detach(v.surface)
		v.attached = false
	}
	v.scene.Release()
	if v.surface != nil {
		v.surface.Dispose()
	}
	if v.controls != nil {
		v.controls.Dispose()
	}
}

// Running reports whether the render loop is active
func (v *Viewport) Running() bool {
	return v.running
}

// Frames returns the number of rendered frames
func (v *Viewport) Frames() int {
	return v.frames
}

// Controls returns the orbit controls, nil before Init
func (v *Viewport) Controls() *OrbitControls {
	return v.controls
}

// Surface returns the rendering surface, nil before Init
func (v *Viewport) Surface() Surface {
	return v.surface
}

// Pose returns the current camera state; the zero Pose before Init
func (v *Viewport) Pose() Pose {
	if v.camera == nil {
		return Pose{}
	}
	return Pose{Position: v.camera.Position, Target: v.camera.Target, Aspect: v.camera.Aspect}
}
