package viewer

import (
	"image"
	"image/color"
	"sync/atomic"

	"github.com/philipparndt/gogarment/pkg/geometry"
	"github.com/philipparndt/gogarment/pkg/scene"
)

// SoftwareBackend rasterizes scenes on the CPU. Buffers hold pre-lit geometry.
type SoftwareBackend struct {
	live     atomic.Int64
	surfaces atomic.Int64
}

// NewSoftwareBackend creates a CPU backend
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// LiveBuffers returns the number of buffers that were uploaded and not yet released
func (b *SoftwareBackend) LiveBuffers() int {
	return int(b.live.Load())
}

// LiveSurfaces returns the number of surfaces that were created and not yet disposed
func (b *SoftwareBackend) LiveSurfaces() int {
	return int(b.surfaces.Load())
}

type litTriangle struct {
	V   [3]geometry.Vector3
	Col color.RGBA
}

type meshBuffer struct {
	owner     *SoftwareBackend
	triangles []litTriangle
	released  bool
}

func (m *meshBuffer) Release() {
	if m.released {
		return
	}
	m.released = true
	m.triangles = nil
	m.owner.live.Add(-1)
}

type lineBuffer struct {
	owner    *SoftwareBackend
	points   []geometry.Vector3
	col      color.RGBA
	released bool
}

func (l *lineBuffer) Release() {
	if l.released {
		return
	}
	l.released = true
	l.points = nil
	l.owner.live.Add(-1)
}

// UploadMesh shades each triangle once with the scene lights
func (b *SoftwareBackend) UploadMesh(triangles []geometry.Triangle, col color.RGBA, lights scene.Lights) scene.Buffer {
	buf := &meshBuffer{owner: b, triangles: make([]litTriangle, len(triangles))}
	for i, t := range triangles {
		buf.triangles[i] = litTriangle{
			V:   [3]geometry.Vector3{t.V1, t.V2, t.V3},
			Col: scene.Apply(col, lights.Shade(t.Normal)),
		}
	}
	b.live.Add(1)
	return buf
}

// UploadLines stores a line strip
func (b *SoftwareBackend) UploadLines(points []geometry.Vector3, col color.RGBA) scene.Buffer {
	buf := &lineBuffer{owner: b, points: append([]geometry.Vector3(nil), points...), col: col}
	b.live.Add(1)
	return buf
}

// NewSurface creates an image surface of the given pixel size
func (b *SoftwareBackend) NewSurface(width, height int) Surface {
	b.surfaces.Add(1)
	return &SoftwareSurface{owner: b, target: newDepthTarget(max(width, 1), max(height, 1))}
}

// SoftwareSurface renders into an RGBA image and dispatches pointer input to bound handlers
type SoftwareSurface struct {
	InputBindings

	owner    *SoftwareBackend
	target   *depthTarget
	disposed bool
	renders  int
}

// Size returns the image size in pixels
func (s *SoftwareSurface) Size() (width, height int) {
	return s.target.width, s.target.height
}

// Resize reallocates the image; the content is lost until the next Render
func (s *SoftwareSurface) Resize(width, height int) {
	if s.disposed {
		return
	}
	s.target = newDepthTarget(max(width, 1), max(height, 1))
}

// Render draws every node of sc as seen from camera
func (s *SoftwareSurface) Render(sc *scene.Scene, camera *Camera) {
	if s.disposed || sc == nil || sc.Released() {
		return
	}
	t := s.target
	t.clear(sc.Background)

	w, h := float64(t.width), float64(t.height)
	project := func(p geometry.Vector3) (screenVertex, bool) {
		x, y, z, ok := camera.Project(p, w, h)
		return screenVertex{X: x, Y: y, Z: z}, ok
	}

	for _, n := range sc.Root.Children {
		switch buf := n.Buffer.(type) {
		case *meshBuffer:
			for _, tri := range buf.triangles {
				a, okA := project(tri.V[0])
				b, okB := project(tri.V[1])
				c, okC := project(tri.V[2])
				if okA && okB && okC {
					t.fillTriangle(a, b, c, tri.Col)
				}
			}
		case *lineBuffer:
			for i := 1; i < len(buf.points); i++ {
				a, okA := project(buf.points[i-1])
				b, okB := project(buf.points[i])
				if okA && okB {
					t.drawLine(a, b, buf.col)
				}
			}
		}
	}
	s.renders++
}

// Image returns the last rendered frame
func (s *SoftwareSurface) Image() *image.RGBA {
	return s.target.img
}

// Renders returns how many frames were drawn
func (s *SoftwareSurface) Renders() int {
	return s.renders
}

// Disposed reports whether Dispose was called
func (s *SoftwareSurface) Disposed() bool {
	return s.disposed
}

// Dispose frees the image. Calling it again is a no-op.
func (s *SoftwareSurface) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.owner.surfaces.Add(-1)
}
