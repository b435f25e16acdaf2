package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogarment/pkg/geometry"
	"github.com/philipparndt/gogarment/pkg/scene"
	"github.com/philipparndt/gogarment/pkg/viewer"
)

// raylibBackend uploads scene nodes to the GPU and creates window surfaces
type raylibBackend struct {
	view     *ViewSettings
	material rl.Material
}

// meshBuffer is an uploaded mesh plus its deduplicated edges for wireframe drawing
type meshBuffer struct {
	mesh     rl.Mesh
	edges    [][2]rl.Vector3
	released bool
}

func (m *meshBuffer) Release() {
	if m.released {
		return
	}
	m.released = true
	rl.UnloadMesh(&m.mesh)
}

type lineBuffer struct {
	points []rl.Vector3
	col    rl.Color
}

func (l *lineBuffer) Release() {
	l.points = nil
}

func toRaylibVector(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// UploadMesh converts triangles to a raylib mesh with lighting baked into vertex colors
func (b *raylibBackend) UploadMesh(triangles []geometry.Triangle, col color.RGBA, lights scene.Lights) scene.Buffer {
	triangleCount := len(triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	idx := 0
	for _, triangle := range triangles {
		normal := triangle.Normal
		lit := scene.Apply(col, lights.Shade(normal))

		for _, v := range triangle.Vertices() {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			colors[idx*4+0] = lit.R
			colors[idx*4+1] = lit.G
			colors[idx*4+2] = lit.B
			colors[idx*4+3] = lit.A
			idx++
		}
	}

	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Texcoords = &texcoords[0]
		mesh.Colors = &colors[0]
	}

	rl.UploadMesh(&mesh, false)

	return &meshBuffer{mesh: mesh, edges: uniqueEdges(triangles)}
}

// UploadLines keeps the points on the CPU; raylib draws 3D lines in immediate mode
func (b *raylibBackend) UploadLines(points []geometry.Vector3, col color.RGBA) scene.Buffer {
	buf := &lineBuffer{points: make([]rl.Vector3, len(points)), col: col}
	for i, p := range points {
		buf.points[i] = toRaylibVector(p)
	}
	return buf
}

// NewSurface creates a surface covering the window
func (b *raylibBackend) NewSurface(width, height int) viewer.Surface {
	return &raylibSurface{backend: b, width: width, height: height}
}

// raylibSurface draws into the current raylib frame.
// It remembers the last scene and camera so labels can be placed after the 3D pass.
type raylibSurface struct {
	viewer.InputBindings

	backend  *raylibBackend
	width    int
	height   int
	scene    *scene.Scene
	camera   rl.Camera3D
	disposed bool
}

func (s *raylibSurface) Size() (int, int) {
	return s.width, s.height
}

func (s *raylibSurface) Resize(width, height int) {
	s.width, s.height = width, height
}

func (s *raylibSurface) Render(sc *scene.Scene, camera *viewer.Camera) {
	if s.disposed || sc == nil || sc.Released() {
		return
	}
	s.scene = sc
	s.camera = toRaylibCamera(camera)
	view := s.backend.view

	rl.BeginMode3D(s.camera)
	for _, n := range sc.Root.Children {
		switch buf := n.Buffer.(type) {
		case *meshBuffer:
			if view.showFilled {
				rl.DrawMesh(buf.mesh, s.backend.material, rl.MatrixIdentity())
			}
			if view.showWireframe {
				drawWireframe(buf)
			}
		case *lineBuffer:
			for i := 1; i < len(buf.points); i++ {
				rl.DrawLine3D(buf.points[i-1], buf.points[i], buf.col)
			}
		}
	}
	rl.EndMode3D()
}

func (s *raylibSurface) Dispose() {
	s.disposed = true
	s.scene = nil
}

// lastFrame returns the scene and camera of the most recent render
func (s *raylibSurface) lastFrame() (*scene.Scene, rl.Camera3D, bool) {
	if s.disposed || s.scene == nil || s.scene.Released() {
		return nil, rl.Camera3D{}, false
	}
	return s.scene, s.camera, true
}
