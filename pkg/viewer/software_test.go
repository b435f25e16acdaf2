package viewer

import (
	"image/color"
	"testing"

	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/geometry"
	"github.com/philipparndt/gogarment/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoftwareSurfaceRender(t *testing.T) {
	off := NewOffscreen(200, 200)
	v := Mount(off.Env(), garment.Build(sample))
	off.RunFrames(1)

	surface := off.Attached()[0].(*SoftwareSurface)
	img := surface.Image()

	assert.Equal(t, scene.Background, img.RGBAAt(0, 0), "corner shows the background")

	// middle of the body, below the neck
	cam := NewCamera(1)
	x, y, _, ok := cam.Project(geometry.NewVector3(0.15, -0.5, 0), 200, 200)
	require.True(t, ok)

	got := img.RGBAAt(int(x), int(y))
	assert.NotEqual(t, scene.Background, got)
	assert.Equal(t, scene.Apply(scene.GarmentColor, 0.5), got, "front faces get only the ambient term")

	v.Teardown()
}

func TestSoftwareSurfaceDrawsLines(t *testing.T) {
	off := NewOffscreen(300, 300)
	Mount(off.Env(), garment.Build(sample))
	off.RunFrames(1)

	img := off.Attached()[0].(*SoftwareSurface).Image()

	// length line right of the body
	cam := NewCamera(1)
	x, y, _, ok := cam.Project(geometry.NewVector3(0.30, -0.2, 0.02), 300, 300)
	require.True(t, ok)

	found := false
	for dx := -1; dx <= 1; dx++ {
		if img.RGBAAt(int(x)+dx, int(y)) == scene.LineColor {
			found = true
		}
	}
	assert.True(t, found, "length line is drawn in black")
}

func TestSoftwareBackendBuffers(t *testing.T) {
	b := NewSoftwareBackend()
	tri := geometry.NewFacet(
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	)

	mesh := b.UploadMesh([]geometry.Triangle{tri}, color.RGBA{200, 100, 50, 255}, scene.DefaultLights())
	lines := b.UploadLines([]geometry.Vector3{{}, {X: 1}}, scene.LineColor)
	assert.Equal(t, 2, b.LiveBuffers())

	lit := mesh.(*meshBuffer).triangles[0].Col
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, lit)

	mesh.Release()
	mesh.Release()
	lines.Release()
	assert.Equal(t, 0, b.LiveBuffers())
}

func TestSoftwareSurfaceDispose(t *testing.T) {
	b := NewSoftwareBackend()
	s := b.NewSurface(10, 10).(*SoftwareSurface)
	assert.Equal(t, 1, b.LiveSurfaces())

	s.Dispose()
	s.Dispose()
	assert.True(t, s.Disposed())
	assert.Equal(t, 0, b.LiveSurfaces())

	s.Render(&scene.Scene{Root: &scene.Group{}}, NewCamera(1))
	assert.Equal(t, 0, s.Renders())
}

func TestSoftwareSurfaceSkipsReleasedScene(t *testing.T) {
	b := NewSoftwareBackend()
	s := b.NewSurface(10, 10).(*SoftwareSurface)
	sc := scene.Assemble(garment.Build(sample), b)
	sc.Release()

	s.Render(sc, NewCamera(1))
	assert.Equal(t, 0, s.Renders())
}

func TestFrameQueue(t *testing.T) {
	var q FrameQueue
	var order []int

	q.Request(func() { order = append(order, 1) })
	second := q.Request(func() { order = append(order, 2) })
	q.Request(func() {
		order = append(order, 3)
		q.Request(func() { order = append(order, 4) })
	})
	q.Cancel(second)

	assert.Equal(t, 2, q.Run())
	assert.Equal(t, []int{1, 3}, order)
	assert.Equal(t, 1, q.Len(), "callbacks requested while running wait")

	q.Run()
	assert.Equal(t, []int{1, 3, 4}, order)
}

func TestResizeListeners(t *testing.T) {
	var r ResizeListeners
	calls := 0

	id := r.Add(func() { calls++ })
	r.Fire()
	r.Remove(id)
	r.Remove(id)
	r.Fire()

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, r.Len())
}
