package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/gogarment/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubElement struct {
	InputBindings
	width, height int
}

func (e *stubElement) Size() (int, int) {
	return e.width, e.height
}

func newTestControls() (*OrbitControls, *Camera, *stubElement) {
	el := &stubElement{width: 400, height: 400}
	cam := NewCamera(1)
	return NewOrbitControls(cam, el), cam, el
}

func settle(c *OrbitControls, steps int) {
	for i := 0; i < steps; i++ {
		c.Update()
	}
}

func TestOrbitControlsDefaults(t *testing.T) {
	c, _, el := newTestControls()

	assert.True(t, c.EnableDamping)
	assert.Equal(t, 0.05, c.DampingFactor)
	assert.Equal(t, 1, el.Len(), "controls bind to the element on construction")
}

func TestOrbitControlsIdleUpdate(t *testing.T) {
	c, cam, _ := newTestControls()

	assert.False(t, c.Update())
	assert.InDelta(t, 0, cam.Position.Distance(geometry.NewVector3(0, 0, 5)), 1e-9)
}

func TestOrbitControlsDampedRotation(t *testing.T) {
	c, cam, _ := newTestControls()

	// a quarter of the element height turns by a quarter circle
	c.Rotate(100, 0)

	require.True(t, c.Update())
	firstStep := math.Atan2(cam.Position.X, cam.Position.Z)
	assert.InDelta(t, -math.Pi/2*0.05, firstStep, 1e-9, "first step applies the damping factor")

	settle(c, 1000)
	assert.InDelta(t, -5, cam.Position.X, 1e-6)
	assert.InDelta(t, 0, cam.Position.Z, 1e-6)
	assert.InDelta(t, 5, cam.Distance(), 1e-9, "rotation keeps the distance")
	assert.False(t, c.Update(), "motion settles")
}

func TestOrbitControlsPolarClamp(t *testing.T) {
	c, cam, _ := newTestControls()

	c.EnableDamping = false
	c.Rotate(0, 10000)
	c.Update()

	assert.Greater(t, cam.Position.Y, 4.99)
	assert.InDelta(t, 5, cam.Distance(), 1e-9)
}

func TestOrbitControlsWheel(t *testing.T) {
	c, cam, _ := newTestControls()

	c.Wheel(-1)
	c.Update()
	assert.InDelta(t, 4.75, cam.Distance(), 1e-9)

	c.Wheel(1)
	c.Update()
	assert.InDelta(t, 5, cam.Distance(), 1e-9)

	c.Wheel(0)
	assert.False(t, c.Update())
}

func TestOrbitControlsZoomStopsAtMinDistance(t *testing.T) {
	c, cam, _ := newTestControls()

	for i := 0; i < 500; i++ {
		c.Wheel(-1)
		c.Update()
	}

	assert.InDelta(t, DefaultNear, cam.Distance(), 1e-9)
	assert.Greater(t, cam.Position.Z, cam.Target.Z, "camera stays in front of the target")
}

func TestOrbitControlsPan(t *testing.T) {
	c, cam, _ := newTestControls()
	c.EnableDamping = false

	c.Pan(40, 0)
	c.Update()

	expected := -2 * 40 * 5 * math.Tan(75.0/2*math.Pi/180) / 400
	assert.InDelta(t, expected, cam.Target.X, 1e-9)
	assert.InDelta(t, expected, cam.Position.X, 1e-9, "pan moves camera and target together")
	assert.InDelta(t, 5, cam.Distance(), 1e-9)
}

func TestOrbitControlsPointerGestures(t *testing.T) {
	c, cam, el := newTestControls()
	c.EnableDamping = false

	el.PointerDown(PrimaryButton, 10, 10)
	el.PointerMove(110, 10)
	el.PointerUp(PrimaryButton)
	c.Update()
	assert.InDelta(t, -5, cam.Position.X, 1e-6)

	// moves without a pressed button do nothing
	el.PointerMove(300, 300)
	assert.False(t, c.Update())

	el.PointerDown(SecondaryButton, 0, 0)
	el.PointerMove(0, 20)
	el.PointerUp(SecondaryButton)
	c.Update()
	assert.Greater(t, cam.Target.Y, 0.0)
}

func TestOrbitControlsDispose(t *testing.T) {
	c, _, el := newTestControls()

	c.Dispose()
	assert.Equal(t, 0, el.Len())

	assert.NotPanics(t, c.Dispose)
	assert.Equal(t, 0, el.Len())
}
