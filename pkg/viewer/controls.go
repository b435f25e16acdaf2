package viewer

import (
	"math"

	"github.com/philipparndt/gogarment/pkg/geometry"
)

// Button identifies a pointer button
type Button int

const (
	PrimaryButton Button = iota
	SecondaryButton
	MiddleButton
)

// PointerHandler receives pointer input in surface pixel coordinates
type PointerHandler interface {
	PointerDown(button Button, x, y float64)
	PointerMove(x, y float64)
	PointerUp(button Button)
	Wheel(deltaY float64)
}

// InputSource delivers pointer events to bound handlers
type InputSource interface {
	// Bind registers h and returns a function that unregisters it
	Bind(h PointerHandler) (unbind func())
}

// Element is an input source with a pixel size, such as a rendering surface
type Element interface {
	InputSource
	Size() (width, height int)
}

// Orbit control defaults
const (
	DefaultDampingFactor = 0.05
	minPolarAngle        = 1e-6
	changeEpsilon        = 1e-6
)

type controlState int

const (
	stateNone controlState = iota
	stateRotate
	statePan
)

// OrbitControls rotates, pans and zooms a camera around its target.
// Primary drag rotates, secondary (or middle) drag pans, the wheel zooms.
type OrbitControls struct {
	EnableDamping bool
	DampingFactor float64
	RotateSpeed   float64
	PanSpeed      float64
	ZoomSpeed     float64
	MinDistance   float64
	MaxDistance   float64

	camera  *Camera
	element Element
	unbind  func()

	state      controlState
	lastX      float64
	lastY      float64
	deltaTheta float64
	deltaPhi   float64
	panOffset  geometry.Vector3
	scale      float64
	disposed   bool
}

// NewOrbitControls binds controls for camera to the element's input events
func NewOrbitControls(camera *Camera, element Element) *OrbitControls {
	c := &OrbitControls{
		EnableDamping: true,
		DampingFactor: DefaultDampingFactor,
		RotateSpeed:   1,
		PanSpeed:      1,
		ZoomSpeed:     1,
		MinDistance:   DefaultNear,
		MaxDistance:   math.Inf(1),
		camera:        camera,
		element:       element,
		scale:         1,
	}
	c.unbind = element.Bind(c)
	return c
}

// PointerDown starts a rotate or pan gesture
func (c *OrbitControls) PointerDown(button Button, x, y float64) {
	switch button {
	case PrimaryButton:
		c.state = stateRotate
	case SecondaryButton, MiddleButton:
		c.state = statePan
	default:
		return
	}
	c.lastX, c.lastY = x, y
}

// PointerMove continues the active gesture
func (c *OrbitControls) PointerMove(x, y float64) {
	dx, dy := x-c.lastX, y-c.lastY
	c.lastX, c.lastY = x, y

	switch c.state {
	case stateRotate:
		c.Rotate(dx, dy)
	case statePan:
		c.Pan(dx, dy)
	}
}

// PointerUp ends the active gesture
func (c *OrbitControls) PointerUp(Button) {
	c.state = stateNone
}

// Wheel zooms in for negative deltas and out for positive ones
func (c *OrbitControls) Wheel(deltaY float64) {
	zoomScale := math.Pow(0.95, c.ZoomSpeed)
	switch {
	case deltaY < 0:
		c.scale *= zoomScale
	case deltaY > 0:
		c.scale /= zoomScale
	}
}

// Rotate queues a rotation for a pointer movement of dx, dy pixels
func (c *OrbitControls) Rotate(dx, dy float64) {
	height := c.elementHeight()
	c.RotateLeft(2 * math.Pi * dx * c.RotateSpeed / height)
	c.RotateUp(2 * math.Pi * dy * c.RotateSpeed / height)
}

// RotateLeft queues an azimuthal rotation in radians
func (c *OrbitControls) RotateLeft(angle float64) {
	c.deltaTheta -= angle
}

// RotateUp queues a polar rotation in radians
func (c *OrbitControls) RotateUp(angle float64) {
	c.deltaPhi -= angle
}

// Pan queues a target translation for a pointer movement of dx, dy pixels
func (c *OrbitControls) Pan(dx, dy float64) {
	height := c.elementHeight()
	_, right, up := c.camera.Basis()

	// scale so the point under the pointer follows it at the target's depth
	targetDistance := c.camera.Distance() * math.Tan(c.camera.FOV/2*math.Pi/180)
	moveRight := -2 * dx * targetDistance / height * c.PanSpeed
	moveUp := 2 * dy * targetDistance / height * c.PanSpeed

	c.panOffset = c.panOffset.Add(right.Mul(moveRight)).Add(up.Mul(moveUp))
}

// Update applies one step of the pending motion to the camera.
// With damping enabled the remaining motion decays by DampingFactor per call.
// It reports whether the camera moved.
func (c *OrbitControls) Update() bool {
	offset := c.camera.Position.Sub(c.camera.Target)
	radius := offset.Length()
	theta := math.Atan2(offset.X, offset.Z)
	phi := 0.0
	if radius > 0 {
		phi = math.Acos(math.Max(-1, math.Min(1, offset.Y/radius)))
	}

	step := 1.0
	if c.EnableDamping {
		step = c.DampingFactor
	}

	theta += c.deltaTheta * step
	phi += c.deltaPhi * step
	phi = math.Max(minPolarAngle, math.Min(math.Pi-minPolarAngle, phi))

	radius *= c.scale
	radius = math.Max(c.MinDistance, math.Min(c.MaxDistance, radius))

	target := c.camera.Target.Add(c.panOffset.Mul(step))

	sinPhi := math.Sin(phi)
	newOffset := geometry.NewVector3(
		radius*sinPhi*math.Sin(theta),
		radius*math.Cos(phi),
		radius*sinPhi*math.Cos(theta),
	)
	position := target.Add(newOffset)

	if c.EnableDamping {
		c.deltaTheta *= 1 - c.DampingFactor
		c.deltaPhi *= 1 - c.DampingFactor
		c.panOffset = c.panOffset.Mul(1 - c.DampingFactor)
	} else {
		c.deltaTheta, c.deltaPhi = 0, 0
		c.panOffset = geometry.Vector3{}
	}
	c.scale = 1

	moved := position.Distance(c.camera.Position) > changeEpsilon || target.Distance(c.camera.Target) > changeEpsilon
	c.camera.Position = position
	c.camera.Target = target
	return moved
}

// Dispose detaches the controls from the element's input. Calling it again is a no-op.
func (c *OrbitControls) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.state = stateNone
	if c.unbind != nil {
		c.unbind()
		c.unbind = nil
	}
}

func (c *OrbitControls) elementHeight() float64 {
	_, height := c.element.Size()
	if height <= 0 {
		return 1
	}
	return float64(height)
}
