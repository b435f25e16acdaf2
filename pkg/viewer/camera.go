package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/gogarment/pkg/geometry"
)

// Fixed perspective parameters
const (
	DefaultFOV  = 75.0 // vertical field of view in degrees
	DefaultNear = 0.1
	DefaultFar  = 1000.0
)

// DefaultDistance is the initial distance between camera and target
const DefaultDistance = 5.0

// Camera represents a perspective camera looking at Target
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // Field of view in degrees
	Aspect   float64
	Near     float64
	Far      float64

	projection mgl32.Mat4
}

// NewCamera creates a camera on the +Z axis looking at the origin
func NewCamera(aspect float64) *Camera {
	c := &Camera{
		Position: geometry.NewVector3(0, 0, DefaultDistance),
		Target:   geometry.Vector3{},
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      DefaultFOV,
		Aspect:   aspect,
		Near:     DefaultNear,
		Far:      DefaultFar,
	}
	c.UpdateProjection()
	return c
}

// UpdateProjection recomputes the projection matrix after FOV, Aspect, Near or Far changed
func (c *Camera) UpdateProjection() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(float32(c.FOV)), float32(c.Aspect), float32(c.Near), float32(c.Far))
}

// Projection returns the cached projection matrix
func (c *Camera) Projection() mgl32.Mat4 {
	return c.projection
}

// View returns the world-to-camera matrix
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(vec3(c.Position), vec3(c.Target), vec3(c.Up))
}

// Distance returns the distance between camera and target
func (c *Camera) Distance() float64 {
	return c.Position.Distance(c.Target)
}

// Basis returns the camera's forward, right and up unit vectors
func (c *Camera) Basis() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// InFront reports whether point lies in front of a camera at eye looking at target
func InFront(eye, target, point geometry.Vector3) bool {
	return point.Sub(eye).Dot(target.Sub(eye)) > 0
}

// Project projects a world point to screen coordinates (origin top-left).
// depth is the distance along the view direction; ok is false behind the camera.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (x, y, depth float64, ok bool) {
	clip := c.projection.Mul4(c.View()).Mul4x1(mgl32.Vec4{float32(point.X), float32(point.Y), float32(point.Z), 1})
	w := float64(clip.W())
	if w <= c.Near || math.IsNaN(w) {
		return 0, 0, w, false
	}

	ndcX := float64(clip.X()) / w
	ndcY := float64(clip.Y()) / w

	x = (ndcX + 1) / 2 * width
	y = (1 - ndcY) / 2 * height
	return x, y, w, true
}

func vec3(v geometry.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
