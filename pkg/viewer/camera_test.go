package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/gogarment/pkg/geometry"
)

func TestNewCamera(t *testing.T) {
	c := NewCamera(16.0 / 9.0)

	expected := geometry.NewVector3(0, 0, 5)
	if c.Position != expected {
		t.Errorf("NewCamera position failed: expected %v, got %v", expected, c.Position)
	}
	if c.FOV != 75 || c.Near != 0.1 || c.Far != 1000 {
		t.Errorf("NewCamera frustum failed: got fov=%v near=%v far=%v", c.FOV, c.Near, c.Far)
	}
	if c.Distance() != 5 {
		t.Errorf("Distance failed: expected 5, got %v", c.Distance())
	}
}

func TestCameraBasis(t *testing.T) {
	c := NewCamera(1)
	forward, right, up := c.Basis()

	tests := []struct {
		name     string
		got      geometry.Vector3
		expected geometry.Vector3
	}{
		{"forward", forward, geometry.NewVector3(0, 0, -1)},
		{"right", right, geometry.NewVector3(1, 0, 0)},
		{"up", up, geometry.NewVector3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Distance(tt.expected) > 1e-10 {
				t.Errorf("Basis %s failed: expected %v, got %v", tt.name, tt.expected, tt.got)
			}
		})
	}
}

func TestCameraProject(t *testing.T) {
	c := NewCamera(2)

	x, y, depth, ok := c.Project(geometry.Vector3{}, 200, 100)
	if !ok {
		t.Fatal("Project of target failed: expected visible point")
	}
	if math.Abs(x-100) > 1e-3 || math.Abs(y-50) > 1e-3 {
		t.Errorf("Project of target failed: expected (100, 50), got (%v, %v)", x, y)
	}
	if math.Abs(depth-5) > 1e-4 {
		t.Errorf("Project depth failed: expected 5, got %v", depth)
	}

	// up is towards the top of the screen
	_, yUp, _, _ := c.Project(geometry.NewVector3(0, 1, 0), 200, 100)
	if yUp >= y {
		t.Errorf("Project orientation failed: expected %v < %v", yUp, y)
	}

	// right is towards the right of the screen
	xRight, _, _, _ := c.Project(geometry.NewVector3(1, 0, 0), 200, 100)
	if xRight <= x {
		t.Errorf("Project orientation failed: expected %v > %v", xRight, x)
	}
}

func TestCameraProjectBehind(t *testing.T) {
	c := NewCamera(1)

	if _, _, _, ok := c.Project(geometry.NewVector3(0, 0, 10), 100, 100); ok {
		t.Error("Project behind camera failed: expected ok=false")
	}
}

func TestCameraProjectionAspect(t *testing.T) {
	c := NewCamera(1)
	before := c.Projection()

	c.Aspect = 2
	if c.Projection() != before {
		t.Error("Projection changed before UpdateProjection")
	}

	c.UpdateProjection()
	if c.Projection() == before {
		t.Error("UpdateProjection failed: projection unchanged")
	}

	// horizontal scale is the vertical one divided by the aspect ratio
	p := c.Projection()
	if math.Abs(float64(p.At(0, 0))*2-float64(p.At(1, 1))) > 1e-5 {
		t.Errorf("UpdateProjection aspect failed: got %v and %v", p.At(0, 0), p.At(1, 1))
	}
}

func TestInFront(t *testing.T) {
	eye := geometry.NewVector3(0, 0, 5)
	target := geometry.Vector3{}

	tests := []struct {
		name     string
		point    geometry.Vector3
		expected bool
	}{
		{"target", target, true},
		{"between eye and target", geometry.NewVector3(0.2, 0, 2), true},
		{"off axis", geometry.NewVector3(3, 1, 4.5), true},
		{"behind eye", geometry.NewVector3(0, 0, 6), false},
		{"beside eye", geometry.NewVector3(1, 0, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InFront(eye, target, tt.point); got != tt.expected {
				t.Errorf("InFront %s failed: expected %v, got %v", tt.name, tt.expected, got)
			}
		})
	}
}
