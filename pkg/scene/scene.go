// Package scene assembles renderable nodes and lights from garment geometry.
package scene

import (
	"image/color"
	"math"

	"github.com/philipparndt/gogarment/pkg/geometry"
)

var (
	Background   = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	GarmentColor = color.RGBA{0x34, 0x98, 0xdb, 0xff}
	LineColor    = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// Light intensities shared by every scene
const (
	AmbientIntensity     = 0.5
	DirectionalIntensity = 0.5
)

// Buffer is a GPU resident resource owned by whoever holds the scene
type Buffer interface {
	Release()
}

// Allocator uploads node data to the GPU
type Allocator interface {
	UploadMesh(triangles []geometry.Triangle, col color.RGBA, lights Lights) Buffer
	UploadLines(points []geometry.Vector3, col color.RGBA) Buffer
}

// Kind distinguishes surface nodes from line nodes
type Kind int

const (
	MeshNode Kind = iota
	LineNode
)

// Node is one renderable part of the garment
type Node struct {
	Name      string
	Kind      Kind
	Color     color.RGBA
	Triangles []geometry.Triangle // local frame, MeshNode only
	Points    []geometry.Vector3  // scene space, LineNode only
	Label     string              // annotation text, LineNode only
	Position  geometry.Vector3
	RotationZ float64
	Buffer    Buffer
}

// ToWorld maps a point from the node's local frame into scene space
func (n *Node) ToWorld(v geometry.Vector3) geometry.Vector3 {
	return v.RotateZ(n.RotationZ).Add(n.Position)
}

// Group holds the nodes that are added to and removed from a scene together
type Group struct {
	Children []*Node
}

// Add appends a node to the group
func (g *Group) Add(n *Node) {
	g.Children = append(g.Children, n)
}

// Find returns the first node with the given name
func (g *Group) Find(name string) *Node {
	for _, n := range g.Children {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// Count returns the number of nodes of a kind
func (g *Group) Count(kind Kind) int {
	count := 0
	for _, n := range g.Children {
		if n.Kind == kind {
			count++
		}
	}
	return count
}

// AmbientLight lights every surface uniformly
type AmbientLight struct {
	Color     color.RGBA
	Intensity float64
}

// DirectionalLight shines from Position towards the origin
type DirectionalLight struct {
	Color     color.RGBA
	Intensity float64
	Position  geometry.Vector3
}

// Direction returns the unit vector the light travels along
func (l DirectionalLight) Direction() geometry.Vector3 {
	return l.Position.Mul(-1).Normalize()
}

// Lights is the fixed lighting rig of a scene
type Lights struct {
	Ambient     AmbientLight
	Directional DirectionalLight
}

// DefaultLights returns the uniform fill plus overhead key light
func DefaultLights() Lights {
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	return Lights{
		Ambient: AmbientLight{Color: white, Intensity: AmbientIntensity},
		Directional: DirectionalLight{
			Color:     white,
			Intensity: DirectionalIntensity,
			Position:  geometry.NewVector3(0, 1, 0),
		},
	}
}

// Shade returns the flat lighting factor for a world space face normal.
// Faces are lit from both sides since the panels are thin.
func (l Lights) Shade(normal geometry.Vector3) float64 {
	diffuse := math.Abs(normal.Normalize().Dot(l.Directional.Direction()))
	return l.Ambient.Intensity + diffuse*l.Directional.Intensity
}

// Apply multiplies a color by a lighting factor, clamped to the valid range
func Apply(col color.RGBA, factor float64) color.RGBA {
	scale := func(c uint8) uint8 {
		v := float64(c) * factor
		if v > 255 {
			return 255
		}
		if v < 0 {
			return 0
		}
		return uint8(v)
	}
	return color.RGBA{scale(col.R), scale(col.G), scale(col.B), col.A}
}

// Scene is the render-ready graph for one garment
type Scene struct {
	Background color.RGBA
	Lights     Lights
	Root       *Group
	released   bool
}

// Release frees every GPU buffer of the scene. Calling it again is a no-op.
func (s *Scene) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	for _, n := range s.Root.Children {
		if n.Buffer != nil {
			n.Buffer.Release()
			n.Buffer = nil
		}
	}
}

// Released reports whether the scene's buffers were freed
func (s *Scene) Released() bool {
	return s.released
}
