package scene

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/geometry"
)

// Assemble builds the scene graph for a garment and uploads every node through alloc.
// The returned scene owns the buffers; callers must Release it.
func Assemble(g garment.Geometry, alloc Allocator) *Scene {
	s := &Scene{
		Background: Background,
		Lights:     DefaultLights(),
		Root:       &Group{},
	}

	s.Root.Add(panelNode("body", g.Body))
	for i, sleeve := range g.Sleeves {
		s.Root.Add(panelNode(fmt.Sprintf("sleeve-%s", garment.Side(i)), sleeve))
	}
	s.Root.Add(&Node{
		Name:      "neck",
		Kind:      MeshNode,
		Color:     GarmentColor,
		Triangles: g.Neck.Mesh(),
		Position:  g.Neck.Position,
	})
	for _, line := range g.Lines {
		s.Root.Add(&Node{
			Name:   line.Kind.String() + "-line",
			Kind:   LineNode,
			Color:  LineColor,
			Points: []geometry.Vector3{line.Start, line.End},
			Label:  lineLabel(line),
		})
	}

	for _, n := range s.Root.Children {
		switch n.Kind {
		case MeshNode:
			n.Buffer = alloc.UploadMesh(n.WorldTriangles(), n.Color, s.Lights)
		case LineNode:
			n.Buffer = alloc.UploadLines(n.Points, n.Color)
		}
	}

	return s
}

func panelNode(name string, p garment.Panel) *Node {
	return &Node{
		Name:      name,
		Kind:      MeshNode,
		Color:     GarmentColor,
		Triangles: p.Mesh(),
		Position:  p.Position,
		RotationZ: p.RotationZ,
	}
}

// WorldTriangles returns the node's triangles in scene space
func (n *Node) WorldTriangles() []geometry.Triangle {
	out := make([]geometry.Triangle, len(n.Triangles))
	for i, t := range n.Triangles {
		out[i] = geometry.NewFacet(n.ToWorld(t.V1), n.ToWorld(t.V2), n.ToWorld(t.V3))
	}
	return out
}

func lineLabel(l garment.Line) string {
	name := l.Kind.String()
	return fmt.Sprintf("%s%s %.1f cm", strings.ToUpper(name[:1]), name[1:], l.Centimeters)
}
