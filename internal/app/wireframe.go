package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogarment/pkg/geometry"
)

var wireframeColor = rl.NewColor(40, 40, 40, 160)

// uniqueEdges returns every triangle edge once, regardless of direction
func uniqueEdges(triangles []geometry.Triangle) [][2]rl.Vector3 {
	seen := make(map[[2]geometry.Vector3]bool)
	edges := make([][2]rl.Vector3, 0, len(triangles)*3/2)

	for _, triangle := range triangles {
		v := triangle.Vertices()
		for i := 0; i < 3; i++ {
			a, b := v[i], v[(i+1)%3]
			if seen[[2]geometry.Vector3{a, b}] || seen[[2]geometry.Vector3{b, a}] {
				continue
			}
			seen[[2]geometry.Vector3{a, b}] = true
			edges = append(edges, [2]rl.Vector3{toRaylibVector(a), toRaylibVector(b)})
		}
	}
	return edges
}

// drawWireframe draws the edges of an uploaded mesh; must be called inside BeginMode3D
func drawWireframe(buf *meshBuffer) {
	for _, edge := range buf.edges {
		rl.DrawLine3D(edge[0], edge[1], wireframeColor)
	}
}
