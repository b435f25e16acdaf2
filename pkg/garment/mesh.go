package garment

import (
	"math"

	"github.com/philipparndt/gogarment/pkg/geometry"
)

// boxFaces lists the corner signs of each box face, counter-clockwise seen from outside
var boxFaces = [6][4][3]float64{
	{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},     // front
	{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}, // back
	{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},     // right
	{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}, // left
	{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},     // top
	{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}, // bottom
}

// Mesh returns the panel's triangles in its local frame (centered, unrotated)
func (p Panel) Mesh() []geometry.Triangle {
	hx, hy, hz := p.Width/2, p.Height/2, p.Thickness/2
	triangles := make([]geometry.Triangle, 0, 12)
	for _, face := range boxFaces {
		var quad [4]geometry.Vector3
		for i, s := range face {
			quad[i] = geometry.NewVector3(s[0]*hx, s[1]*hy, s[2]*hz)
		}
		triangles = append(triangles,
			geometry.NewFacet(quad[0], quad[1], quad[2]),
			geometry.NewFacet(quad[0], quad[2], quad[3]),
		)
	}
	return triangles
}

// ToWorld maps a point from the panel's local frame into scene space
func (p Panel) ToWorld(v geometry.Vector3) geometry.Vector3 {
	return v.RotateZ(p.RotationZ).Add(p.Position)
}

// Triangles returns the panel's triangles in scene space
func (p Panel) Triangles() []geometry.Triangle {
	local := p.Mesh()
	for i, t := range local {
		local[i] = geometry.NewFacet(p.ToWorld(t.V1), p.ToWorld(t.V2), p.ToWorld(t.V3))
	}
	return local
}

// Mesh returns the disk as a triangle fan in its local frame
func (d Disk) Mesh() []geometry.Triangle {
	segments := d.Segments
	if segments < 3 {
		segments = 3
	}
	center := geometry.Vector3{}
	triangles := make([]geometry.Triangle, 0, segments)
	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(segments)
		a1 := 2 * math.Pi * float64(i+1) / float64(segments)
		p0 := geometry.NewVector3(d.Radius*math.Cos(a0), d.Radius*math.Sin(a0), 0)
		p1 := geometry.NewVector3(d.Radius*math.Cos(a1), d.Radius*math.Sin(a1), 0)
		triangles = append(triangles, geometry.NewTriangle(geometry.NewVector3(0, 0, 1), center, p0, p1))
	}
	return triangles
}

// Triangles returns the disk's triangles in scene space
func (d Disk) Triangles() []geometry.Triangle {
	local := d.Mesh()
	for i, t := range local {
		local[i] = geometry.NewTriangle(t.Normal, t.V1.Add(d.Position), t.V2.Add(d.Position), t.V3.Add(d.Position))
	}
	return local
}

// Triangles returns every surface triangle of the garment in scene space
func (g Geometry) Triangles() []geometry.Triangle {
	var triangles []geometry.Triangle
	triangles = append(triangles, g.Body.Triangles()...)
	for _, sleeve := range g.Sleeves {
		triangles = append(triangles, sleeve.Triangles()...)
	}
	triangles = append(triangles, g.Neck.Triangles()...)
	return triangles
}

// BoundingBox returns the bounds of all surfaces and annotation lines
func (g Geometry) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, t := range g.Triangles() {
		bbox.Extend(t.V1)
		bbox.Extend(t.V2)
		bbox.Extend(t.V3)
	}
	for _, l := range g.Lines {
		bbox.Extend(l.Start)
		bbox.Extend(l.End)
	}
	return bbox
}
