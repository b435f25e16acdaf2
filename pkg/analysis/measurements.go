package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/geometry"
)

// PartInfo describes one mesh part of a garment
type PartInfo struct {
	Name          string
	TriangleCount int
	SurfaceArea   float64 // scene units squared, all faces
	FrontArea     float64 // cm squared, the face pointing at the viewer
}

// EdgeInfo contains information about a triangle edge
type EdgeInfo struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	Part   string
}

// MeasurementResult contains the derived measurements of a garment
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	FabricArea    float64 // cm squared, front faces of all parts
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	Parts         []PartInfo
	Lines         []garment.Line
	AllEdges      []EdgeInfo
}

type part struct {
	name      string
	triangles []geometry.Triangle
	front     float64
}

func parts(g garment.Geometry) []part {
	cm2 := 1 / (garment.Scale * garment.Scale)
	out := []part{{"body", g.Body.Triangles(), g.Body.Width * g.Body.Height * cm2}}
	for i, s := range g.Sleeves {
		out = append(out, part{fmt.Sprintf("sleeve-%s", garment.Side(i)), s.Triangles(), s.Width * s.Height * cm2})
	}
	// the fan approximates the circle, so use the polygon area
	n := float64(g.Neck.Segments)
	neck := 0.5 * n * g.Neck.Radius * g.Neck.Radius * math.Sin(2*math.Pi/n) * cm2
	out = append(out, part{"neck", g.Neck.Triangles(), neck})
	return out
}

// AnalyzeGeometry performs comprehensive analysis on garment geometry
func AnalyzeGeometry(g garment.Geometry) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox: g.BoundingBox(),
		Lines:       g.Lines[:],
		AllEdges:    make([]EdgeInfo, 0),
	}
	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, p := range parts(g) {
		info := PartInfo{Name: p.name, TriangleCount: len(p.triangles), FrontArea: p.front}

		for _, triangle := range p.triangles {
			info.SurfaceArea += triangle.Area()

			vertices := triangle.Vertices()
			for i, length := range triangle.EdgeLengths() {
				result.AllEdges = append(result.AllEdges, EdgeInfo{
					Start:  vertices[i],
					End:    vertices[(i+1)%3],
					Length: length,
					Part:   p.name,
				})

				totalLength += length
				minLength = math.Min(minLength, length)
				maxLength = math.Max(maxLength, length)
			}
		}

		result.Parts = append(result.Parts, info)
		result.TriangleCount += info.TriangleCount
		result.SurfaceArea += info.SurfaceArea
		result.FabricArea += info.FrontArea
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindLongestEdges returns the N longest edges
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// ToCentimeters converts a scene length to centimeters
func ToCentimeters(length float64) float64 {
	return length / garment.Scale
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.2f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}

// FormatEdge formats an edge with its part and its length in centimeters
func FormatEdge(e EdgeInfo) string {
	return fmt.Sprintf("%s %s -> %s, %s", e.Part, FormatVector(e.Start), FormatVector(e.End), FormatMeasurement(ToCentimeters(e.Length), "cm"))
}
