package garment

import (
	"math"

	"github.com/philipparndt/gogarment/pkg/geometry"
)

// Scale converts centimeters to scene units (1 unit = 100 cm)
const Scale = 0.01

// Presentation constants, in scene units. They do not depend on the measurements.
const (
	PanelThickness = 0.01
	NeckDepth      = 0.01
	LineDepth      = 0.02
	LengthLineGap  = 0.05
	NeckSegments   = 32
)

// SleeveAngle is the tilt of each sleeve about the depth axis
const SleeveAngle = math.Pi / 4

// Side selects a sleeve
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// LineKind identifies an annotation line
type LineKind int

const (
	ChestLine LineKind = iota
	ShoulderLine
	LengthLine
	SleeveLine
)

func (k LineKind) String() string {
	switch k {
	case ChestLine:
		return "chest"
	case ShoulderLine:
		return "shoulder"
	case LengthLine:
		return "length"
	case SleeveLine:
		return "sleeve"
	}
	return "unknown"
}

// Panel is a thin box centered on Position and rotated about Z by RotationZ
type Panel struct {
	Width     float64
	Height    float64
	Thickness float64
	Position  geometry.Vector3
	RotationZ float64
}

// Disk is a flat circle facing +Z
type Disk struct {
	Radius   float64
	Segments int
	Position geometry.Vector3
}

// Line is a two-point annotation segment
type Line struct {
	Kind        LineKind
	Start       geometry.Vector3
	End         geometry.Vector3
	Centimeters float64 // measured value the line stands for
}

// Length returns the length of the segment in scene units
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// Midpoint returns the center of the segment
func (l Line) Midpoint() geometry.Vector3 {
	return l.Start.Lerp(l.End, 0.5)
}

// Geometry is the derived mesh description of one garment
type Geometry struct {
	Body    Panel
	Sleeves [2]Panel
	Neck    Disk
	Lines   [4]Line
}

// Build maps a measurement record to garment geometry.
// The record is not validated; callers only build from complete records.
func Build(m Measurements) Geometry {
	chest := m.Chest * Scale
	shoulder := m.Shoulder * Scale
	sleeve := m.Sleeve * Scale
	length := m.Length * Scale
	neck := m.Neck * Scale

	sleeveX := chest/2 + sleeve/2
	sleevePanel := func(x, angle float64) Panel {
		return Panel{
			Width:     sleeve,
			Height:    shoulder / 2,
			Thickness: PanelThickness,
			Position:  geometry.NewVector3(x, 0, 0),
			RotationZ: angle,
		}
	}

	return Geometry{
		// hangs from the origin: top edge at y=0
		Body: Panel{
			Width:     chest,
			Height:    length,
			Thickness: PanelThickness,
			Position:  geometry.NewVector3(0, -length/2, 0),
		},
		Sleeves: [2]Panel{
			Left:  sleevePanel(-sleeveX, SleeveAngle),
			Right: sleevePanel(sleeveX, -SleeveAngle),
		},
		Neck: Disk{
			Radius:   neck / 2,
			Segments: NeckSegments,
			Position: geometry.NewVector3(0, length/2-neck/2, NeckDepth),
		},
		Lines: [4]Line{
			ChestLine: {
				Kind:        ChestLine,
				Start:       geometry.NewVector3(-chest/2, 0, LineDepth),
				End:         geometry.NewVector3(chest/2, 0, LineDepth),
				Centimeters: m.Chest,
			},
			ShoulderLine: {
				Kind:        ShoulderLine,
				Start:       geometry.NewVector3(-shoulder/2, 0, LineDepth),
				End:         geometry.NewVector3(shoulder/2, 0, LineDepth),
				Centimeters: m.Shoulder,
			},
			LengthLine: {
				Kind:        LengthLine,
				Start:       geometry.NewVector3(chest/2+LengthLineGap, -length/2, LineDepth),
				End:         geometry.NewVector3(chest/2+LengthLineGap, length/2, LineDepth),
				Centimeters: m.Length,
			},
			SleeveLine: {
				Kind:        SleeveLine,
				Start:       geometry.NewVector3(chest/2, 0, LineDepth),
				End:         geometry.NewVector3(chest/2+sleeve, 0, LineDepth),
				Centimeters: m.Sleeve,
			},
		},
	}
}

// PartCount returns the number of panels, disks and lines in the geometry
func (g Geometry) PartCount() (panels, disks, lines int) {
	return 1 + len(g.Sleeves), 1, len(g.Lines)
}
