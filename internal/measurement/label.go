// Package measurement draws the centimeter labels of garment annotation lines.
package measurement

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogarment/pkg/geometry"
	"github.com/philipparndt/gogarment/pkg/scene"
	"github.com/philipparndt/gogarment/pkg/viewer"
)

// Label represents a screen space annotation label
type Label struct {
	Text       string
	ScreenPos  rl.Vector2
	BaseColor  rl.Color
	HoverColor rl.Color
	IsHovered  bool
}

// Draw renders the label centered on ScreenPos and returns its bounding rectangle
func (l *Label) Draw(font rl.Font, fontSize float32, padding float32) rl.Rectangle {
	color := l.BaseColor
	borderWidth := float32(1.5)
	if l.IsHovered {
		color = l.HoverColor
		borderWidth = 2.5
	}

	rect := l.Bounds(font, fontSize, padding)

	rl.DrawRectangleRec(rect, rl.NewColor(255, 255, 255, 230))
	rl.DrawRectangleLinesEx(rect, borderWidth, color)

	textPos := rl.Vector2{X: rect.X + padding, Y: rect.Y + padding}
	rl.DrawTextEx(font, l.Text, textPos, fontSize, 1, color)

	return rect
}

// Bounds returns the rectangle Draw would fill
func (l *Label) Bounds(font rl.Font, fontSize float32, padding float32) rl.Rectangle {
	textSize := rl.MeasureTextEx(font, l.Text, fontSize, 1)
	return rl.Rectangle{
		X:      l.ScreenPos.X - textSize.X/2 - padding,
		Y:      l.ScreenPos.Y - textSize.Y/2 - padding,
		Width:  textSize.X + 2*padding,
		Height: textSize.Y + 2*padding,
	}
}

// Renderer places and draws annotation labels
type Renderer struct {
	FontSize float32
	Padding  float32
}

// NewRenderer creates a label renderer with default sizes
func NewRenderer() *Renderer {
	return &Renderer{FontSize: 16, Padding: 4}
}

// Labels returns one label per annotated line node, placed at the projected line midpoint.
// Lines whose midpoint is behind the camera get no label.
func (r *Renderer) Labels(sc *scene.Scene, camera rl.Camera3D) []Label {
	eye := fromRaylibVector(camera.Position)
	target := fromRaylibVector(camera.Target)

	labels := make([]Label, 0, 4)
	for _, n := range sc.Root.Children {
		if n.Kind != scene.LineNode || n.Label == "" || len(n.Points) < 2 {
			continue
		}
		mid := n.Points[0].Lerp(n.Points[len(n.Points)-1], 0.5)
		if !viewer.InFront(eye, target, mid) {
			continue
		}
		pos := rl.GetWorldToScreen(rl.Vector3{X: float32(mid.X), Y: float32(mid.Y), Z: float32(mid.Z)}, camera)
		labels = append(labels, Label{
			Text:       n.Label,
			ScreenPos:  pos,
			BaseColor:  rl.NewColor(40, 40, 40, 255),
			HoverColor: rl.NewColor(52, 152, 219, 255),
		})
	}
	return labels
}

// Draw lays out labels so they do not overlap, highlights the one under mouse and draws them
func (r *Renderer) Draw(font rl.Font, labels []Label, mouse rl.Vector2) {
	placed := make([]rl.Rectangle, 0, len(labels))
	for i := range labels {
		l := &labels[i]
		rect := l.Bounds(font, r.FontSize, r.Padding)

		// chest and shoulder lines share a midpoint; stack labels downwards
		for overlapsAny(rect, placed) {
			l.ScreenPos.Y += rect.Height + 2
			rect.Y += rect.Height + 2
		}
		placed = append(placed, rect)

		l.IsHovered = rl.CheckCollisionPointRec(mouse, rect)
		l.Draw(font, r.FontSize, r.Padding)
	}
}

func overlapsAny(rect rl.Rectangle, others []rl.Rectangle) bool {
	for _, o := range others {
		if rl.CheckCollisionRecs(rect, o) {
			return true
		}
	}
	return false
}

func fromRaylibVector(v rl.Vector3) geometry.Vector3 {
	return geometry.NewVector3(float64(v.X), float64(v.Y), float64(v.Z))
}
