package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogarment/pkg/analysis"
	"github.com/philipparndt/gogarment/version"
)

var (
	headingColor = rl.NewColor(52, 152, 219, 255)
	textColor    = rl.NewColor(40, 40, 40, 255)
	hintColor    = rl.NewColor(110, 110, 110, 255)
)

// drawUI draws the measurement panel, help and status line
func (app *App) drawUI() {
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)

	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())
	font := app.UI.font

	text := func(s string, size float32, col rl.Color) {
		rl.DrawTextEx(font, s, rl.Vector2{X: 10, Y: y}, size, 1, col)
		y += lineHeight
	}

	// === MEASUREMENTS ===
	text("Measurement Details:", fontSize16, headingColor)
	if app.Record.hasValid {
		for _, f := range app.Record.record.Fields() {
			text(fmt.Sprintf("  %s: %.1f cm", f.Label, f.Value), fontSize14, textColor)
		}
	} else {
		text("  No valid measurements", fontSize14, rl.Red)
	}
	y += lineHeight

	// === GARMENT ===
	if result := app.Record.result; result != nil {
		text("Garment:", fontSize16, headingColor)
		text(fmt.Sprintf("  Triangles: %d", result.TriangleCount), fontSize14, textColor)
		text(fmt.Sprintf("  Fabric Area: %s", analysis.FormatMeasurement(result.FabricArea, "sq cm")), fontSize14, textColor)
		text(fmt.Sprintf("  Size: %.1f x %.1f cm",
			analysis.ToCentimeters(result.Dimensions.X),
			analysis.ToCentimeters(result.Dimensions.Y)), fontSize14, textColor)
		y += lineHeight
	}

	// === NAVIGATE ===
	if app.View.showHelp {
		text("Navigate:", fontSize16, headingColor)
		text("  Left Drag: Rotate | Right/Shift+Drag: Pan", fontSize14, hintColor)
		text("  Mouse Wheel: Zoom", fontSize14, hintColor)
		text("  Home: Reset View | R: Reload", fontSize14, hintColor)
		text("  W: Wireframe | F: Fill | L: Labels | H: Help", fontSize14, hintColor)
	}

	// Status line (bottom-left), fades after a few seconds unless it is an error
	if app.UI.status != "" && (app.UI.statusErr || time.Since(app.UI.statusTime) < 3*time.Second) {
		col := rl.DarkGreen
		if app.UI.statusErr {
			col = rl.Red
		}
		rl.DrawTextEx(font, app.UI.status, rl.Vector2{X: 10, Y: screenHeight - 30}, fontSize14, 1, col)
	}

	// Version (bottom-right)
	versionText := "v" + version.GetVersion()
	size := rl.MeasureTextEx(font, versionText, fontSize14, 1)
	rl.DrawTextEx(font, versionText, rl.Vector2{X: screenWidth - size.X - 10, Y: screenHeight - 30}, fontSize14, 1, hintColor)
}
