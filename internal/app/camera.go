package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogarment/pkg/viewer"
)

// toRaylibCamera converts a viewer camera; raylib uses its own fixed clip planes
func toRaylibCamera(c *viewer.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   toRaylibVector(c.Position),
		Target:     toRaylibVector(c.Target),
		Up:         toRaylibVector(c.Up),
		Fovy:       float32(c.FOV),
		Projection: rl.CameraPerspective,
	}
}

// resetCameraView remounts the viewport, which restores the initial camera
func (app *App) resetCameraView() {
	if !app.Record.hasValid {
		return
	}
	app.Host.Close()
	m := app.Record.record
	app.Host.Show(&m)
}
