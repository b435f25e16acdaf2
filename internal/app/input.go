package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogarment/pkg/viewer"
)

// handleInput processes host shortcuts and forwards pointer input to the attached surface.
// The camera only moves through pointer input; Home remounts the viewport.
func (app *App) handleInput() {
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFilled = !app.View.showFilled
	}
	if rl.IsKeyPressed(rl.KeyL) {
		app.View.showLabels = !app.View.showLabels
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}
	if rl.IsKeyPressed(rl.KeyR) {
		app.reloadRecord()
	}

	surface := app.Window.surface
	if surface == nil {
		return
	}
	app.dispatchPointer(surface)
}

// dispatchPointer maps raylib mouse state to pointer events.
// Shift+left drag pans, like the right and middle buttons.
func (app *App) dispatchPointer(target viewer.PointerHandler) {
	pos := rl.GetMousePosition()
	x, y := float64(pos.X), float64(pos.Y)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.leftButton = viewer.PrimaryButton
		if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
			app.Interaction.leftButton = viewer.SecondaryButton
		}
		target.PointerDown(app.Interaction.leftButton, x, y)
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		target.PointerDown(viewer.SecondaryButton, x, y)
	}
	if rl.IsMouseButtonPressed(rl.MouseMiddleButton) {
		target.PointerDown(viewer.MiddleButton, x, y)
	}

	if pos != app.Interaction.lastMouse {
		target.PointerMove(x, y)
		app.Interaction.lastMouse = pos
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		target.PointerUp(app.Interaction.leftButton)
	}
	if rl.IsMouseButtonReleased(rl.MouseRightButton) {
		target.PointerUp(viewer.SecondaryButton)
	}
	if rl.IsMouseButtonReleased(rl.MouseMiddleButton) {
		target.PointerUp(viewer.MiddleButton)
	}

	// raylib reports wheel-up as positive, pointer deltas are negative for zoom in
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		target.Wheel(-float64(wheel))
	}
}
