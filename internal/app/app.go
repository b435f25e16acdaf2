package app

import (
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogarment/internal/config"
	"github.com/philipparndt/gogarment/internal/measurement"
	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/scene"
	"github.com/philipparndt/gogarment/pkg/viewer"
)

var labelRenderer = measurement.NewRenderer()

// Run opens a window showing the garment described by sourceFile until the window is closed
func Run(sourceFile string, cfg config.Config) error {
	// Fail early on unreadable files; invalid records still open the window
	m, err := garment.Load(sourceFile)
	if err != nil && !errors.Is(err, garment.ErrIncomplete) && !errors.Is(err, garment.ErrNotPositive) {
		return err
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "GoGarment")
	rl.SetTargetFPS(int32(cfg.TargetFPS))

	app := &App{
		Config: cfg,
		Window: &windowHost{},
		View: ViewSettings{
			showFilled: true,
			showLabels: true,
			showHelp:   true,
		},
		FileWatch: FileWatchState{sourceFile: sourceFile},
	}
	app.Backend = &raylibBackend{view: &app.View, material: rl.LoadMaterialDefault()}
	app.Host = viewer.NewHost(viewer.Environment{
		Container: app.Window,
		Window:    app.Window,
		Backend:   app.Backend,
	})
	app.UI.font = rl.GetFontDefault()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		app.setStatus(err.Error(), true)
	} else {
		app.FileWatch.offer(m)
	}

	if err := app.setupFileWatcher(); err != nil {
		fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
		fmt.Println("Auto-reload will not be available")
	} else {
		defer app.FileWatch.fileWatcher.Close()
	}

	for !rl.WindowShouldClose() {
		// Records from the watcher are applied on the main thread
		app.applyPendingRecord()
		app.applyDamping()

		if rl.IsWindowResized() {
			app.Window.listeners.Fire()
		}

		app.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(scene.Background)

		app.Window.frames.Run()

		if app.View.showLabels {
			app.drawLabels()
		}
		app.drawUI()

		rl.EndDrawing()
	}

	app.Host.Close()
	rl.CloseWindow()
	return nil
}

// applyDamping copies the configured damping factor onto new controls
func (app *App) applyDamping() {
	if v := app.Host.Viewport(); v != nil && v.Controls() != nil {
		v.Controls().DampingFactor = app.Config.DampingFactor
	}
}

// drawLabels draws the centimeter labels of the annotation lines
func (app *App) drawLabels() {
	surface := app.Window.surface
	if surface == nil {
		return
	}
	sc, camera, ok := surface.lastFrame()
	if !ok {
		return
	}
	labelRenderer.Draw(app.UI.font, labelRenderer.Labels(sc, camera), rl.GetMousePosition())
}
