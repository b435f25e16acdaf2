package app

import (
	"fmt"
	"os"
	"time"

	"github.com/philipparndt/gogarment/pkg/analysis"
	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/watcher"
)

// setupFileWatcher reloads the record whenever the source file changes
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewRecordWatcher(app.FileWatch.sourceFile, app.Config.Debounce(),
		func(m garment.Measurements) {
			fmt.Printf("\nFile changed: %s\n", app.FileWatch.sourceFile)
			app.FileWatch.offer(m)
		},
		app.FileWatch.fail,
	)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	fmt.Printf("Watching file for changes: %s\n", fw.Path())
	return nil
}

// reloadRecord loads the source file synchronously
func (app *App) reloadRecord() {
	m, err := garment.Load(app.FileWatch.sourceFile)
	if err != nil {
		app.FileWatch.fail(err)
		return
	}
	app.FileWatch.offer(m)
}

// applyPendingRecord shows a reloaded record (must be called on main thread)
func (app *App) applyPendingRecord() {
	m, err := app.FileWatch.take()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reloading measurements: %v\n", err)
		app.setStatus(err.Error(), true)
	}
	if m == nil {
		return
	}

	if !app.Host.Show(m) {
		return
	}

	app.Record.record = *m
	app.Record.hasValid = true
	app.Record.result = analysis.AnalyzeGeometry(garment.Build(*m))

	if v := app.Host.Viewport(); v != nil {
		fmt.Printf("Viewport %s showing %s\n", v.ID, m)
	}
	app.setStatus("Measurements loaded", false)
}

func (app *App) setStatus(text string, isErr bool) {
	app.UI.status = text
	app.UI.statusErr = isErr
	app.UI.statusTime = time.Now()
}
