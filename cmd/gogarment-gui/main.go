package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gogarment/internal/config"
	"github.com/philipparndt/gogarment/pkg/analysis"
	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/viewer"
	"github.com/philipparndt/gogarment/pkg/watcher"
)

type App struct {
	window   fyne.Window
	config   config.Config
	viewport *viewportWidget
	host     *viewer.Host
	watcher  *watcher.RecordWatcher

	entries     map[string]*widget.Entry
	details     map[string]*widget.Label
	summary     *widget.Label
	placeholder *widget.Label
}

func main() {
	cfg, err := config.LoadOptional(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg.Resolve(config.Flags{})

	a := app.New()
	w := a.NewWindow("GoGarment - Custom T-Shirt Design")

	appInstance := &App{
		window:   w,
		config:   cfg,
		viewport: newViewportWidget(),
		entries:  make(map[string]*widget.Entry),
		details:  make(map[string]*widget.Label),
	}
	appInstance.host = viewer.NewHost(appInstance.viewport.Env())
	appInstance.setupMainUI()

	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	}

	appInstance.viewport.Start()
	w.SetOnClosed(appInstance.close)
	w.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	// === 3D Visualization ===
	a.placeholder = widget.NewLabel("Enter your measurements or open a measurements file")
	help := widget.NewLabel("Drag to rotate • Right-drag to pan • Scroll to zoom")
	visualization := container.NewBorder(
		container.NewVBox(help, a.placeholder), // top
		nil,                                    // bottom
		nil,                                    // left
		nil,                                    // right
		a.viewport,                             // center
	)

	// === Measurement Details ===
	form := widget.NewForm()
	detailBox := container.NewVBox()
	for _, f := range (garment.Measurements{}).Fields() {
		entry := widget.NewEntry()
		entry.SetPlaceHolder("cm")
		a.entries[f.Key] = entry
		form.Append(f.Label, entry)

		label := widget.NewLabel(fmt.Sprintf("%s: -", f.Label))
		a.details[f.Key] = label
		detailBox.Add(label)
	}
	form.SubmitText = "Generate Design"
	form.OnSubmit = a.submitForm

	a.summary = widget.NewLabel("")

	openButton := widget.NewButtonWithIcon("Edit Measurements", theme.FolderOpenIcon(), a.showFileDialog)
	downloadButton := widget.NewButtonWithIcon("Download 3D Model", theme.DownloadIcon(), func() {
		dialog.ShowInformation("Download 3D Model", "Downloading the 3D model is not available yet.", a.window)
	})

	details := container.NewVScroll(container.NewVBox(
		widget.NewLabelWithStyle("Measurements", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		form,
		widget.NewSeparator(),
		detailBox,
		a.summary,
		widget.NewSeparator(),
		container.NewHBox(openButton, downloadButton),
	))

	tabs := container.NewAppTabs(
		container.NewTabItem("3D Visualization", visualization),
		container.NewTabItem("Measurement Details", details),
	)
	a.window.SetContent(tabs)
}

// submitForm validates the typed measurements and shows them
func (a *App) submitForm() {
	values := make(map[string]string, len(a.entries))
	for key, entry := range a.entries {
		values[key] = entry.Text
	}

	m, err := garment.FromForm(values)
	if err == nil {
		err = m.Validate()
	}
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.show(m)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

// loadFile shows the record in path and watches it for changes
func (a *App) loadFile(path string) {
	m, err := garment.Load(path)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load measurements: %w", err), a.window)
		return
	}
	a.show(m)
	a.watch(path)
}

func (a *App) watch(path string) {
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}

	fw, err := watcher.NewRecordWatcher(path, a.config.Debounce(),
		func(m garment.Measurements) {
			fyne.Do(func() { a.show(m) })
		},
		func(err error) {
			fmt.Fprintf(os.Stderr, "Error reloading measurements: %v\n", err)
		},
	)
	if err != nil {
		fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
		return
	}
	fw.Start()
	a.watcher = fw
	fmt.Printf("Watching file for changes: %s\n", fw.Path())
}

// show mounts a viewport for m unless the same record is already on screen
func (a *App) show(m garment.Measurements) {
	if !a.host.Show(&m) {
		return
	}

	v := a.host.Viewport()
	if controls := v.Controls(); controls != nil {
		controls.DampingFactor = a.config.DampingFactor
	}
	fmt.Printf("Viewport %s showing %s\n", v.ID, m)

	a.placeholder.Hide()
	for _, f := range m.Fields() {
		a.entries[f.Key].SetText(fmt.Sprintf("%g", f.Value))
		a.details[f.Key].SetText(fmt.Sprintf("%s: %g cm", f.Label, f.Value))
	}

	result := analysis.AnalyzeGeometry(garment.Build(m))
	a.summary.SetText(fmt.Sprintf("Fabric area (front): %s\nSize: %.1f x %.1f cm",
		analysis.FormatMeasurement(result.FabricArea, "sq cm"),
		analysis.ToCentimeters(result.Dimensions.X),
		analysis.ToCentimeters(result.Dimensions.Y),
	))
}

func (a *App) close() {
	a.viewport.Stop()
	if a.watcher != nil {
		a.watcher.Close()
	}
	a.host.Close()
}
