package app

import (
	"sync"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogarment/internal/config"
	"github.com/philipparndt/gogarment/pkg/analysis"
	"github.com/philipparndt/gogarment/pkg/garment"
	"github.com/philipparndt/gogarment/pkg/viewer"
	"github.com/philipparndt/gogarment/pkg/watcher"
)

// windowHost adapts the raylib window to viewer.Container and viewer.Window.
// The attached surface always covers the whole window.
type windowHost struct {
	frames    viewer.FrameQueue
	listeners viewer.ResizeListeners
	surface   *raylibSurface
}

// RecordState holds the record on screen and its derived measurements
type RecordState struct {
	record   garment.Measurements
	hasValid bool
	result   *analysis.MeasurementResult
}

// ViewSettings holds display settings
type ViewSettings struct {
	showFilled    bool
	showWireframe bool
	showLabels    bool
	showHelp      bool
}

// InteractionState holds mouse and interaction state
type InteractionState struct {
	leftButton viewer.Button // what a left drag does, decided on press
	lastMouse  rl.Vector2
}

// FileWatchState holds file watching and reload state.
// The watcher goroutine writes pending/lastErr; the main loop takes them.
type FileWatchState struct {
	sourceFile  string
	fileWatcher *watcher.RecordWatcher

	mu          sync.Mutex
	pending     *garment.Measurements
	lastErr     error
}

// UIState holds UI-related state
type UIState struct {
	font       rl.Font
	status     string
	statusErr  bool
	statusTime time.Time
}

type App struct {
	Config      config.Config
	Window      *windowHost
	Backend     *raylibBackend
	Host        *viewer.Host
	Record      RecordState
	View        ViewSettings
	Interaction InteractionState
	FileWatch   FileWatchState
	UI          UIState
}

// offer hands a freshly loaded record to the main loop
func (fw *FileWatchState) offer(m garment.Measurements) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.pending = &m
	fw.lastErr = nil
}

// fail records a load error for the main loop
func (fw *FileWatchState) fail(err error) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.lastErr = err
}

// take returns and clears the pending record and error
func (fw *FileWatchState) take() (*garment.Measurements, error) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	m, err := fw.pending, fw.lastErr
	fw.pending, fw.lastErr = nil, nil
	return m, err
}
