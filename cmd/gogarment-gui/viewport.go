package main

import (
	"image"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gogarment/pkg/viewer"
)

// frameRate is how often queued frames run
const frameRate = 60

// frameHost is the viewer.Container and viewer.Window behind a viewport widget
type frameHost struct {
	widget    *viewportWidget
	frames    viewer.FrameQueue
	listeners viewer.ResizeListeners
	surface   *viewer.SoftwareSurface
}

func (h *frameHost) Size() (int, int) {
	size := h.widget.Size()
	return max(int(size.Width), 1), max(int(size.Height), 1)
}

func (h *frameHost) Attach(s viewer.Surface) {
	if ss, ok := s.(*viewer.SoftwareSurface); ok {
		h.surface = ss
	}
}

func (h *frameHost) Detach(s viewer.Surface) {
	if h.surface != nil && viewer.Surface(h.surface) == s {
		h.surface = nil
	}
}

func (h *frameHost) AddResizeListener(fn func()) viewer.ListenerID {
	return h.listeners.Add(fn)
}

func (h *frameHost) RemoveResizeListener(id viewer.ListenerID) {
	h.listeners.Remove(id)
}

func (h *frameHost) RequestFrame(fn func()) viewer.FrameID {
	return h.frames.Request(fn)
}

func (h *frameHost) CancelFrame(id viewer.FrameID) {
	h.frames.Cancel(id)
}

// viewportWidget shows the software rendered frames of the live viewport and feeds it pointer input
type viewportWidget struct {
	widget.BaseWidget

	host     *frameHost
	backend  *viewer.SoftwareBackend
	image    *canvas.Image
	stop     chan struct{}
	stopOnce sync.Once
}

func newViewportWidget() *viewportWidget {
	w := &viewportWidget{
		backend: viewer.NewSoftwareBackend(),
		stop:    make(chan struct{}),
	}
	w.host = &frameHost{widget: w}
	w.image = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	w.image.FillMode = canvas.ImageFillStretch
	w.ExtendBaseWidget(w)
	return w
}

// Env returns the environment viewports mount into
func (w *viewportWidget) Env() viewer.Environment {
	return viewer.Environment{Container: w.host, Window: w.host, Backend: w.backend}
}

func (w *viewportWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.image)
}

func (w *viewportWidget) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (w *viewportWidget) Resize(size fyne.Size) {
	if size == w.Size() {
		return
	}
	w.BaseWidget.Resize(size)
	w.host.listeners.Fire()
}

// Start runs queued frames on the fyne thread until Stop
func (w *viewportWidget) Start() {
	go func() {
		ticker := time.NewTicker(time.Second / frameRate)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fyne.Do(w.tick)
			case <-w.stop:
				return
			}
		}
	}()
}

// Stop ends the frame ticker. Calling it again is a no-op.
func (w *viewportWidget) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
}

func (w *viewportWidget) tick() {
	if w.host.frames.Run() == 0 || w.host.surface == nil {
		return
	}
	w.image.Image = w.host.surface.Image()
	w.image.Refresh()
}

func toButton(b desktop.MouseButton) (viewer.Button, bool) {
	switch b {
	case desktop.MouseButtonPrimary:
		return viewer.PrimaryButton, true
	case desktop.MouseButtonSecondary:
		return viewer.SecondaryButton, true
	case desktop.MouseButtonTertiary:
		return viewer.MiddleButton, true
	}
	return 0, false
}

// MouseDown starts a gesture on the attached surface
func (w *viewportWidget) MouseDown(ev *desktop.MouseEvent) {
	button, ok := toButton(ev.Button)
	if !ok || w.host.surface == nil {
		return
	}
	w.host.surface.PointerDown(button, float64(ev.Position.X), float64(ev.Position.Y))
}

// MouseUp ends a gesture on the attached surface
func (w *viewportWidget) MouseUp(ev *desktop.MouseEvent) {
	button, ok := toButton(ev.Button)
	if !ok || w.host.surface == nil {
		return
	}
	w.host.surface.PointerUp(button)
}

// Dragged forwards pointer movement while a button is held
func (w *viewportWidget) Dragged(ev *fyne.DragEvent) {
	if w.host.surface == nil {
		return
	}
	w.host.surface.PointerMove(float64(ev.Position.X), float64(ev.Position.Y))
}

func (w *viewportWidget) DragEnd() {}

// Scrolled zooms; fyne reports scrolling up as positive
func (w *viewportWidget) Scrolled(ev *fyne.ScrollEvent) {
	if w.host.surface == nil || ev.Scrolled.DY == 0 {
		return
	}
	w.host.surface.Wheel(-float64(ev.Scrolled.DY))
}
