package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gogarment/pkg/viewer"
)

func (w *windowHost) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (w *windowHost) Attach(s viewer.Surface) {
	if rs, ok := s.(*raylibSurface); ok {
		w.surface = rs
	}
}

func (w *windowHost) Detach(s viewer.Surface) {
	if w.surface != nil && viewer.Surface(w.surface) == s {
		w.surface = nil
	}
}

func (w *windowHost) AddResizeListener(fn func()) viewer.ListenerID {
	return w.listeners.Add(fn)
}

func (w *windowHost) RemoveResizeListener(id viewer.ListenerID) {
	w.listeners.Remove(id)
}

func (w *windowHost) RequestFrame(fn func()) viewer.FrameID {
	return w.frames.Request(fn)
}

func (w *windowHost) CancelFrame(id viewer.FrameID) {
	w.frames.Cancel(id)
}
