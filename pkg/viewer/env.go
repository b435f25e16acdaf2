package viewer

import (
	"sort"

	"github.com/philipparndt/gogarment/pkg/scene"
)

// Surface is a rendering target created by a Backend
type Surface interface {
	Element
	Resize(width, height int)
	Render(s *scene.Scene, camera *Camera)
	Dispose()
}

// Container is the host area a surface is attached to
type Container interface {
	Size() (width, height int)
	Attach(s Surface)
	// Detach removes s; it must be a no-op when s is not attached
	Detach(s Surface)
}

// ListenerID identifies a registered resize listener
type ListenerID int

// FrameID identifies a requested frame callback
type FrameID int

// Window provides process-wide resize notifications and the frame callback queue
type Window interface {
	AddResizeListener(fn func()) ListenerID
	RemoveResizeListener(id ListenerID)
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Backend creates surfaces and GPU buffers
type Backend interface {
	scene.Allocator
	NewSurface(width, height int) Surface
}

// Environment is everything a viewport needs from its host
type Environment struct {
	Container Container
	Window    Window
	Backend   Backend
}

// FrameQueue is a single-threaded frame callback queue
type FrameQueue struct {
	next    FrameID
	pending map[FrameID]func()
}

// Request queues fn for the next Run
func (q *FrameQueue) Request(fn func()) FrameID {
	if q.pending == nil {
		q.pending = make(map[FrameID]func())
	}
	q.next++
	q.pending[q.next] = fn
	return q.next
}

// Cancel drops a queued callback; unknown ids are ignored
func (q *FrameQueue) Cancel(id FrameID) {
	delete(q.pending, id)
}

// Len returns the number of queued callbacks
func (q *FrameQueue) Len() int {
	return len(q.pending)
}

// Run invokes the callbacks queued before the call, in request order.
// Callbacks requested while running wait for the next Run.
func (q *FrameQueue) Run() int {
	ids := make([]FrameID, 0, len(q.pending))
	for id := range q.pending {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	ran := 0
	for _, id := range ids {
		fn, ok := q.pending[id]
		if !ok {
			// cancelled by an earlier callback
			continue
		}
		delete(q.pending, id)
		fn()
		ran++
	}
	return ran
}

// ResizeListeners is a registry of resize callbacks
type ResizeListeners struct {
	next      ListenerID
	listeners map[ListenerID]func()
}

// Add registers fn
func (r *ResizeListeners) Add(fn func()) ListenerID {
	if r.listeners == nil {
		r.listeners = make(map[ListenerID]func())
	}
	r.next++
	r.listeners[r.next] = fn
	return r.next
}

// Remove unregisters a listener; unknown ids are ignored
func (r *ResizeListeners) Remove(id ListenerID) {
	delete(r.listeners, id)
}

// Len returns the number of registered listeners
func (r *ResizeListeners) Len() int {
	return len(r.listeners)
}

// Fire calls every registered listener in registration order
func (r *ResizeListeners) Fire() {
	ids := make([]ListenerID, 0, len(r.listeners))
	for id := range r.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if fn, ok := r.listeners[id]; ok {
			fn()
		}
	}
}

// InputBindings fans pointer events out to bound handlers
type InputBindings struct {
	next     int
	handlers map[int]PointerHandler
}

// Bind registers h
func (b *InputBindings) Bind(h PointerHandler) (unbind func()) {
	if b.handlers == nil {
		b.handlers = make(map[int]PointerHandler)
	}
	b.next++
	id := b.next
	b.handlers[id] = h
	return func() { delete(b.handlers, id) }
}

// Len returns the number of bound handlers
func (b *InputBindings) Len() int {
	return len(b.handlers)
}

func (b *InputBindings) each(fn func(PointerHandler)) {
	for _, h := range b.handlers {
		fn(h)
	}
}

// PointerDown forwards to every bound handler
func (b *InputBindings) PointerDown(button Button, x, y float64) {
	b.each(func(h PointerHandler) { h.PointerDown(button, x, y) })
}

// PointerMove forwards to every bound handler
func (b *InputBindings) PointerMove(x, y float64) {
	b.each(func(h PointerHandler) { h.PointerMove(x, y) })
}

// PointerUp forwards to every bound handler
func (b *InputBindings) PointerUp(button Button) {
	b.each(func(h PointerHandler) { h.PointerUp(button) })
}

// Wheel forwards to every bound handler
func (b *InputBindings) Wheel(deltaY float64) {
	b.each(func(h PointerHandler) { h.Wheel(deltaY) })
}
