package viewer

// Offscreen is a headless container and window. Frames run only when RunFrames is called.
type Offscreen struct {
	width, height int

	frames    FrameQueue
	listeners ResizeListeners
	attached  []Surface
	backend   *SoftwareBackend
}

// NewOffscreen creates a headless host of the given size backed by a SoftwareBackend
func NewOffscreen(width, height int) *Offscreen {
	return &Offscreen{width: width, height: height, backend: NewSoftwareBackend()}
}

// Env returns the environment viewports mount into
func (o *Offscreen) Env() Environment {
	return Environment{Container: o, Window: o, Backend: o.backend}
}

// Backend returns the software backend
func (o *Offscreen) Backend() *SoftwareBackend {
	return o.backend
}

// Size returns the container size
func (o *Offscreen) Size() (width, height int) {
	return o.width, o.height
}

// SetSize changes the container size and notifies resize listeners
func (o *Offscreen) SetSize(width, height int) {
	o.width, o.height = width, height
	o.listeners.Fire()
}

// Attach adds s to the container
func (o *Offscreen) Attach(s Surface) {
	o.attached = append(o.attached, s)
}

// Detach removes s; it does nothing when s is not attached
func (o *Offscreen) Detach(s Surface) {
	for i, a := range o.attached {
		if a == s {
			o.attached = append(o.attached[:i], o.attached[i+1:]...)
			return
		}
	}
}

// Attached returns the surfaces currently in the container
func (o *Offscreen) Attached() []Surface {
	return o.attached
}

// AddResizeListener registers fn
func (o *Offscreen) AddResizeListener(fn func()) ListenerID {
	return o.listeners.Add(fn)
}

// RemoveResizeListener unregisters a listener
func (o *Offscreen) RemoveResizeListener(id ListenerID) {
	o.listeners.Remove(id)
}

// ResizeListeners returns the number of registered listeners
func (o *Offscreen) ResizeListeners() int {
	return o.listeners.Len()
}

// RequestFrame queues fn for the next frame
func (o *Offscreen) RequestFrame(fn func()) FrameID {
	return o.frames.Request(fn)
}

// CancelFrame drops a queued frame
func (o *Offscreen) CancelFrame(id FrameID) {
	o.frames.Cancel(id)
}

// PendingFrames returns the number of queued frame callbacks
func (o *Offscreen) PendingFrames() int {
	return o.frames.Len()
}

// RunFrames runs n frames and returns the number of callbacks invoked
func (o *Offscreen) RunFrames(n int) int {
	ran := 0
	for i := 0; i < n; i++ {
		ran += o.frames.Run()
	}
	return ran
}
