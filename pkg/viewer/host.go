package viewer

import "github.com/philipparndt/gogarment/pkg/garment"

// Host keeps exactly one live viewport for the most recent measurement record
type Host struct {
	env     Environment
	current *Viewport
	record  garment.Measurements
}

// NewHost creates a host that mounts viewports into env
func NewHost(env Environment) *Host {
	return &Host{env: env}
}

// Show displays the garment for m. A record equal to the one on screen is ignored,
// a different one replaces the viewport, and nil unmounts it.
// It reports whether a viewport was torn down or mounted.
func (h *Host) Show(m *garment.Measurements) bool {
	if m == nil {
		if h.current == nil {
			return false
		}
		h.Close()
		return true
	}

	if h.current != nil && h.record.Equal(*m) {
		return false
	}

	if h.current != nil {
		h.current.Teardown()
		h.current = nil
	}

	h.record = *m
	h.current = Mount(h.env, garment.Build(*m))
	return true
}

// Close tears down the live viewport, if any
func (h *Host) Close() {
	if h.current == nil {
		return
	}
	h.current.Teardown()
	h.current = nil
	h.record = garment.Measurements{}
}

// Live reports whether a viewport is mounted
func (h *Host) Live() bool {
	return h.current != nil
}

// Viewport returns the live viewport or nil
func (h *Host) Viewport() *Viewport {
	return h.current
}

// Record returns the record on screen and whether there is one
func (h *Host) Record() (garment.Measurements, bool) {
	return h.record, h.current != nil
}
