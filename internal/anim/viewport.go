package anim

import "sync"

// Viewport delivers resize notifications for the render surface.
type Viewport interface {
	// OnResize registers fn and returns a function that removes it.
	OnResize(fn func()) (unsubscribe func())
}

// ResizeHub is a Viewport fed by the host through Notify.
type ResizeHub struct {
	mu        sync.Mutex
	next      int
	listeners map[int]func()
}

func NewResizeHub() *ResizeHub {
	return &ResizeHub{listeners: make(map[int]func())}
}

func (h *ResizeHub) OnResize(fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	id := h.next
	h.listeners[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

// Notify calls every registered listener.
func (h *ResizeHub) Notify() {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Listeners returns the number of registered listeners.
func (h *ResizeHub) Listeners() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}
