// Package bus implements the page-wide publish/subscribe channel that
// keeps independently instantiated charts showing a consistent time
// window and hover position.
//
// Delivery is synchronous and in subscription order, so two charts never
// observe a torn intermediate state relative to each other. The bus does
// not filter by origin: every event carries its source chart ID and each
// subscriber is responsible for ignoring its own events.
package bus

import (
	"sync"

	"github.com/mfreeman451/statusgraph/pkg/models"
)

// ZoomHandler receives time-domain changes published by sibling charts.
type ZoomHandler func(models.ZoomEvent)

// FocusHandler receives hover-position changes published by sibling charts.
type FocusHandler func(models.FocusEvent)

// Bus delivers zoom and focus events between the charts of one page.
// It lives for the lifetime of the page and is rebuilt when all charts
// are torn down and re-instantiated.
type Bus struct {
	mu            sync.RWMutex
	zoomHandlers  []ZoomHandler
	focusHandlers []FocusHandler
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{}
}

// SubscribeZoom registers a handler for zoom events.
func (b *Bus) SubscribeZoom(h ZoomHandler) {
	if h == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.zoomHandlers = append(b.zoomHandlers, h)
}

// SubscribeFocus registers a handler for focus events.
func (b *Bus) SubscribeFocus(h FocusHandler) {
	if h == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.focusHandlers = append(b.focusHandlers, h)
}

// PublishZoom invokes every zoom subscriber synchronously, in
// subscription order, in the caller's turn.
func (b *Bus) PublishZoom(ev models.ZoomEvent) {
	b.mu.RLock()
	handlers := append([]ZoomHandler(nil), b.zoomHandlers...)
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ev)
	}
}

// PublishFocus invokes every focus subscriber synchronously, in
// subscription order, in the caller's turn.
func (b *Bus) PublishFocus(ev models.FocusEvent) {
	b.mu.RLock()
	handlers := append([]FocusHandler(nil), b.focusHandlers...)
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ev)
	}
}
