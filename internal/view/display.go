package view

import (
	"sync"

	"suntimes-api/internal/models"
)

// Display is the single shared results panel. Refreshes are numbered by
// Dispatch and only the most recently dispatched one may write to it, so a
// slow response from an earlier refresh never overwrites a later one.
type Display struct {
	mu         sync.Mutex
	renderer   *Renderer
	dispatched uint64
	view       ViewModel

	// lines shown before the current refresh started
	prevTimezone    string
	prevLastUpdated string
}

// NewDisplay returns a hidden display.
func NewDisplay(renderer *Renderer) *Display {
	return &Display{
		renderer: renderer,
		view:     emptyView(),
	}
}

// Dispatch starts a refresh and returns its sequence number. The error banner
// is cleared and the panel is marked as loading.
func (d *Display) Dispatch() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.dispatched++
	if !d.view.Loading {
		d.prevTimezone = d.view.Timezone
		d.prevLastUpdated = d.view.LastUpdated
	}
	d.view.Visible = true
	d.view.Loading = true
	d.view.Timezone = LoadingTimezone
	d.view.LastUpdated = LoadingLastUpdated
	d.view.Error = ""
	d.view.Dimmed = false
	return d.dispatched
}

// Apply shows the outcome of refresh seq. It reports false and changes
// nothing when a later refresh has been dispatched since.
//
// A successful outcome replaces the whole panel. A failed one keeps the
// previous values, dims them and shows the error banner.
func (d *Display) Apply(seq uint64, outcome models.FetchOutcome) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if seq < d.dispatched {
		return false
	}

	if outcome.OK() {
		d.view = d.renderer.Render(outcome)
		return true
	}

	failed := d.renderer.Render(outcome)
	d.view.Visible = true
	d.view.Loading = false
	d.view.Timezone = d.prevTimezone
	d.view.LastUpdated = d.prevLastUpdated
	d.view.Error = failed.Error
	d.view.Dimmed = true
	if failed.LocationLabel != "" {
		d.view.LocationLabel = failed.LocationLabel
	}
	return true
}

// Clear hides the panel and discards any refresh still in flight.
func (d *Display) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.dispatched++
	d.view = emptyView()
	d.prevTimezone = ""
	d.prevLastUpdated = ""
}

// Snapshot returns a copy of the current view.
func (d *Display) Snapshot() ViewModel {
	d.mu.Lock()
	defer d.mu.Unlock()

	vm := d.view
	vm.Today = append([]Field(nil), d.view.Today...)
	vm.Tomorrow = append([]Field(nil), d.view.Tomorrow...)
	return vm
}

func emptyView() ViewModel {
	return ViewModel{
		Today:    Fields(models.DayResult{}),
		Tomorrow: Fields(models.DayResult{}),
	}
}
