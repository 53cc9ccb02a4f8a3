// Package viewport keeps a map surface in line with the client state.
package viewport

import (
	"sync"

	"parkospace/config"
	"parkospace/internal/client/state"
	"parkospace/internal/client/view"
	"parkospace/internal/domain/entity"
)

// Marker is a placed marker handle.
type Marker interface {
	Remove()
}

// Renderer is the map surface: tiles, markers and camera.
type Renderer interface {
	SetView(center entity.GeoPoint, zoom int)
	FlyTo(center entity.GeoPoint, zoom int)
	PlaceMarker(spec view.MarkerSpec) Marker
}

// Controller owns the user marker, the search marker and the listing markers.
// Listing markers are always the full set of the last rendered frame.
type Controller struct {
	mu         sync.Mutex
	renderer   Renderer
	locateZoom int
	focusZoom  int

	user     Marker
	search   Marker
	listings []Marker
	seq      uint64
	detached bool
}

func NewController(renderer Renderer, cfg *config.ClientConfig) *Controller {
	return &Controller{
		renderer:   renderer,
		locateZoom: cfg.LocateZoom,
		focusZoom:  cfg.FocusZoom,
	}
}

// Bind renders every newly applied listing cache of store. The returned func unbinds.
func (c *Controller) Bind(store *state.Store) func() {
	return store.Subscribe(func(s state.Snapshot) {
		c.Render(view.Derive(s))
	})
}

// ShowUser replaces the user marker at p and recenters on it.
func (c *Controller) ShowUser(p entity.GeoPoint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detached {
		return
	}

	if c.user != nil {
		c.user.Remove()
	}
	c.user = c.renderer.PlaceMarker(view.MarkerSpec{Position: p, Label: "You", Style: view.MarkerUser})
	c.renderer.SetView(p, c.locateZoom)
}

// ShowSearchResult marks a geocoded place and recenters on it.
func (c *Controller) ShowSearchResult(place *entity.Place) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detached {
		return
	}

	if c.search != nil {
		c.search.Remove()
	}
	c.search = c.renderer.PlaceMarker(view.MarkerSpec{Position: place.Point, Label: place.Address, Style: view.MarkerSearch, Popup: place.Address})
	c.renderer.SetView(place.Point, c.locateZoom)
}

// Render clears and rebuilds the listing markers for a frame not rendered yet.
func (c *Controller) Render(frame view.Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detached || frame.Seq == c.seq {
		return
	}

	c.clearListings()
	c.listings = make([]Marker, 0, len(frame.Markers))
	for _, spec := range frame.Markers {
		c.listings = append(c.listings, c.renderer.PlaceMarker(spec))
	}
	c.seq = frame.Seq
}

// Focus flies to a listing without touching the cache.
func (c *Controller) Focus(p entity.GeoPoint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detached {
		return
	}

	c.renderer.FlyTo(p, c.focusZoom)
}

// ListingMarkers returns how many listing markers are placed.
func (c *Controller) ListingMarkers() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.listings)
}

// Detach tears the controller down. Later calls are ignored.
func (c *Controller) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.detached {
		return
	}

	c.clearListings()
	for _, m := range []Marker{c.user, c.search} {
		if m != nil {
			m.Remove()
		}
	}
	c.user, c.search = nil, nil
	c.detached = true
}

func (c *Controller) clearListings() {
	for _, m := range c.listings {
		m.Remove()
	}
	c.listings = nil
}
