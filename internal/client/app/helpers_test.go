package app_test

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"parkospace/config"
	"parkospace/internal/client/app"
	"parkospace/internal/client/state"
	"parkospace/internal/client/view"
	"parkospace/internal/client/viewport"
	"parkospace/internal/domain/entity"
	mockApp "parkospace/internal/mocks/app"

	"github.com/google/uuid"
)

var bangalore = entity.GeoPoint{Lat: 12.9716, Lng: 77.5946}

type notice struct {
	level   app.NoticeLevel
	message string
}

type notifier struct {
	mu      sync.Mutex
	notices []notice
}

func (n *notifier) Notify(level app.NoticeLevel, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{level: level, message: message})
}

func (n *notifier) all() []notice {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]notice(nil), n.notices...)
}

func (n *notifier) errors() []string {
	var out []string
	for _, no := range n.all() {
		if no.level == app.NoticeError {
			out = append(out, no.message)
		}
	}

	return out
}

type placed struct {
	spec    view.MarkerSpec
	removed bool
}

func (p *placed) Remove() { p.removed = true }

type renderer struct {
	mu      sync.Mutex
	markers []*placed
	flights []entity.GeoPoint
	views   []entity.GeoPoint
}

func (r *renderer) SetView(center entity.GeoPoint, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, center)
}

func (r *renderer) FlyTo(center entity.GeoPoint, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flights = append(r.flights, center)
}

func (r *renderer) PlaceMarker(spec view.MarkerSpec) viewport.Marker {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := &placed{spec: spec}
	r.markers = append(r.markers, m)

	return m
}

func (r *renderer) live(style view.MarkerStyle) []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []uuid.UUID
	for _, m := range r.markers {
		if !m.removed && m.spec.Style == style {
			ids = append(ids, m.spec.ID)
		}
	}

	return ids
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func clientConfig() *config.ClientConfig {
	cfg := config.DefaultClientConfig()
	cfg.RadiusDebounce = 30 * time.Millisecond

	return cfg
}

type explorerFixtures struct {
	explorer *app.Explorer
	store    *state.Store
	listings *mockApp.MockListingAPI
	geocode  *mockApp.MockGeocodeAPI
	locator  *mockApp.MockLocator
	notifier *notifier
	renderer *renderer
}

func newExplorer(t *testing.T, withLocator bool) explorerFixtures {
	fx := explorerFixtures{
		store:    state.NewStore(state.Initial(bangalore, 5)),
		listings: mockApp.NewMockListingAPI(t),
		geocode:  mockApp.NewMockGeocodeAPI(t),
		notifier: &notifier{},
		renderer: &renderer{},
	}

	params := app.ExplorerParams{
		Store:    fx.store,
		Listings: fx.listings,
		Geocode:  fx.geocode,
		Viewport: viewport.NewController(fx.renderer, clientConfig()),
		Notifier: fx.notifier,
		Client:   clientConfig(),
		Listing:  config.DefaultListingConfig(),
		Logger:   discardLogger(),
	}
	if withLocator {
		fx.locator = mockApp.NewMockLocator(t)
		params.Locator = fx.locator
	}

	fx.explorer = app.NewExplorer(params)
	t.Cleanup(fx.explorer.Close)

	return fx
}

func nearby(title string, km float64) entity.NearbyListing {
	return entity.NearbyListing{
		Listing: entity.Listing{
			ID:       uuid.New(),
			Title:    title,
			Location: bangalore.Offset(km/111, 0),
			Pricing:  entity.Pricing{Hourly: 50, Daily: 300},
		},
		DistanceKm: km,
	}
}
