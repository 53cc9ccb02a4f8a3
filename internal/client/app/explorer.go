package app

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"parkospace/config"
	"parkospace/internal/client/debounce"
	"parkospace/internal/client/state"
	"parkospace/internal/client/view"
	"parkospace/internal/client/viewport"
	"parkospace/internal/domain/entity"
	"parkospace/internal/errors"

	"github.com/google/uuid"
)

type ExplorerParams struct {
	Store    *state.Store
	Listings ListingAPI
	Geocode  GeocodeAPI
	// Locator is nil when the device has no geolocation.
	Locator  Locator
	Viewport *viewport.Controller
	Notifier Notifier
	Client   *config.ClientConfig
	Listing  *config.ListingConfig
	Logger   *slog.Logger
}

// Explorer drives the public map: locating, searching, radius changes and focusing.
type Explorer struct {
	store    *state.Store
	listings ListingAPI
	geocode  GeocodeAPI
	locator  Locator
	viewport *viewport.Controller
	notifier Notifier
	cfg      *config.ClientConfig
	maxKm    float64
	logger   *slog.Logger

	radius *debounce.Debouncer[float64]
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
	unbind func()
}

func NewExplorer(params ExplorerParams) *Explorer {
	ctx, cancel := context.WithCancel(context.Background())
	e := &Explorer{
		store:    params.Store,
		listings: params.Listings,
		geocode:  params.Geocode,
		locator:  params.Locator,
		viewport: params.Viewport,
		notifier: params.Notifier,
		cfg:      params.Client,
		maxKm:    params.Listing.MaxRadiusKm,
		logger:   params.Logger,
		ctx:      ctx,
		cancel:   cancel,
		unbind:   func() {},
	}
	e.radius = debounce.New(params.Client.RadiusDebounce, e.refreshDebounced)
	if e.viewport != nil {
		e.unbind = e.viewport.Bind(e.store)
	}

	return e
}

// Refresh queries listings around the current reference point and radius.
// A result is only applied if no newer query was issued meanwhile.
func (e *Explorer) Refresh(ctx context.Context) error {
	snap, _ := e.store.Dispatch(state.QueryIssued{})
	seq := snap.IssuedSeq

	listings, err := e.listings.Nearby(ctx, snap.Reference, snap.RadiusKm)
	if err != nil {
		e.fail("Could not load listings", err)

		return err
	}

	if _, applied := e.store.Dispatch(state.QueryResolved{Seq: seq, Listings: listings}); !applied {
		e.logger.Debug("Discarded superseded result", slog.Uint64("seq", seq))
	}

	return nil
}

// Locate asks the device for its position, recenters on it and reloads.
// On failure the reference point is left as is.
func (e *Explorer) Locate(ctx context.Context) error {
	if e.locator == nil {
		e.fail("Location unavailable", ErrLocationUnsupported)

		return ErrLocationUnsupported
	}

	e.store.Dispatch(state.ActivityChanged{Activity: state.ActivityLocating})
	defer e.store.Dispatch(state.ActivityChanged{Activity: state.ActivityIdle})

	point, err := e.locator.Locate(ctx)
	if err != nil {
		e.fail("Location unavailable", err)

		return err
	}
	if err := point.Validate(); err != nil {
		e.fail("Location unavailable", err)

		return errors.WithStack(err)
	}

	e.store.Dispatch(state.LocationChanged{Point: point})
	if e.viewport != nil {
		e.viewport.ShowUser(point)
	}

	return e.Refresh(ctx)
}

// Search geocodes query, moves the reference point there and reloads.
func (e *Explorer) Search(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		e.fail("Search", ErrQueryRequired)

		return ErrQueryRequired
	}

	e.store.Dispatch(state.ActivityChanged{Activity: state.ActivitySearching})
	defer e.store.Dispatch(state.ActivityChanged{Activity: state.ActivityIdle})

	place, err := e.geocode.SearchLocation(ctx, query)
	if err != nil {
		e.fail("Location not found", err)

		return err
	}

	e.store.Dispatch(state.LocationChanged{Point: place.Point})
	if e.viewport != nil {
		e.viewport.ShowSearchResult(place)
	}

	return e.Refresh(ctx)
}

// SetRadius updates the radius at once and reloads after the input settles.
func (e *Explorer) SetRadius(km float64) error {
	if km < 0 || km > e.maxKm {
		e.fail("Radius", ErrRadiusOutOfRange)

		return ErrRadiusOutOfRange
	}

	e.store.Dispatch(state.RadiusChanged{RadiusKm: km})
	e.radius.Trigger(km)

	return nil
}

// Settle runs a pending radius reload now.
func (e *Explorer) Settle() bool {
	return e.radius.Flush()
}

func (e *Explorer) refreshDebounced(km float64) {
	if e.ctx.Err() != nil {
		return
	}

	ctx, cancel := context.WithTimeout(e.ctx, e.cfg.RequestTimeout)
	defer cancel()

	e.logger.Debug("Radius settled", slog.Float64("radius_km", km))
	_ = e.Refresh(ctx)
}

// Focus flies to a listing of the current results without querying.
func (e *Explorer) Focus(id uuid.UUID) error {
	for _, l := range e.store.Snapshot().Listings {
		if l.ID == id {
			if e.viewport != nil {
				e.viewport.Focus(l.Location)
			}

			return nil
		}
	}

	return ErrNotInView
}

// Frame derives the sidebar and markers of the current results.
func (e *Explorer) Frame() view.Frame {
	return view.Derive(e.store.Snapshot())
}

// Reference returns the current reference point.
func (e *Explorer) Reference() entity.GeoPoint {
	return e.store.Snapshot().Reference
}

// Close drops pending reloads and detaches the viewport.
func (e *Explorer) Close() {
	e.once.Do(func() {
		e.cancel()
		e.radius.Stop()
		e.unbind()
		if e.viewport != nil {
			e.viewport.Detach()
		}
	})
}

func (e *Explorer) fail(action string, err error) {
	e.logger.Debug(action, slog.Any("error", err))
	e.notifier.Notify(NoticeError, describe(action, err))
}
