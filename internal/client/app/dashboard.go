package app

import (
	"context"
	"log/slog"
	"strings"

	"parkospace/config"
	"parkospace/internal/client/form"
	"parkospace/internal/client/state"
	"parkospace/internal/client/view"
	"parkospace/internal/domain/entity"
	"parkospace/internal/usecase"

	"github.com/google/uuid"
)

// Refresher reloads the public map after an owner write.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type DashboardParams struct {
	Store     *state.Store
	Listings  ListingAPI
	Geocode   GeocodeAPI
	Auth      AuthAPI
	Notifier  Notifier
	Confirmer Confirmer
	// Refresher is optional.
	Refresher Refresher
	Pricing   *config.PricingConfig
	Client    *config.ClientConfig
	// Rand feeds the location jitter. nil uses math/rand.
	Rand   func() float64
	Logger *slog.Logger
}

// Dashboard runs the owner flows: login, portfolio and the listing form.
type Dashboard struct {
	store     *state.Store
	listings  ListingAPI
	geocode   GeocodeAPI
	auth      AuthAPI
	notifier  Notifier
	confirmer Confirmer
	refresher Refresher
	pricing   *config.PricingConfig
	jitter    float64
	rand      func() float64
	logger    *slog.Logger
}

func NewDashboard(params DashboardParams) *Dashboard {
	return &Dashboard{
		store:     params.Store,
		listings:  params.Listings,
		geocode:   params.Geocode,
		auth:      params.Auth,
		notifier:  params.Notifier,
		confirmer: params.Confirmer,
		refresher: params.Refresher,
		pricing:   params.Pricing,
		jitter:    params.Client.JitterDegrees,
		rand:      params.Rand,
		logger:    params.Logger,
	}
}

// SendOTP validates the signup form and emails a code.
func (d *Dashboard) SendOTP(ctx context.Context, signup form.Signup) error {
	if err := signup.Validate(); err != nil {
		d.fail("Check your details", err)

		return err
	}

	if err := d.auth.SendOTP(ctx, strings.TrimSpace(signup.Email), signup.Phone); err != nil {
		d.fail("Could not send code", err)

		return err
	}

	d.notifier.Notify(NoticeInfo, "Code sent to "+signup.Email)

	return nil
}

// Verify exchanges the code for a session and loads the portfolio.
func (d *Dashboard) Verify(ctx context.Context, signup form.Signup, code string) error {
	if err := signup.Validate(); err != nil {
		d.fail("Check your details", err)

		return err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		d.fail("Check your details", form.ErrCodeRequired)

		return form.ErrCodeRequired
	}

	session, err := d.auth.VerifyOwner(ctx, &usecase.VerifyOwnerInput{
		Phone: signup.Phone,
		Email: strings.TrimSpace(signup.Email),
		Code:  code,
		Name:  strings.TrimSpace(signup.Name),
	})
	if err != nil {
		d.fail("Verification failed", err)

		return err
	}

	d.store.Dispatch(state.SessionChanged{Session: session})
	d.logger.Info("Owner logged in", slog.String("phone", session.Owner.Phone))

	return d.LoadPortfolio(ctx)
}

// Restore resumes a saved session without a new login.
func (d *Dashboard) Restore(session *entity.OwnerSession) {
	d.store.Dispatch(state.SessionChanged{Session: session})
}

// Logout ends the session after confirmation. It reports whether the user confirmed.
func (d *Dashboard) Logout() bool {
	if !d.confirmer.Confirm("Log out?") {
		return false
	}

	d.store.Dispatch(state.SessionChanged{})

	return true
}

// LoadPortfolio replaces the portfolio with the owner's listings.
func (d *Dashboard) LoadPortfolio(ctx context.Context) error {
	snap := d.store.Snapshot()
	if snap.Session == nil {
		return ErrNotLoggedIn
	}

	listings, err := d.listings.Portfolio(ctx, snap.OwnerPhone())
	if err != nil {
		d.fail("Could not load your listings", err)

		return err
	}

	d.store.Dispatch(state.PortfolioLoaded{Listings: listings})

	return nil
}

// Portfolio renders the loaded portfolio.
func (d *Dashboard) Portfolio() []view.PortfolioItem {
	snap := d.store.Snapshot()

	return view.DerivePortfolio(snap.Portfolio, snap.Form.EditingID)
}

// Edit binds the form to a portfolio listing and returns its fields.
func (d *Dashboard) Edit(id uuid.UUID) (form.Fields, error) {
	for _, l := range d.store.Snapshot().Portfolio {
		if l.ID == id {
			d.store.Dispatch(state.FormEditStarted{Listing: l})

			return form.FieldsOf(l), nil
		}
	}

	return form.Fields{}, ErrNotInPortfolio
}

// Cancel returns the form to creating a new listing.
func (d *Dashboard) Cancel() {
	d.store.Dispatch(state.FormCancelled{})
}

// Form returns the current form target.
func (d *Dashboard) Form() state.Form {
	return d.store.Snapshot().Form
}

// Preview applies the price suggestions for the current form mode.
func (d *Dashboard) Preview(f form.Fields) form.Fields {
	return form.Preview(f, d.store.Snapshot().Form.Mode, d.pricing)
}

// ParseMapLink resolves a shared map link into the location attached on submit.
func (d *Dashboard) ParseMapLink(ctx context.Context, rawURL string) (*entity.Place, error) {
	place, err := d.geocode.ParseMapURL(ctx, strings.TrimSpace(rawURL))
	if err != nil {
		d.fail("Could not read map link", err)

		return nil, err
	}

	d.store.Dispatch(state.PendingLocationSet{Place: place})
	d.notifier.Notify(NoticeInfo, "Location detected: "+place.Address)

	return place, nil
}

// Submit creates or updates a listing depending on the form mode.
func (d *Dashboard) Submit(ctx context.Context, fields form.Fields) (*entity.Listing, error) {
	snap := d.store.Snapshot()
	if snap.Session == nil {
		d.fail("Save listing", ErrNotLoggedIn)

		return nil, ErrNotLoggedIn
	}

	fields = form.Preview(fields, snap.Form.Mode, d.pricing)
	draft, err := form.Draft(fields, snap.Form, snap.Reference, d.jitter, d.rand)
	if err != nil {
		d.fail("Check your listing", err)

		return nil, err
	}

	var (
		listing *entity.Listing
		done    string
	)
	if snap.Form.Mode == state.FormEditing {
		listing, err = d.listings.UpdateListing(ctx, snap.Session.Token, snap.Form.EditingID, draft)
		done = "Updated!"
	} else {
		listing, err = d.listings.CreateListing(ctx, snap.Session.Token, draft)
		done = "Listed!"
	}
	if err != nil {
		d.fail("Could not save listing", err)

		return nil, err
	}

	d.store.Dispatch(state.FormSubmitted{})
	d.notifier.Notify(NoticeInfo, done)
	d.afterWrite(ctx)

	return listing, nil
}

// Delete removes a listing after confirmation. The portfolio only changes once the server accepted.
func (d *Dashboard) Delete(ctx context.Context, id uuid.UUID) error {
	snap := d.store.Snapshot()
	if snap.Session == nil {
		d.fail("Remove listing", ErrNotLoggedIn)

		return ErrNotLoggedIn
	}
	if !d.confirmer.Confirm("Remove listing?") {
		return ErrCancelled
	}

	if err := d.listings.DeleteListing(ctx, snap.Session.Token, id); err != nil {
		d.fail("Could not remove listing", err)

		return err
	}

	d.store.Dispatch(state.PortfolioItemRemoved{ID: id})
	d.afterWrite(ctx)

	return nil
}

func (d *Dashboard) afterWrite(ctx context.Context) {
	_ = d.LoadPortfolio(ctx)
	if d.refresher != nil {
		_ = d.refresher.Refresh(ctx)
	}
}

func (d *Dashboard) fail(action string, err error) {
	d.logger.Debug(action, slog.Any("error", err))
	d.notifier.Notify(NoticeError, describe(action, err))
}
