package app_test

import (
	"context"
	"testing"

	"parkospace/config"
	"parkospace/internal/client/app"
	"parkospace/internal/client/form"
	"parkospace/internal/client/gateway"
	"parkospace/internal/client/state"
	"parkospace/internal/domain/entity"
	mockApp "parkospace/internal/mocks/app"
	"parkospace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const ownerPhone = "9876543210"

var signup = form.Signup{Name: "Asha", Phone: ownerPhone, Email: "asha@example.com"}

type dashboardFixtures struct {
	dashboard *app.Dashboard
	store     *state.Store
	listings  *mockApp.MockListingAPI
	geocode   *mockApp.MockGeocodeAPI
	auth      *mockApp.MockAuthAPI
	notifier  *notifier
	confirm   bool
	prompts   []string
}

func newDashboard(t *testing.T) *dashboardFixtures {
	fx := &dashboardFixtures{
		store:    state.NewStore(state.Initial(bangalore, 5)),
		listings: mockApp.NewMockListingAPI(t),
		geocode:  mockApp.NewMockGeocodeAPI(t),
		auth:     mockApp.NewMockAuthAPI(t),
		notifier: &notifier{},
		confirm:  true,
	}

	fx.dashboard = app.NewDashboard(app.DashboardParams{
		Store:    fx.store,
		Listings: fx.listings,
		Geocode:  fx.geocode,
		Auth:     fx.auth,
		Notifier: fx.notifier,
		Confirmer: app.ConfirmFunc(func(prompt string) bool {
			fx.prompts = append(fx.prompts, prompt)

			return fx.confirm
		}),
		Pricing: config.DefaultPricingConfig(),
		Client:  clientConfig(),
		Rand:    func() float64 { return 0.5 },
		Logger:  discardLogger(),
	})

	return fx
}

// loggedIn restores a session holding portfolio.
func (fx *dashboardFixtures) loggedIn(portfolio ...*entity.Listing) {
	fx.dashboard.Restore(&entity.OwnerSession{Owner: entity.Owner{Phone: ownerPhone}, Token: "tok"})
	fx.store.Dispatch(state.PortfolioLoaded{Listings: portfolio})
}

func owned(title string) *entity.Listing {
	return &entity.Listing{
		ID:         uuid.New(),
		OwnerPhone: ownerPhone,
		Title:      title,
		Location:   bangalore,
		Dimensions: entity.Dimensions{Length: 5, Breadth: 4},
		Pricing:    entity.Pricing{Hourly: 40, Daily: 250, Monthly: 1800},
	}
}

func TestDashboard_SendOTPValidatesFirst(t *testing.T) {
	fx := newDashboard(t)

	err := fx.dashboard.SendOTP(context.Background(), form.Signup{Name: "Asha", Phone: "123", Email: "asha@example.com"})

	assert.ErrorIs(t, err, form.ErrPhoneInvalid)
	assert.Len(t, fx.notifier.errors(), 1)
}

func TestDashboard_SendOTP(t *testing.T) {
	fx := newDashboard(t)
	fx.auth.EXPECT().SendOTP(mock.Anything, "asha@example.com", ownerPhone).Return(nil)

	require.NoError(t, fx.dashboard.SendOTP(context.Background(), signup))
	assert.Equal(t, []notice{{level: app.NoticeInfo, message: "Code sent to asha@example.com"}}, fx.notifier.all())
}

func TestDashboard_VerifyLoadsPortfolio(t *testing.T) {
	fx := newDashboard(t)
	session := &entity.OwnerSession{Owner: entity.Owner{Phone: ownerPhone, Name: "Asha"}, Token: "tok"}
	mine := owned("Basement bay")

	fx.auth.EXPECT().VerifyOwner(mock.Anything, &usecase.VerifyOwnerInput{
		Phone: ownerPhone, Email: "asha@example.com", Code: "123456", Name: "Asha",
	}).Return(session, nil)
	fx.listings.EXPECT().Portfolio(mock.Anything, ownerPhone).Return([]*entity.Listing{mine}, nil)

	require.NoError(t, fx.dashboard.Verify(context.Background(), signup, " 123456 "))

	snap := fx.store.Snapshot()
	assert.Equal(t, ownerPhone, snap.OwnerPhone())
	require.Len(t, fx.dashboard.Portfolio(), 1)
	assert.Equal(t, "ACTIVE", fx.dashboard.Portfolio()[0].Status)
}

func TestDashboard_VerifyFailure(t *testing.T) {
	fx := newDashboard(t)
	fx.auth.EXPECT().VerifyOwner(mock.Anything, mock.Anything).
		Return(nil, &gateway.APIError{Status: 401, Code: "OTP_INVALID", Message: "Invalid or expired OTP"})

	err := fx.dashboard.Verify(context.Background(), signup, "000000")

	require.Error(t, err)
	assert.Nil(t, fx.store.Snapshot().Session)
	assert.Equal(t, []string{"Verification failed: Invalid or expired OTP"}, fx.notifier.errors())
}

func TestDashboard_VerifyRequiresCode(t *testing.T) {
	fx := newDashboard(t)

	assert.ErrorIs(t, fx.dashboard.Verify(context.Background(), signup, " "), form.ErrCodeRequired)
}

func TestDashboard_SubmitComputesMonthlyFromArea(t *testing.T) {
	fx := newDashboard(t)
	fx.loggedIn()

	fx.listings.EXPECT().CreateListing(mock.Anything, "tok", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, d *entity.ListingDraft) (*entity.Listing, error) {
			return &entity.Listing{ID: uuid.New(), Title: d.Title, Pricing: d.Pricing, Location: *d.Location}, nil
		})
	fx.listings.EXPECT().Portfolio(mock.Anything, ownerPhone).Return(nil, nil)

	listing, err := fx.dashboard.Submit(context.Background(), form.Fields{Title: "Bay", Length: 5, Breadth: 4, Hourly: 50})
	require.NoError(t, err)

	assert.Equal(t, 2000.0, listing.Pricing.Monthly)
	assert.Equal(t, 300.0, listing.Pricing.Daily)
	assert.Equal(t, bangalore, listing.Location)
	assert.Contains(t, fx.notifier.all(), notice{level: app.NoticeInfo, message: "Listed!"})
}

func TestDashboard_SubmitKeepsMonthlyOverride(t *testing.T) {
	fx := newDashboard(t)
	fx.loggedIn()

	fx.listings.EXPECT().CreateListing(mock.Anything, "tok", mock.MatchedBy(func(d *entity.ListingDraft) bool {
		return d.Pricing.Monthly == 1500
	})).Return(&entity.Listing{ID: uuid.New()}, nil)
	fx.listings.EXPECT().Portfolio(mock.Anything, ownerPhone).Return(nil, nil)

	_, err := fx.dashboard.Submit(context.Background(), form.Fields{Title: "Bay", Length: 5, Breadth: 4, Monthly: 1500, MonthlyEdited: true})
	require.NoError(t, err)
}

func TestDashboard_SubmitRequiresSession(t *testing.T) {
	fx := newDashboard(t)

	_, err := fx.dashboard.Submit(context.Background(), form.Fields{Title: "Bay"})

	assert.ErrorIs(t, err, app.ErrNotLoggedIn)
}

func TestDashboard_SubmitWithPendingMapLink(t *testing.T) {
	fx := newDashboard(t)
	fx.loggedIn()
	place := &entity.Place{Point: entity.GeoPoint{Lat: 12.93, Lng: 77.62}, Address: "Koramangala"}

	fx.geocode.EXPECT().ParseMapURL(mock.Anything, "https://maps.app.goo.gl/x").Return(place, nil)
	fx.listings.EXPECT().CreateListing(mock.Anything, "tok", mock.MatchedBy(func(d *entity.ListingDraft) bool {
		return d.Location != nil && *d.Location == place.Point && d.AddressText == "Koramangala"
	})).Return(&entity.Listing{ID: uuid.New()}, nil)
	fx.listings.EXPECT().Portfolio(mock.Anything, ownerPhone).Return(nil, nil)

	_, err := fx.dashboard.ParseMapLink(context.Background(), " https://maps.app.goo.gl/x ")
	require.NoError(t, err)
	require.Equal(t, place, fx.dashboard.Form().Pending)

	_, err = fx.dashboard.Submit(context.Background(), form.Fields{Title: "Bay"})
	require.NoError(t, err)
	assert.Nil(t, fx.dashboard.Form().Pending)
}

func TestDashboard_EditThenCancel(t *testing.T) {
	fx := newDashboard(t)
	x := owned("Basement bay")
	fx.loggedIn(x)
	fx.store.Dispatch(state.PendingLocationSet{Place: &entity.Place{Point: bangalore}})

	fields, err := fx.dashboard.Edit(x.ID)
	require.NoError(t, err)

	assert.Equal(t, "Basement bay", fields.Title)
	assert.Equal(t, 1800.0, fields.Monthly)
	f := fx.dashboard.Form()
	assert.Equal(t, state.FormEditing, f.Mode)
	assert.Equal(t, x.ID, f.EditingID)
	assert.Nil(t, f.Pending)
	assert.True(t, fx.dashboard.Portfolio()[0].Editing)

	fx.dashboard.Cancel()

	f = fx.dashboard.Form()
	assert.Equal(t, state.FormCreating, f.Mode)
	assert.Equal(t, uuid.Nil, f.EditingID)
	assert.Nil(t, f.Pending)
}

func TestDashboard_EditUnknown(t *testing.T) {
	fx := newDashboard(t)
	fx.loggedIn()

	_, err := fx.dashboard.Edit(uuid.New())
	assert.ErrorIs(t, err, app.ErrNotInPortfolio)
}

func TestDashboard_SubmitWhileEditingKeepsLocation(t *testing.T) {
	fx := newDashboard(t)
	x := owned("Basement bay")
	fx.loggedIn(x)

	fields, err := fx.dashboard.Edit(x.ID)
	require.NoError(t, err)
	fields.Title = "Covered bay"

	fx.listings.EXPECT().UpdateListing(mock.Anything, "tok", x.ID, mock.MatchedBy(func(d *entity.ListingDraft) bool {
		return d.Location == nil && d.Title == "Covered bay" && d.Pricing.Monthly == 1800
	})).Return(&entity.Listing{ID: x.ID, Title: "Covered bay"}, nil)
	fx.listings.EXPECT().Portfolio(mock.Anything, ownerPhone).Return([]*entity.Listing{x}, nil)

	_, err = fx.dashboard.Submit(context.Background(), fields)
	require.NoError(t, err)

	assert.Equal(t, state.FormCreating, fx.dashboard.Form().Mode)
	assert.Contains(t, fx.notifier.all(), notice{level: app.NoticeInfo, message: "Updated!"})
}

func TestDashboard_DeleteRejectedKeepsItem(t *testing.T) {
	fx := newDashboard(t)
	x := owned("Someone else's bay")
	fx.loggedIn(x)

	fx.listings.EXPECT().DeleteListing(mock.Anything, "tok", x.ID).
		Return(&gateway.APIError{Status: 403, Code: "LISTING_OWNERSHIP_VIOLATION", Message: "You can only change your own listings"})

	err := fx.dashboard.Delete(context.Background(), x.ID)

	require.Error(t, err)
	assert.Equal(t, []*entity.Listing{x}, fx.store.Snapshot().Portfolio)
	assert.Equal(t, []string{"Remove listing?"}, fx.prompts)
	assert.Len(t, fx.notifier.errors(), 1)
}

func TestDashboard_DeleteDeclined(t *testing.T) {
	fx := newDashboard(t)
	x := owned("Bay")
	fx.loggedIn(x)
	fx.confirm = false

	assert.ErrorIs(t, fx.dashboard.Delete(context.Background(), x.ID), app.ErrCancelled)
	assert.Len(t, fx.store.Snapshot().Portfolio, 1)
}

func TestDashboard_Delete(t *testing.T) {
	fx := newDashboard(t)
	x, y := owned("x"), owned("y")
	fx.loggedIn(x, y)
	refresher := &countingRefresher{}
	fx.dashboard = app.NewDashboard(app.DashboardParams{
		Store:     fx.store,
		Listings:  fx.listings,
		Notifier:  fx.notifier,
		Confirmer: app.ConfirmFunc(func(string) bool { return true }),
		Refresher: refresher,
		Pricing:   config.DefaultPricingConfig(),
		Client:    clientConfig(),
		Logger:    discardLogger(),
	})

	fx.listings.EXPECT().DeleteListing(mock.Anything, "tok", x.ID).Return(nil)
	fx.listings.EXPECT().Portfolio(mock.Anything, ownerPhone).Return(nil, errors.New("offline"))

	require.NoError(t, fx.dashboard.Delete(context.Background(), x.ID))

	assert.Equal(t, []*entity.Listing{y}, fx.store.Snapshot().Portfolio)
	assert.Equal(t, 1, refresher.calls)
}

func TestDashboard_Logout(t *testing.T) {
	fx := newDashboard(t)
	fx.loggedIn(owned("Bay"))

	fx.confirm = false
	assert.False(t, fx.dashboard.Logout())
	assert.NotNil(t, fx.store.Snapshot().Session)

	fx.confirm = true
	assert.True(t, fx.dashboard.Logout())
	snap := fx.store.Snapshot()
	assert.Nil(t, snap.Session)
	assert.Empty(t, snap.Portfolio)
	assert.Equal(t, []string{"Log out?", "Log out?"}, fx.prompts)
}

func TestDashboard_Preview(t *testing.T) {
	fx := newDashboard(t)

	f := fx.dashboard.Preview(form.Fields{Length: 5, Breadth: 4})
	assert.Equal(t, 2000.0, f.Monthly)
}

type countingRefresher struct {
	calls int
}

func (r *countingRefresher) Refresh(context.Context) error {
	r.calls++

	return nil
}
