package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"parkospace/config"
	"parkospace/internal/delivery/http/dto"
	"parkospace/internal/delivery/http/middleware"
	"parkospace/internal/delivery/http/response"
	"parkospace/internal/delivery/http/router/handler"
	"parkospace/internal/delivery/http/validator"
	"parkospace/internal/domain/entity"
	domainerrors "parkospace/internal/domain/errors"
	"parkospace/internal/domain/service"
	"parkospace/internal/infra/metrics"
	mockSvc "parkospace/internal/mocks/service"
	mockUC "parkospace/internal/mocks/usecase"
	"parkospace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type routerFixtures struct {
	echo      *echo.Echo
	listingUC *mockUC.MockListingUsecase
	geocodeUC *mockUC.MockGeocodeUsecase
	authUC    *mockUC.MockAuthUsecase
	tokenSvc  *mockSvc.MockTokenService
}

func createTestRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := routerFixtures{
		listingUC: mockUC.NewMockListingUsecase(t),
		geocodeUC: mockUC.NewMockGeocodeUsecase(t),
		authUC:    mockUC.NewMockAuthUsecase(t),
		tokenSvc:  mockSvc.NewMockTokenService(t),
	}

	collector, err := metrics.NewListingCollector(metrics.NewRegistry())
	require.NoError(t, err)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		ListingHandler: handler.NewListingHandler(handler.ListingHandlerParams{
			ListingUC: fx.listingUC,
			Config:    &config.Config{Listing: config.DefaultListingConfig()},
			Logger:    logger,
		}),
		GeocodeHandler: handler.NewGeocodeHandler(handler.GeocodeHandlerParams{GeocodeUC: fx.geocodeUC, Logger: logger}),
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			AuthUC:       fx.authUC,
			TokenService: fx.tokenSvc,
			Logger:       logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(fx.tokenSvc),
		Metrics:        collector,
	}).RegisterRoutes(e)

	fx.echo = e

	return fx
}

func (fx routerFixtures) do(method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func (fx routerFixtures) expectOwner(phone string) {
	fx.tokenSvc.EXPECT().ValidateToken(testToken).Return(&service.Claims{Phone: phone}, nil)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) response.Envelope[T] {
	t.Helper()

	var env response.Envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestRouter_Health(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[map[string]string](t, rec).Success)
}

func TestRouter_Metrics(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_ListListings_DefaultsToConfiguredPoint(t *testing.T) {
	fx := createTestRouter(t)

	a := entity.NearbyListing{Listing: entity.Listing{ID: uuid.New(), Title: "a"}, DistanceKm: 1.2}
	b := entity.NearbyListing{Listing: entity.Listing{ID: uuid.New(), Title: "b", IsSold: true}, DistanceKm: 4.9}
	fx.listingUC.EXPECT().
		FindNearby(mock.Anything, entity.GeoPoint{Lat: 12.9716, Lng: 77.5946}, 5.0).
		Return([]entity.NearbyListing{a, b}, nil)

	rec := fx.do(http.MethodGet, "/api/listings", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decode[[]dto.Listing](t, rec)
	require.Len(t, env.Data, 2)
	assert.Equal(t, a.ID, env.Data[0].ID)
	assert.Equal(t, 1.2, *env.Data[0].Distance)
	assert.Equal(t, b.ID, env.Data[1].ID)
	assert.True(t, env.Data[1].IsSold)
	assert.Equal(t, []string{}, env.Data[0].Amenities)
}

func TestRouter_ListListings_QueryParams(t *testing.T) {
	fx := createTestRouter(t)

	fx.listingUC.EXPECT().
		FindNearby(mock.Anything, entity.GeoPoint{Lat: 12.97, Lng: 77.59}, 2.5).
		Return([]entity.NearbyListing{}, nil)

	rec := fx.do(http.MethodGet, "/api/listings?lat=12.97&lng=77.59&radius=2.5", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]dto.Listing](t, rec).Data)
}

func TestRouter_ListListings_OwnerMode(t *testing.T) {
	fx := createTestRouter(t)

	owned := []*entity.Listing{{ID: uuid.New(), OwnerPhone: "9000000001", Title: "mine"}}
	fx.listingUC.EXPECT().FindByOwner(mock.Anything, "9000000001").Return(owned, nil)

	rec := fx.do(http.MethodGet, "/api/listings?owner_phone=9000000001&lat=1&lng=1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decode[[]dto.Listing](t, rec)
	require.Len(t, env.Data, 1)
	assert.Nil(t, env.Data[0].Distance)
}

func TestRouter_ListListings_BadInput(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.do(http.MethodGet, "/api/listings?lat=north", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QUERY", decode[any](t, rec).Error.Code)

	fx.listingUC.EXPECT().
		FindNearby(mock.Anything, mock.Anything, 500.0).
		Return(nil, domainerrors.ErrInvalidRadius.WithDetails("radius must be between 0 and 50.0km"))

	rec = fx.do(http.MethodGet, "/api/listings?radius=500", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode[any](t, rec)
	assert.Equal(t, "INVALID_RADIUS", env.Error.Code)
	assert.Equal(t, "radius must be between 0 and 50.0km", env.Error.Details)
}

func TestRouter_CreateListing(t *testing.T) {
	fx := createTestRouter(t)
	fx.expectOwner("9000000001")

	created := &entity.Listing{ID: uuid.New(), OwnerPhone: "9000000001", Title: "Basement slot"}
	fx.listingUC.EXPECT().
		Create(mock.Anything, "9000000001", mock.MatchedBy(func(d *entity.ListingDraft) bool {
			return d.Title == "Basement slot" && d.Location != nil && d.Location.Lat == 12.97 && d.Pricing.Monthly == 2000
		})).
		Return(created, nil)

	body := `{"title":"Basement slot","lat":12.97,"lng":77.59,"length":5,"breadth":4,"price_hourly":50,"price_daily":300,"price_monthly":2000}`
	rec := fx.do(http.MethodPost, "/api/listings", body, testToken)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, created.ID, decode[dto.Listing](t, rec).Data.ID)
}

func TestRouter_CreateListing_RequiresSession(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.do(http.MethodPost, "/api/listings", `{"title":"x"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	fx.tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
	rec = fx.do(http.MethodPost, "/api/listings", `{"title":"x"}`, "expired")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", decode[any](t, rec).Error.Code)
}

func TestRouter_CreateListing_ValidationError(t *testing.T) {
	fx := createTestRouter(t)
	fx.expectOwner("9000000001")

	rec := fx.do(http.MethodPost, "/api/listings", `{"title":"","price_hourly":-1}`, testToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decode[any](t, rec)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "title is required")
	assert.Contains(t, env.Error.Details, "price_hourly must be at least 0")
}

func TestRouter_UpdateListing_OwnershipViolation(t *testing.T) {
	fx := createTestRouter(t)
	fx.expectOwner("9000000002")
	id := uuid.New()

	fx.listingUC.EXPECT().
		Update(mock.Anything, "9000000002", id, mock.Anything).
		Return(nil, domainerrors.ErrListingOwnershipViolation)

	rec := fx.do(http.MethodPut, "/api/listings/"+id.String(), `{"title":"taken"}`, testToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "LISTING_OWNERSHIP_VIOLATION", decode[any](t, rec).Error.Code)
}

func TestRouter_DeleteListing(t *testing.T) {
	fx := createTestRouter(t)
	fx.expectOwner("9000000001")
	id := uuid.New()

	fx.listingUC.EXPECT().Delete(mock.Anything, "9000000001", id).Return(nil)

	rec := fx.do(http.MethodDelete, "/api/listings/"+id.String(), "", testToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_DeleteListing_InvalidID(t *testing.T) {
	fx := createTestRouter(t)
	fx.expectOwner("9000000001")

	rec := fx.do(http.MethodDelete, "/api/listings/not-a-uuid", "", testToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decode[any](t, rec).Error.Code)
}

func TestRouter_ListingQRCode(t *testing.T) {
	fx := createTestRouter(t)
	id := uuid.New()

	fx.listingUC.EXPECT().QRCode(mock.Anything, id).Return([]byte("\x89PNG"), nil)

	rec := fx.do(http.MethodGet, "/api/listings/"+id.String()+"/qrcode", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestRouter_SearchLocation(t *testing.T) {
	fx := createTestRouter(t)

	fx.geocodeUC.EXPECT().
		SearchLocation(mock.Anything, "Indiranagar").
		Return(&entity.Place{Point: entity.GeoPoint{Lat: 12.97, Lng: 77.64}, Address: "Indiranagar, Bengaluru"}, nil)

	rec := fx.do(http.MethodPost, "/api/utils/search-location", `{"query":"Indiranagar"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	place := decode[dto.Place](t, rec).Data
	assert.Equal(t, 12.97, place.Lat)
	assert.Equal(t, "Indiranagar, Bengaluru", place.Address)
}

func TestRouter_ParseMapURL_Unresolved(t *testing.T) {
	fx := createTestRouter(t)

	fx.geocodeUC.EXPECT().
		ParseMapLink(mock.Anything, "https://example.com/nowhere").
		Return(nil, domainerrors.ErrMapLinkUnresolved)

	rec := fx.do(http.MethodPost, "/api/utils/parse-map-url", `{"url":"https://example.com/nowhere"}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	env := decode[any](t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Could not detect location. Try a standard Google Maps link.", env.Message)
}

func TestRouter_SendOTP(t *testing.T) {
	fx := createTestRouter(t)

	fx.authUC.EXPECT().SendOTP(mock.Anything, "owner@example.com", "9000000001").Return(nil)

	rec := fx.do(http.MethodPost, "/api/auth/send-otp", `{"email":"owner@example.com","phone":"9000000001"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OTP sent to email", decode[any](t, rec).Message)
}

func TestRouter_VerifyOwner(t *testing.T) {
	fx := createTestRouter(t)

	fx.authUC.EXPECT().
		VerifyOwner(mock.Anything, &usecase.VerifyOwnerInput{Phone: "9000000001", Email: "owner@example.com", Code: "123456", Name: "Asha"}).
		Return(&entity.OwnerSession{Owner: entity.Owner{Phone: "9000000001", Name: "Asha"}, Token: "signed"}, nil)
	fx.tokenSvc.EXPECT().TokenTTL().Return(24 * time.Hour)

	rec := fx.do(http.MethodPost, "/api/auth/verify-owner", `{"phone":"9000000001","email":"owner@example.com","code":"123456","name":"Asha"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	session := decode[dto.Session](t, rec).Data
	assert.Equal(t, "signed", session.Token)
	assert.Equal(t, "9000000001", session.User.Phone)
	assert.Equal(t, int64(86400), session.ExpiresIn)
}

func TestRouter_VerifyOwner_InvalidCode(t *testing.T) {
	fx := createTestRouter(t)

	fx.authUC.EXPECT().VerifyOwner(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrOTPInvalid)

	rec := fx.do(http.MethodPost, "/api/auth/verify-owner", `{"phone":"1","email":"a@b.c","code":"0"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid OTP Code", decode[any](t, rec).Message)
}

func TestRouter_UnhandledErrorIsGeneric(t *testing.T) {
	fx := createTestRouter(t)

	fx.listingUC.EXPECT().FindByOwner(mock.Anything, "9000000001").Return(nil, errors.New("pq: connection refused"))

	rec := fx.do(http.MethodGet, "/api/listings?owner_phone=9000000001", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	env := decode[any](t, rec)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
