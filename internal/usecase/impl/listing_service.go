// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"parkospace/config"
	deliverycontext "parkospace/internal/delivery/context"
	"parkospace/internal/domain/entity"
	domainerrors "parkospace/internal/domain/errors"
	"parkospace/internal/domain/geo"
	"parkospace/internal/domain/repository"
	"parkospace/internal/domain/service"
	"parkospace/internal/usecase"
	"parkospace/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	writeOpCreate = "create"
	writeOpUpdate = "update"
	writeOpDelete = "delete"
)

type listingService struct {
	listingRepo repository.ListingRepository
	qrcodeSvc   service.QRCodeService
	recorder    service.ListingRecorder
	maxRadiusKm float64
	now         func() time.Time
	logger      *slog.Logger
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	QRCodeSvc   service.QRCodeService
	Recorder    service.ListingRecorder `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewListingService creates a new listing service instance
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	maxRadius := config.DefaultListingConfig().MaxRadiusKm
	if params.Config != nil && params.Config.Listing != nil && params.Config.Listing.MaxRadiusKm > 0 {
		maxRadius = params.Config.Listing.MaxRadiusKm
	}

	return &listingService{
		listingRepo: params.ListingRepo,
		qrcodeSvc:   params.QRCodeSvc,
		recorder:    params.Recorder,
		maxRadiusKm: maxRadius,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (s *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// FindNearby runs an area query. An empty result is a success.
func (s *listingService) FindNearby(ctx context.Context, center entity.GeoPoint, radiusKm float64) ([]entity.NearbyListing, error) {
	start := time.Now()

	if err := center.Validate(); err != nil {
		s.observeQuery(service.QueryModeArea, service.OutcomeInvalid, start, 0)

		return nil, domainerrors.ErrInvalidLocation.WithDetails(center.String())
	}
	if math.IsNaN(radiusKm) || radiusKm < 0 || radiusKm > s.maxRadiusKm {
		s.observeQuery(service.QueryModeArea, service.OutcomeInvalid, start, 0)

		return nil, domainerrors.ErrInvalidRadius.WithDetails(
			"radius must be between 0 and " + util.FormatKm(s.maxRadiusKm))
	}

	var bound *orb.Bound
	if b, ok := geo.SearchBound(center, radiusKm); ok {
		bound = &b
	}

	candidates, err := s.listingRepo.FindInBound(ctx, bound)
	if err != nil {
		s.observeQuery(service.QueryModeArea, service.OutcomeError, start, 0)
		s.log(ctx).Error("Failed to query listings", slog.String("center", center.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to query listings in bound")
	}

	nearby := geo.FilterByRadius(center, radiusKm, candidates)

	outcome := service.OutcomeSuccess
	if len(nearby) == 0 {
		outcome = service.OutcomeEmpty
	}
	s.observeQuery(service.QueryModeArea, outcome, start, len(nearby))

	s.log(ctx).Debug("Nearby query",
		slog.String("center", center.String()),
		slog.Float64("radiusKm", radiusKm),
		slog.Int("candidates", len(candidates)),
		slog.Int("results", len(nearby)),
	)

	return nearby, nil
}

// FindByOwner returns the owner's portfolio, oldest first.
func (s *listingService) FindByOwner(ctx context.Context, ownerPhone string) ([]*entity.Listing, error) {
	start := time.Now()

	listings, err := s.listingRepo.FindByOwner(ctx, ownerPhone)
	if err != nil {
		s.observeQuery(service.QueryModeOwner, service.OutcomeError, start, 0)

		return nil, errors.Wrap(err, "failed to find listings by owner")
	}

	outcome := service.OutcomeSuccess
	if len(listings) == 0 {
		outcome = service.OutcomeEmpty
	}
	s.observeQuery(service.QueryModeOwner, outcome, start, len(listings))

	return listings, nil
}

func (s *listingService) Get(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return listing, nil
}

// Create publishes a new listing for ownerPhone. A location is required.
func (s *listingService) Create(ctx context.Context, ownerPhone string, draft *entity.ListingDraft) (*entity.Listing, error) {
	if ownerPhone == "" {
		return nil, domainerrors.ErrUnauthorized
	}
	if err := validateDraft(draft); err != nil {
		s.observeWrite(writeOpCreate, service.OutcomeInvalid)

		return nil, err
	}
	if draft.Location == nil {
		s.observeWrite(writeOpCreate, service.OutcomeInvalid)

		return nil, domainerrors.ErrInvalidLocation.WithDetails("location is required")
	}

	listing := &entity.Listing{
		ID:         uuid.New(),
		OwnerPhone: ownerPhone,
		CreatedAt:  s.now().UTC(),
	}
	draft.Apply(listing)
	if listing.Amenities == nil {
		listing.Amenities = []string{}
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		s.observeWrite(writeOpCreate, service.OutcomeError)

		return nil, err
	}

	s.observeWrite(writeOpCreate, service.OutcomeSuccess)
	s.log(ctx).Info("Listing created", slog.String("listingID", listing.ID.String()), slog.String("ownerPhone", ownerPhone))

	return listing, nil
}

// Update overwrites an owned listing. Location and address are kept unless the draft carries a new location.
func (s *listingService) Update(ctx context.Context, ownerPhone string, id uuid.UUID, draft *entity.ListingDraft) (*entity.Listing, error) {
	if ownerPhone == "" {
		return nil, domainerrors.ErrUnauthorized
	}
	if err := validateDraft(draft); err != nil {
		s.observeWrite(writeOpUpdate, service.OutcomeInvalid)

		return nil, err
	}

	listing, err := s.ownedListing(ctx, ownerPhone, id)
	if err != nil {
		s.observeWrite(writeOpUpdate, service.OutcomeInvalid)

		return nil, err
	}

	draft.Apply(listing)

	if err := s.listingRepo.Update(ctx, ownerPhone, listing); err != nil {
		s.observeWrite(writeOpUpdate, service.OutcomeError)
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingOwnershipViolation
		}

		return nil, err
	}

	s.observeWrite(writeOpUpdate, service.OutcomeSuccess)

	return listing, nil
}

// Delete removes an owned listing.
func (s *listingService) Delete(ctx context.Context, ownerPhone string, id uuid.UUID) error {
	if ownerPhone == "" {
		return domainerrors.ErrUnauthorized
	}

	if _, err := s.ownedListing(ctx, ownerPhone, id); err != nil {
		s.observeWrite(writeOpDelete, service.OutcomeInvalid)

		return err
	}

	if err := s.listingRepo.Delete(ctx, id, ownerPhone); err != nil {
		s.observeWrite(writeOpDelete, service.OutcomeError)
		if errors.Is(err, repository.ErrListingNotFound) {
			return domainerrors.ErrListingOwnershipViolation
		}

		return err
	}

	s.observeWrite(writeOpDelete, service.OutcomeSuccess)
	s.log(ctx).Info("Listing deleted", slog.String("listingID", id.String()), slog.String("ownerPhone", ownerPhone))

	return nil
}

func (s *listingService) QRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	listing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeSvc.GenerateListingQR(listing)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing QR code")
	}

	return png, nil
}

// ownedListing loads a listing and checks it belongs to ownerPhone.
func (s *listingService) ownedListing(ctx context.Context, ownerPhone string, id uuid.UUID) (*entity.Listing, error) {
	listing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.OwnerPhone != ownerPhone {
		s.log(ctx).Warn("Listing ownership violation",
			slog.String("listingID", id.String()),
			slog.String("ownerPhone", ownerPhone),
		)

		return nil, domainerrors.ErrListingOwnershipViolation
	}

	return listing, nil
}

func (s *listingService) observeQuery(mode, outcome string, start time.Time, results int) {
	if s.recorder == nil {
		return
	}
	s.recorder.ObserveQuery(mode, outcome, time.Since(start), results)
}

func (s *listingService) observeWrite(op, outcome string) {
	if s.recorder == nil {
		return
	}
	s.recorder.ObserveWrite(op, outcome)
}

func validateDraft(draft *entity.ListingDraft) error {
	if draft == nil {
		return domainerrors.ErrInvalidListing.WithDetails("listing data is required")
	}

	err := draft.Validate()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, entity.ErrInvalidCoordinates):
		return domainerrors.ErrInvalidLocation.WithDetails(err.Error())
	default:
		return domainerrors.ErrInvalidListing.WithDetails(err.Error())
	}
}
