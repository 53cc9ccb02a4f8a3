package postgres

import (
	"context"

	"parkospace/internal/domain/entity"
	domainerrors "parkospace/internal/domain/errors"
	"parkospace/internal/domain/repository"
	"parkospace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		switch classifyViolation(err) {
		case violationUnique:
			return domainerrors.ErrConflict.WrapMessage("listing id already exists")
		case violationNotNull, violationCheck:
			return domainerrors.ErrInvalidListing.WrapMessage("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.CreatedAt = listingM.CreatedAt

	return nil
}

func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by id")
	}

	return toListingDomain(&listingM), nil
}

func (repo *listingRepository) FindByOwner(ctx context.Context, ownerPhone string) ([]*entity.Listing, error) {
	var listingMs []*model.ListingModel
	err := repo.db.WithContext(ctx).
		Where("owner_phone = ?", ownerPhone).
		Order("created_at ASC").
		Find(&listingMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listings by owner")
	}

	return toListingDomainList(listingMs), nil
}

func (repo *listingRepository) FindInBound(ctx context.Context, bound *orb.Bound) ([]*entity.Listing, error) {
	tx := repo.db.WithContext(ctx)
	if bound != nil {
		tx = tx.Where("lat BETWEEN ? AND ? AND lng BETWEEN ? AND ?",
			bound.Min.Lat(), bound.Max.Lat(), bound.Min.Lon(), bound.Max.Lon())
	}

	var listingMs []*model.ListingModel
	if err := tx.Order("created_at ASC").Find(&listingMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings in bound")
	}

	return toListingDomainList(listingMs), nil
}

func (repo *listingRepository) Update(ctx context.Context, ownerPhone string, listing *entity.Listing) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ? AND owner_phone = ?", listing.ID, ownerPhone).
		Updates(map[string]any{
			"title":         listing.Title,
			"desc_text":     listing.Desc,
			"area_landmark": listing.AreaLandmark,
			"lat":           listing.Location.Lat,
			"lng":           listing.Location.Lng,
			"address_text":  listing.AddressText,
			"length":        listing.Dimensions.Length,
			"breadth":       listing.Dimensions.Breadth,
			"price_hourly":  listing.Pricing.Hourly,
			"price_daily":   listing.Pricing.Daily,
			"price_monthly": listing.Pricing.Monthly,
			"amenities":     model.StringSlice(listing.Amenities),
			"is_sold":       listing.IsSold,
			"gmap_link":     listing.GmapLink,
		})
	if result.Error != nil {
		if v := classifyViolation(result.Error); v == violationNotNull || v == violationCheck {
			return domainerrors.ErrInvalidListing.WrapMessage("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

func (repo *listingRepository) Delete(ctx context.Context, id uuid.UUID, ownerPhone string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_phone = ?", id, ownerPhone).
		Delete(&model.ListingModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	amenities := make([]string, 0, len(data.Amenities))
	amenities = append(amenities, data.Amenities...)

	return &entity.Listing{
		ID:           data.ID,
		OwnerPhone:   data.OwnerPhone,
		Title:        data.Title,
		Desc:         data.Desc,
		AreaLandmark: data.AreaLandmark,
		Location:     entity.GeoPoint{Lat: data.Lat, Lng: data.Lng},
		AddressText:  data.AddressText,
		Dimensions:   entity.Dimensions{Length: data.Length, Breadth: data.Breadth},
		Pricing: entity.Pricing{
			Hourly:  data.PriceHourly,
			Daily:   data.PriceDaily,
			Monthly: data.PriceMonthly,
		},
		Amenities: amenities,
		IsSold:    data.IsSold,
		GmapLink:  data.GmapLink,
		CreatedAt: data.CreatedAt,
	}
}

func toListingDomainList(data []*model.ListingModel) []*entity.Listing {
	listings := make([]*entity.Listing, 0, len(data))
	for _, m := range data {
		listings = append(listings, toListingDomain(m))
	}

	return listings
}

func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	return &model.ListingModel{
		ID:           data.ID,
		OwnerPhone:   data.OwnerPhone,
		Title:        data.Title,
		Desc:         data.Desc,
		AreaLandmark: data.AreaLandmark,
		Lat:          data.Location.Lat,
		Lng:          data.Location.Lng,
		AddressText:  data.AddressText,
		Length:       data.Dimensions.Length,
		Breadth:      data.Dimensions.Breadth,
		PriceHourly:  data.Pricing.Hourly,
		PriceDaily:   data.Pricing.Daily,
		PriceMonthly: data.Pricing.Monthly,
		Amenities:    model.StringSlice(data.Amenities),
		IsSold:       data.IsSold,
		GmapLink:     data.GmapLink,
		CreatedAt:    data.CreatedAt,
	}
}
