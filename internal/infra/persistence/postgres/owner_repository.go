package postgres

import (
	"context"

	"parkospace/internal/domain/entity"
	domainerrors "parkospace/internal/domain/errors"
	"parkospace/internal/domain/repository"
	"parkospace/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository is the constructor for ownerRepository.
func NewOwnerRepository(db *gorm.DB) repository.OwnerRepository {
	return &ownerRepository{db: db}
}

func (repo *ownerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Owner, error) {
	var ownerM model.OwnerModel
	err := repo.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&ownerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by phone")
	}

	return toOwnerDomain(&ownerM), nil
}

// Save upserts on phone. Name and joined date are kept from the first insert.
func (repo *ownerRepository) Save(ctx context.Context, owner *entity.Owner) error {
	ownerM := fromOwnerDomain(owner)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "updated_at"}),
		}).
		Create(ownerM).Error
	if err != nil {
		if classifyViolation(err) == violationNotNull {
			return domainerrors.ErrOwnerSaveFailed.WrapMessage("missing required owner information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save owner")
	}

	return nil
}

func toOwnerDomain(data *model.OwnerModel) *entity.Owner {
	if data == nil {
		return nil
	}

	return &entity.Owner{
		Phone:    data.Phone,
		Name:     data.Name,
		Email:    data.Email,
		JoinedAt: data.JoinedAt,
	}
}

func fromOwnerDomain(data *entity.Owner) *model.OwnerModel {
	if data == nil {
		return nil
	}

	return &model.OwnerModel{
		Phone:    data.Phone,
		Name:     data.Name,
		Email:    data.Email,
		JoinedAt: data.JoinedAt,
	}
}
