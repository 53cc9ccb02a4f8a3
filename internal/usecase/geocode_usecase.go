package usecase

import (
	"context"

	"parkospace/internal/domain/entity"
)

// GeocodeUsecase resolves free text and map links into places
type GeocodeUsecase interface {
	SearchLocation(ctx context.Context, query string) (*entity.Place, error)
	ParseMapLink(ctx context.Context, rawURL string) (*entity.Place, error)
}
