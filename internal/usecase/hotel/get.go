package hotel

import (
	"context"

	domain "github.com/Seraphinsupinfo/4CITE/internal/domain/hotel"
	"github.com/Seraphinsupinfo/4CITE/internal/models"
)

type GetHotel struct {
	repo domain.Repository
}

func NewGetHotel(repo domain.Repository) *GetHotel {
	return &GetHotel{repo: repo}
}

func (uc *GetHotel) Execute(
	ctx context.Context,
	id uint,
) (*models.Hotel, error) {
	return uc.repo.GetByID(ctx, id)
}
