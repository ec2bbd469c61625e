package booking

import (
	"context"

	domain "github.com/Seraphinsupinfo/4CITE/internal/domain/booking"
	"github.com/Seraphinsupinfo/4CITE/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {
	return uc.repo.GetByID(ctx, id)
}
