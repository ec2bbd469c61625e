package hotel

import (
	"context"

	"github.com/Seraphinsupinfo/4CITE/internal/audit"
	"github.com/Seraphinsupinfo/4CITE/internal/cache"
	domain "github.com/Seraphinsupinfo/4CITE/internal/domain/hotel"
)

type DeleteHotel struct {
	repo  domain.Repository
	cache *cache.HotelCache
	audit *audit.Dispatcher
}

func NewDeleteHotel(
	repo domain.Repository,
	cache *cache.HotelCache,
	audit *audit.Dispatcher,
) *DeleteHotel {
	return &DeleteHotel{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *DeleteHotel) Execute(
	ctx context.Context,
	id uint,
	adminID uint,
) error {

	h, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, h.ID); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "hotel_deleted",
		Entity:   "hotel",
		EntityID: &h.ID,
	})

	return nil
}
