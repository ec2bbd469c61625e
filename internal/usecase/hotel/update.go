package hotel

import (
	"context"

	"github.com/Seraphinsupinfo/4CITE/internal/audit"
	"github.com/Seraphinsupinfo/4CITE/internal/cache"
	domain "github.com/Seraphinsupinfo/4CITE/internal/domain/hotel"
	"github.com/Seraphinsupinfo/4CITE/internal/models"
)

// UpdateHotelInput uses pointers so absent fields stay untouched
// (partial merge).
type UpdateHotelInput struct {
	Name        *string
	Location    *string
	Description *string
	Images      *[]string
}

type UpdateHotel struct {
	repo  domain.Repository
	cache *cache.HotelCache
	audit *audit.Dispatcher
}

func NewUpdateHotel(
	repo domain.Repository,
	cache *cache.HotelCache,
	audit *audit.Dispatcher,
) *UpdateHotel {
	return &UpdateHotel{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *UpdateHotel) Execute(
	ctx context.Context,
	id uint,
	in UpdateHotelInput,
	adminID uint,
) (*models.Hotel, error) {

	h, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		h.Name = *in.Name
	}
	if in.Location != nil {
		h.Location = *in.Location
	}
	if in.Description != nil {
		h.Description = *in.Description
	}
	if in.Images != nil {
		h.Images = *in.Images
	}

	if err := uc.repo.Update(ctx, h); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "hotel_updated",
		Entity:   "hotel",
		EntityID: &h.ID,
	})

	return h, nil
}
