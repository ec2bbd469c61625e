package hotel

import (
	"context"

	"github.com/Seraphinsupinfo/4CITE/internal/audit"
	"github.com/Seraphinsupinfo/4CITE/internal/cache"
	domain "github.com/Seraphinsupinfo/4CITE/internal/domain/hotel"
	"github.com/Seraphinsupinfo/4CITE/internal/models"
)

type CreateHotelInput struct {
	Name        string
	Location    string
	Description string
	Images      []string
}

type CreateHotel struct {
	repo  domain.Repository
	cache *cache.HotelCache
	audit *audit.Dispatcher
}

func NewCreateHotel(
	repo domain.Repository,
	cache *cache.HotelCache,
	audit *audit.Dispatcher,
) *CreateHotel {
	return &CreateHotel{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CreateHotel) Execute(
	ctx context.Context,
	in CreateHotelInput,
	adminID uint,
) (*models.Hotel, error) {

	h := &models.Hotel{
		Name:        in.Name,
		Location:    in.Location,
		Description: in.Description,
		Images:      in.Images,
	}

	if err := uc.repo.Create(ctx, h); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "hotel_created",
		Entity:   "hotel",
		EntityID: &h.ID,
	})

	return h, nil
}
