package hotel

import (
	"context"
	"io"

	"github.com/Seraphinsupinfo/4CITE/internal/audit"
	"github.com/Seraphinsupinfo/4CITE/internal/cache"
	domain "github.com/Seraphinsupinfo/4CITE/internal/domain/hotel"
	"github.com/Seraphinsupinfo/4CITE/internal/httperr"
	"github.com/Seraphinsupinfo/4CITE/internal/models"
	"github.com/Seraphinsupinfo/4CITE/internal/storage"
)

type AddHotelImage struct {
	repo  domain.Repository
	store *storage.S3Store
	cache *cache.HotelCache
	audit *audit.Dispatcher
}

func NewAddHotelImage(
	repo domain.Repository,
	store *storage.S3Store,
	cache *cache.HotelCache,
	audit *audit.Dispatcher,
) *AddHotelImage {
	return &AddHotelImage{
		repo:  repo,
		store: store,
		cache: cache,
		audit: audit,
	}
}

func (uc *AddHotelImage) Execute(
	ctx context.Context,
	hotelID uint,
	image io.Reader,
	adminID uint,
) (*models.Hotel, error) {

	if uc.store == nil {
		return nil, httperr.NewUnavailable("storage_unavailable", "Image storage is not configured")
	}

	h, err := uc.repo.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	url, err := uc.store.UploadHotelImage(ctx, h.ID, image)
	if err != nil {
		return nil, err
	}

	h.Images = append(h.Images, url)

	if err := uc.repo.Update(ctx, h); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "hotel_image_added",
		Entity:   "hotel",
		EntityID: &h.ID,
		Metadata: map[string]string{"url": url},
	})

	return h, nil
}
