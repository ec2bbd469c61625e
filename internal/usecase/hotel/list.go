package hotel

import (
	"context"

	"github.com/Seraphinsupinfo/4CITE/internal/cache"
	domain "github.com/Seraphinsupinfo/4CITE/internal/domain/hotel"
	"github.com/Seraphinsupinfo/4CITE/internal/models"
)

type ListHotels struct {
	repo  domain.Repository
	cache *cache.HotelCache
}

func NewListHotels(
	repo domain.Repository,
	cache *cache.HotelCache,
) *ListHotels {
	return &ListHotels{
		repo:  repo,
		cache: cache,
	}
}

func (uc *ListHotels) Execute(
	ctx context.Context,
	sortBy string,
	limit int,
) ([]models.Hotel, error) {

	if sortBy == "" {
		sortBy = domain.DefaultSortField
	}
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}

	column, err := domain.SortColumn(sortBy)
	if err != nil {
		return nil, err
	}

	key := cache.ListKey(sortBy, limit)
	if hotels, ok := uc.cache.GetList(ctx, key); ok {
		return hotels, nil
	}

	hotels, err := uc.repo.List(ctx, column, limit)
	if err != nil {
		return nil, err
	}

	uc.cache.SetList(ctx, key, hotels)

	return hotels, nil
}
