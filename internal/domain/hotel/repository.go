package hotel

import (
	"context"

	"github.com/Seraphinsupinfo/4CITE/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		h *models.Hotel,
	) error

	// GetByID fails with a typed NotFound when the hotel is absent.
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Hotel, error)

	// List returns at most limit hotels ordered ascending by the given
	// column. The column must come out of SortColumn.
	List(
		ctx context.Context,
		orderColumn string,
		limit int,
	) ([]models.Hotel, error)

	Update(
		ctx context.Context,
		h *models.Hotel,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error
}
