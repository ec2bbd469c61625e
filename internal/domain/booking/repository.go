package booking

import (
	"context"
	"time"

	"github.com/Seraphinsupinfo/4CITE/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	// GetByID fails with a typed NotFound when the booking is absent.
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// FindDuplicate returns the booking sharing the exact
	// (start, end, user, hotel) tuple, or (nil, nil) when none exists.
	FindDuplicate(
		ctx context.Context,
		start time.Time,
		end time.Time,
		userID uint,
		hotelID uint,
	) (*models.Booking, error)

	// ListByUser returns the user's bookings with hotel data attached.
	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	ListByUserEmail(
		ctx context.Context,
		email string,
	) ([]models.Booking, error)

	Update(
		ctx context.Context,
		b *models.Booking,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error
}
