package booking

import (
	"context"

	domain "github.com/Seraphinsupinfo/4CITE/internal/domain/booking"
	"github.com/Seraphinsupinfo/4CITE/internal/models"
)

// ListUserBookings returns a user's bookings with their hotels
// attached, for the account bookings page.
type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {
	return uc.repo.ListByUser(ctx, userID)
}

// ListBookingsByEmail is the admin-side lookup by account email.
type ListBookingsByEmail struct {
	repo domain.Repository
}

func NewListBookingsByEmail(repo domain.Repository) *ListBookingsByEmail {
	return &ListBookingsByEmail{repo: repo}
}

func (uc *ListBookingsByEmail) Execute(
	ctx context.Context,
	email string,
) ([]models.Booking, error) {
	return uc.repo.ListByUserEmail(ctx, email)
}
