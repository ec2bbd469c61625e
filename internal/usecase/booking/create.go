package booking

import (
	"context"
	"time"

	"github.com/Seraphinsupinfo/4CITE/internal/audit"
	domain "github.com/Seraphinsupinfo/4CITE/internal/domain/booking"
	"github.com/Seraphinsupinfo/4CITE/internal/httperr"
	"github.com/Seraphinsupinfo/4CITE/internal/models"
)

type CreateBookingInput struct {
	StartDate time.Time
	EndDate   time.Time
	UserID    uint
	HotelID   uint
}

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if err := domain.ValidateDates(in.StartDate, in.EndDate, uc.now()); err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindDuplicate(
		ctx,
		in.StartDate,
		in.EndDate,
		in.UserID,
		in.HotelID,
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.NewBadRequest("booking_exists", "Booking already exists")
	}

	b := &models.Booking{
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		UserID:    in.UserID,
		HotelID:   in.HotelID,
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &b.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
