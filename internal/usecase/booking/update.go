package booking

import (
	"context"
	"time"

	"github.com/Seraphinsupinfo/4CITE/internal/audit"
	domain "github.com/Seraphinsupinfo/4CITE/internal/domain/booking"
	"github.com/Seraphinsupinfo/4CITE/internal/httperr"
	"github.com/Seraphinsupinfo/4CITE/internal/models"
)

type UpdateBookingInput struct {
	StartDate time.Time
	EndDate   time.Time
	UserID    uint
	HotelID   uint
}

type UpdateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	id uint,
	in UpdateBookingInput,
	callerID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.UserID != callerID {
		return nil, httperr.NewBadRequest("not_owner", "You are not allowed to update this booking")
	}

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
	if existing != nil && existing.ID != id {
		return nil, httperr.NewBadRequest("booking_exists", "Booking already exists")
	}

	b.StartDate = in.StartDate
	b.EndDate = in.EndDate
	b.UserID = in.UserID
	b.HotelID = in.HotelID

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
