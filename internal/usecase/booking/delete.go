package booking

import (
	"context"

	"github.com/Seraphinsupinfo/4CITE/internal/audit"
	domain "github.com/Seraphinsupinfo/4CITE/internal/domain/booking"
	"github.com/Seraphinsupinfo/4CITE/internal/httperr"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	id uint,
	callerID uint,
) error {

	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if b.UserID != callerID {
		return httperr.NewBadRequest("not_owner", "You are not allowed to delete this booking")
	}

	if err := uc.repo.Delete(ctx, b.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
