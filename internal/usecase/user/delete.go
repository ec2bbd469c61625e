package user

import (
	"context"

	"github.com/Seraphinsupinfo/4CITE/internal/audit"
	domain "github.com/Seraphinsupinfo/4CITE/internal/domain/user"
)

type DeleteUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteUser(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteUser {
	return &DeleteUser{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteUser) Execute(
	ctx context.Context,
	id uint,
) error {

	// Surfaces NotFound before the delete; bookings go with the user
	// through the FK cascade.
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, u.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return nil
}
