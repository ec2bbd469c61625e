package user

import (
	"context"

	"github.com/Seraphinsupinfo/4CITE/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		u *models.User,
	) error

	// GetByID fails with a typed NotFound when the user is absent.
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// GetByEmail returns (nil, nil) when no user has that email.
	GetByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	Update(
		ctx context.Context,
		u *models.User,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error
}
