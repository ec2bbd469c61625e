package user

import (
	"context"

	domain "github.com/Seraphinsupinfo/4CITE/internal/domain/user"
	"github.com/Seraphinsupinfo/4CITE/internal/models"
)

type GetUser struct {
	repo domain.Repository
}

func NewGetUser(repo domain.Repository) *GetUser {
	return &GetUser{repo: repo}
}

func (uc *GetUser) Execute(
	ctx context.Context,
	id uint,
) (*models.User, error) {
	return uc.repo.GetByID(ctx, id)
}
