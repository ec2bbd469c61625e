package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Seraphinsupinfo/4CITE/internal/audit"
	domain "github.com/Seraphinsupinfo/4CITE/internal/domain/user"
	"github.com/Seraphinsupinfo/4CITE/internal/httperr"
	"github.com/Seraphinsupinfo/4CITE/internal/models"
	"github.com/Seraphinsupinfo/4CITE/internal/validators"
)

type UpdateUserInput struct {
	Email  string
	Pseudo string

	// ActualPassword must match the stored hash before anything moves.
	ActualPassword     string
	NewPassword        string
	ConfirmNewPassword string
}

type UpdateUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateUser(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateUser {
	return &UpdateUser{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateUser) Execute(
	ctx context.Context,
	id uint,
	in UpdateUserInput,
) (*models.User, error) {

	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(u.PasswordHash),
		[]byte(in.ActualPassword),
	); err != nil {
		return nil, httperr.NewUnauthorized("invalid_password", "Invalid password")
	}

	if in.Email != "" {
		email := strings.ToLower(strings.TrimSpace(in.Email))
		if email != u.Email {
			other, err := uc.repo.GetByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != id {
				return nil, httperr.NewBadRequest("email_exists", "Email already exists")
			}
			u.Email = email
		}
	}

	if in.Pseudo != "" {
		u.Pseudo = in.Pseudo
	}

	if in.NewPassword != "" {
		if in.NewPassword != in.ConfirmNewPassword {
			return nil, httperr.NewBadRequest("password_mismatch", "Passwords do not match")
		}
		if !validators.IsPasswordStrong(in.NewPassword) {
			return nil, httperr.NewBadRequest("weak_password", "Password too weak")
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hashed)
	}

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}
