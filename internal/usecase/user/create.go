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

type CreateUserInput struct {
	Email           string
	Pseudo          string
	Password        string
	ConfirmPassword string
}

type CreateUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateUser(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateUser {
	return &CreateUser{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateUser) Execute(
	ctx context.Context,
	in CreateUserInput,
) (*models.User, error) {

	if in.Password != in.ConfirmPassword {
		return nil, httperr.NewBadRequest("password_mismatch", "Passwords do not match")
	}

	if !validators.IsPasswordStrong(in.Password) {
		return nil, httperr.NewBadRequest("weak_password", "Password too weak")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.NewBadRequest("email_exists", "Email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Email:        email,
		Pseudo:       in.Pseudo,
		PasswordHash: string(hashed),
		Role:         string(domain.RoleUser),
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}
