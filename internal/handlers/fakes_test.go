package handlers_test

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Seraphinsupinfo/4CITE/internal/authz"
	"github.com/Seraphinsupinfo/4CITE/internal/httperr"
	"github.com/Seraphinsupinfo/4CITE/internal/middleware"
	"github.com/Seraphinsupinfo/4CITE/internal/models"
)

// asIdentity injects a caller identity the way AuthMiddleware would.
func asIdentity(identity authz.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextIdentity, identity)
		c.Next()
	}
}

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[uint]*models.User),
		nextID: 1,
	}
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	u.ID = r.nextID
	r.nextID++
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, httperr.NewNotFound("user_not_found", "User not found")
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *models.User) error {
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	delete(r.users, id)
	return nil
}

type fakeBookingRepo struct {
	bookings map[uint]*models.Booking
	nextID   uint
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[uint]*models.Booking),
		nextID:   1,
	}
}

func (r *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	b.ID = r.nextID
	r.nextID++
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, httperr.NewNotFound("booking_not_found", "Booking not found")
	}
	clone := *b
	return &clone, nil
}

func (r *fakeBookingRepo) FindDuplicate(
	_ context.Context,
	start, end time.Time,
	userID, hotelID uint,
) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.StartDate.Equal(start) && b.EndDate.Equal(end) &&
			b.UserID == userID && b.HotelID == hotelID {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) ListByUser(_ context.Context, userID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByUserEmail(_ context.Context, _ string) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b *models.Booking) error {
	clone := *b
	r.bookings[b.ID] = &clone
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id uint) error {
	delete(r.bookings, id)
	return nil
}
