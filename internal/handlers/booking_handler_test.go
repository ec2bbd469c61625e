package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seraphinsupinfo/4CITE/internal/authz"
	"github.com/Seraphinsupinfo/4CITE/internal/handlers"
	"github.com/Seraphinsupinfo/4CITE/internal/models"
	ucBooking "github.com/Seraphinsupinfo/4CITE/internal/usecase/booking"
)

func bookingRouter(t *testing.T, identity authz.Identity) (*gin.Engine, *fakeBookingRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newFakeBookingRepo()

	handler := handlers.NewBookingHandler(
		ucBooking.NewCreateBooking(repo, nil),
		ucBooking.NewGetBooking(repo),
		ucBooking.NewListBookingsByEmail(repo),
		ucBooking.NewUpdateBooking(repo, nil),
		ucBooking.NewDeleteBooking(repo, nil),
	)

	r := gin.New()
	r.Use(asIdentity(identity))
	r.POST("/bookings", handler.Create)
	r.GET("/bookings", handler.ListByEmail)
	r.GET("/bookings/:id", handler.Get)
	r.PUT("/bookings/:id", handler.Update)
	r.DELETE("/bookings/:id", handler.Delete)
	return r, repo
}

func bookingBody(userID uint) string {
	start := time.Now().AddDate(0, 0, 10).Format("2006-01-02")
	end := time.Now().AddDate(0, 0, 15).Format("2006-01-02")
	return fmt.Sprintf(`{"startDate":%q,"endDate":%q,"userId":%d,"hotelId":1}`, start, end, userID)
}

func seedOwnedBooking(t *testing.T, repo *fakeBookingRepo, userID uint) *models.Booking {
	t.Helper()

	b := &models.Booking{
		StartDate: time.Now().AddDate(0, 0, 10),
		EndDate:   time.Now().AddDate(0, 0, 15),
		UserID:    userID,
		HotelID:   1,
	}
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func TestCreateBookingEndpoint(t *testing.T) {
	t.Run("owner creates own booking", func(t *testing.T) {
		r, _ := bookingRouter(t, authz.Identity{ID: 1, Role: "user"})

		w := postJSON(r, "/bookings", bookingBody(1))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("booking for another user is rejected", func(t *testing.T) {
		r, _ := bookingRouter(t, authz.Identity{ID: 2, Role: "user"})

		w := postJSON(r, "/bookings", bookingBody(1))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "You are not allowed to create a booking for another user")
	})

	t.Run("reversed dates are rejected", func(t *testing.T) {
		r, _ := bookingRouter(t, authz.Identity{ID: 1, Role: "user"})

		w := postJSON(r, "/bookings",
			`{"startDate":"2099-01-01","endDate":"2098-01-01","userId":1,"hotelId":1}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Start date must be before end date")
	})

	t.Run("unparseable date", func(t *testing.T) {
		r, _ := bookingRouter(t, authz.Identity{ID: 1, Role: "user"})

		w := postJSON(r, "/bookings",
			`{"startDate":"01/02/2099","endDate":"2099-02-01","userId":1,"hotelId":1}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteBookingEndpoint(t *testing.T) {
	t.Run("non-owner gets the ownership error", func(t *testing.T) {
		r, repo := bookingRouter(t, authz.Identity{ID: 2, Role: "user"})
		seeded := seedOwnedBooking(t, repo, 1)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/bookings/%d", seeded.ID), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "You are not allowed to delete this booking")
	})

	t.Run("owner deletes", func(t *testing.T) {
		r, repo := bookingRouter(t, authz.Identity{ID: 1, Role: "user"})
		seeded := seedOwnedBooking(t, repo, 1)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/bookings/%d", seeded.ID), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Booking has been successfully deleted")
	})
}

func TestGetBookingEndpoint(t *testing.T) {
	t.Run("admin reads any booking", func(t *testing.T) {
		r, repo := bookingRouter(t, authz.Identity{ID: 9, Role: "admin"})
		seeded := seedOwnedBooking(t, repo, 1)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/bookings/%d", seeded.ID), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("standard user is forbidden", func(t *testing.T) {
		r, repo := bookingRouter(t, authz.Identity{ID: 1, Role: "user"})
		seeded := seedOwnedBooking(t, repo, 1)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/bookings/%d", seeded.ID), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin lookup of a missing booking", func(t *testing.T) {
		r, _ := bookingRouter(t, authz.Identity{ID: 9, Role: "admin"})

		req := httptest.NewRequest(http.MethodGet, "/bookings/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Booking not found")
	})
}

func TestListBookingsByEmailEndpoint(t *testing.T) {
	t.Run("requires the user_email parameter", func(t *testing.T) {
		r, _ := bookingRouter(t, authz.Identity{ID: 9, Role: "admin"})

		req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("standard user is forbidden", func(t *testing.T) {
		r, _ := bookingRouter(t, authz.Identity{ID: 1, Role: "user"})

		req := httptest.NewRequest(http.MethodGet, "/bookings?user_email=a@b.com", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
