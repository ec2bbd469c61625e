package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seraphinsupinfo/4CITE/internal/authz"
	"github.com/Seraphinsupinfo/4CITE/internal/handlers"
	ucBooking "github.com/Seraphinsupinfo/4CITE/internal/usecase/booking"
	ucUser "github.com/Seraphinsupinfo/4CITE/internal/usecase/user"
)

func userRouter(t *testing.T, identity authz.Identity) (*gin.Engine, *fakeUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := newFakeUserRepo()
	bookingRepo := newFakeBookingRepo()

	handler := handlers.NewUserHandler(
		ucUser.NewCreateUser(userRepo, nil),
		ucUser.NewGetUser(userRepo),
		ucUser.NewUpdateUser(userRepo, nil),
		ucUser.NewDeleteUser(userRepo, nil),
		ucBooking.NewListUserBookings(bookingRepo),
	)

	r := gin.New()
	r.POST("/users", handler.Create)

	secured := r.Group("/")
	secured.Use(asIdentity(identity))
	{
		secured.GET("/users/:id", handler.Get)
		secured.PUT("/users/:id", handler.Update)
		secured.DELETE("/users/:id", handler.Delete)
		secured.GET("/users/:id/bookings", handler.ListBookings)
	}
	return r, userRepo
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("success never echoes the password", func(t *testing.T) {
		r, _ := userRouter(t, authz.Identity{})

		w := postJSON(r, "/users",
			`{"email":"a@b.com","pseudo":"x","password":"Password123!","confirmPassword":"Password123!"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"email":"a@b.com"`)
		assert.NotContains(t, w.Body.String(), "Password123!")
	})

	t.Run("mismatched confirmation", func(t *testing.T) {
		r, _ := userRouter(t, authz.Identity{})

		w := postJSON(r, "/users",
			`{"email":"a@b.com","pseudo":"x","password":"Password123!","confirmPassword":"Other123!"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Passwords do not match")
	})

	t.Run("invalid email format", func(t *testing.T) {
		r, _ := userRouter(t, authz.Identity{})

		w := postJSON(r, "/users",
			`{"email":"not-an-email","pseudo":"x","password":"Password123!","confirmPassword":"Password123!"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserAccessRules(t *testing.T) {
	register := func(t *testing.T, r *gin.Engine) uint {
		t.Helper()
		w := postJSON(r, "/users",
			`{"email":"a@b.com","pseudo":"x","password":"Password123!","confirmPassword":"Password123!"}`)
		require.Equal(t, http.StatusCreated, w.Code)
		return 1
	}

	t.Run("owner reads own account", func(t *testing.T) {
		r, _ := userRouter(t, authz.Identity{ID: 1, Role: "user"})
		id := register(t, r)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/users/%d", id), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin reads another account", func(t *testing.T) {
		r, _ := userRouter(t, authz.Identity{ID: 9, Role: "admin"})
		id := register(t, r)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/users/%d", id), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("stranger cannot read an account", func(t *testing.T) {
		r, _ := userRouter(t, authz.Identity{ID: 2, Role: "user"})
		id := register(t, r)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/users/%d", id), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin cannot delete another account", func(t *testing.T) {
		r, _ := userRouter(t, authz.Identity{ID: 9, Role: "admin"})
		id := register(t, r)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/users/%d", id), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("bookings listing is owner-only", func(t *testing.T) {
		r, _ := userRouter(t, authz.Identity{ID: 9, Role: "admin"})
		id := register(t, r)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/users/%d/bookings", id), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
