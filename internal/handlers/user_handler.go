package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Seraphinsupinfo/4CITE/internal/authz"
	"github.com/Seraphinsupinfo/4CITE/internal/httperr"
	"github.com/Seraphinsupinfo/4CITE/internal/httpresp"
	"github.com/Seraphinsupinfo/4CITE/internal/middleware"
	ucBooking "github.com/Seraphinsupinfo/4CITE/internal/usecase/booking"
	ucUser "github.com/Seraphinsupinfo/4CITE/internal/usecase/user"
)

type UserHandler struct {
	createUC       *ucUser.CreateUser
	getUC          *ucUser.GetUser
	updateUC       *ucUser.UpdateUser
	deleteUC       *ucUser.DeleteUser
	listBookingsUC *ucBooking.ListUserBookings
}

func NewUserHandler(
	createUC *ucUser.CreateUser,
	getUC *ucUser.GetUser,
	updateUC *ucUser.UpdateUser,
	deleteUC *ucUser.DeleteUser,
	listBookingsUC *ucBooking.ListUserBookings,
) *UserHandler {
	return &UserHandler{
		createUC:       createUC,
		getUC:          getUC,
		updateUC:       updateUC,
		deleteUC:       deleteUC,
		listBookingsUC: listBookingsUC,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Pseudo          string `json:"pseudo" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type UpdateUserRequest struct {
	Email  string `json:"email" binding:"omitempty,email"`
	Pseudo string `json:"pseudo"`

	ActualPassword     string `json:"actualPassword" binding:"required"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

// --------- Handlers ---------

// Create is the public registration endpoint.
func (h *UserHandler) Create(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.createUC.Execute(c.Request.Context(), ucUser.CreateUserInput{
		Email:           req.Email,
		Pseudo:          req.Pseudo,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, user)
}

// Get answers to the owner or to an admin.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	identity, _ := middleware.Identity(c)
	if !authz.IsOwner(identity, id) && !authz.IsAdmin(identity) {
		httperr.Forbidden(c, "forbidden", "You are not allowed to access this resource")
		return
	}

	user, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, user)
}

// Update answers to the owner or to an admin; the current password of
// the target account still has to be supplied either way.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	identity, _ := middleware.Identity(c)
	if !authz.IsOwner(identity, id) && !authz.IsAdmin(identity) {
		httperr.Forbidden(c, "forbidden", "You are not allowed to access this resource")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.updateUC.Execute(c.Request.Context(), id, ucUser.UpdateUserInput{
		Email:              req.Email,
		Pseudo:             req.Pseudo,
		ActualPassword:     req.ActualPassword,
		NewPassword:        req.NewPassword,
		ConfirmNewPassword: req.ConfirmNewPassword,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, user)
}

// Delete is owner-only; admins cannot remove other accounts.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	identity, _ := middleware.Identity(c)
	if !authz.IsOwner(identity, id) {
		httperr.Forbidden(c, "forbidden", "You are not allowed to access this resource")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "User has been successfully deleted"})
}

// ListBookings is owner-only; the admin path goes through /bookings.
func (h *UserHandler) ListBookings(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	identity, _ := middleware.Identity(c)
	if !authz.IsOwner(identity, id) {
		httperr.Forbidden(c, "forbidden", "You are not allowed to access this resource")
		return
	}

	bookings, err := h.listBookingsUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, bookings)
}
