package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Seraphinsupinfo/4CITE/internal/authz"
	"github.com/Seraphinsupinfo/4CITE/internal/httperr"
	"github.com/Seraphinsupinfo/4CITE/internal/httpresp"
	"github.com/Seraphinsupinfo/4CITE/internal/middleware"
	ucBooking "github.com/Seraphinsupinfo/4CITE/internal/usecase/booking"
)

type BookingHandler struct {
	createUC      *ucBooking.CreateBooking
	getUC         *ucBooking.GetBooking
	listByEmailUC *ucBooking.ListBookingsByEmail
	updateUC      *ucBooking.UpdateBooking
	deleteUC      *ucBooking.DeleteBooking
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	getUC *ucBooking.GetBooking,
	listByEmailUC *ucBooking.ListBookingsByEmail,
	updateUC *ucBooking.UpdateBooking,
	deleteUC *ucBooking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		createUC:      createUC,
		getUC:         getUC,
		listByEmailUC: listByEmailUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
	}
}

// --------- Requests ---------

type BookingRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	UserID    uint   `json:"userId" binding:"required"`
	HotelID   uint   `json:"hotelId" binding:"required"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	identity, _ := middleware.Identity(c)
	if req.UserID != identity.ID {
		httperr.BadRequest(c, "not_owner", "You are not allowed to create a booking for another user")
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	booking, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		StartDate: start,
		EndDate:   end,
		UserID:    req.UserID,
		HotelID:   req.HotelID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, booking)
}

// Get is an admin-only lookup of an arbitrary booking.
func (h *BookingHandler) Get(c *gin.Context) {
	identity, _ := middleware.Identity(c)
	if !authz.IsAdmin(identity) {
		httperr.Forbidden(c, "forbidden", "You are not allowed to access this resource")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, booking)
}

// ListByEmail is the admin lookup: GET /bookings?user_email=...
func (h *BookingHandler) ListByEmail(c *gin.Context) {
	identity, _ := middleware.Identity(c)
	if !authz.IsAdmin(identity) {
		httperr.Forbidden(c, "forbidden", "You are not allowed to access this resource")
		return
	}

	email := c.Query("user_email")
	if email == "" {
		httperr.BadRequest(c, "missing_user_email", "The user_email query parameter is required")
		return
	}

	bookings, err := h.listByEmailUC.Execute(c.Request.Context(), email)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	identity, _ := middleware.Identity(c)
	if req.UserID != identity.ID {
		httperr.BadRequest(c, "not_owner", "You are not allowed to update a booking for another user")
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	booking, err := h.updateUC.Execute(c.Request.Context(), id, ucBooking.UpdateBookingInput{
		StartDate: start,
		EndDate:   end,
		UserID:    req.UserID,
		HotelID:   req.HotelID,
	}, identity.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, booking)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	identity, _ := middleware.Identity(c)

	if err := h.deleteUC.Execute(c.Request.Context(), id, identity.ID); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Booking has been successfully deleted"})
}
