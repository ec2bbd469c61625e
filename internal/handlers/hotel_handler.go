package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Seraphinsupinfo/4CITE/internal/authz"
	domain "github.com/Seraphinsupinfo/4CITE/internal/domain/hotel"
	"github.com/Seraphinsupinfo/4CITE/internal/httperr"
	"github.com/Seraphinsupinfo/4CITE/internal/httpresp"
	"github.com/Seraphinsupinfo/4CITE/internal/middleware"
	ucHotel "github.com/Seraphinsupinfo/4CITE/internal/usecase/hotel"
)

type HotelHandler struct {
	createUC   *ucHotel.CreateHotel
	getUC      *ucHotel.GetHotel
	listUC     *ucHotel.ListHotels
	updateUC   *ucHotel.UpdateHotel
	deleteUC   *ucHotel.DeleteHotel
	addImageUC *ucHotel.AddHotelImage
}

func NewHotelHandler(
	createUC *ucHotel.CreateHotel,
	getUC *ucHotel.GetHotel,
	listUC *ucHotel.ListHotels,
	updateUC *ucHotel.UpdateHotel,
	deleteUC *ucHotel.DeleteHotel,
	addImageUC *ucHotel.AddHotelImage,
) *HotelHandler {
	return &HotelHandler{
		createUC:   createUC,
		getUC:      getUC,
		listUC:     listUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		addImageUC: addImageUC,
	}
}

// --------- Requests ---------

type CreateHotelRequest struct {
	Name        string   `json:"name" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Images      []string `json:"images"`
}

type UpdateHotelRequest struct {
	Name        *string   `json:"name"`
	Location    *string   `json:"location"`
	Description *string   `json:"description"`
	Images      *[]string `json:"images"`
}

// --------- Handlers ---------

// List is public: ?sortBy=creationDate|name|location&limit=N.
func (h *HotelHandler) List(c *gin.Context) {
	sortBy := c.DefaultQuery("sortBy", domain.DefaultSortField)

	limit := domain.DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			httperr.BadRequest(c, "invalid_limit", "Limit must be a positive integer")
			return
		}
		limit = parsed
	}

	hotels, err := h.listUC.Execute(c.Request.Context(), sortBy, limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, hotels)
}

func (h *HotelHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	hotel, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, hotel)
}

func (h *HotelHandler) Create(c *gin.Context) {
	identity, ok := requireAdmin(c)
	if !ok {
		return
	}

	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	hotel, err := h.createUC.Execute(c.Request.Context(), ucHotel.CreateHotelInput{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Images:      req.Images,
	}, identity.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, hotel)
}

func (h *HotelHandler) Update(c *gin.Context) {
	identity, ok := requireAdmin(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	hotel, err := h.updateUC.Execute(c.Request.Context(), id, ucHotel.UpdateHotelInput{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Images:      req.Images,
	}, identity.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, hotel)
}

func (h *HotelHandler) Delete(c *gin.Context) {
	identity, ok := requireAdmin(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, identity.ID); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Hotel has been successfully deleted"})
}

// UploadImage accepts a multipart "image" file, converts it to WebP
// and appends the stored URL to the hotel.
func (h *HotelHandler) UploadImage(c *gin.Context) {
	identity, ok := requireAdmin(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "internal_error", "Internal server error")
		return
	}
	defer file.Close()

	hotel, err := h.addImageUC.Execute(c.Request.Context(), id, file, identity.ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, hotel)
}

func requireAdmin(c *gin.Context) (authz.Identity, bool) {
	identity, _ := middleware.Identity(c)
	if !authz.IsAdmin(identity) {
		httperr.Forbidden(c, "forbidden", "You are not allowed to access this resource")
		return identity, false
	}
	return identity, true
}
