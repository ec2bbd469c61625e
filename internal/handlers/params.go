package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Seraphinsupinfo/4CITE/internal/httperr"
)

const dateLayout = "2006-01-02"

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, httperr.NewBadRequest("invalid_date", "Dates must use the YYYY-MM-DD format")
	}
	return t, nil
}
