package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-booking/internal/httperr"
)

func invalidRequest(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", "Invalid request body.")
}

// pathID reads a positive numeric path parameter, writing a 400 when it is
// not one.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid "+name+".")
		return 0, false
	}
	return uint(id), true
}
