package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-booking/internal/domain/identity"
	"github.com/BruksfildServices01/garage-booking/internal/dto"
	"github.com/BruksfildServices01/garage-booking/internal/httperr"
	"github.com/BruksfildServices01/garage-booking/internal/httpresp"
	"github.com/BruksfildServices01/garage-booking/internal/middleware"
	ucIdentity "github.com/BruksfildServices01/garage-booking/internal/usecase/identity"
)

type MeHandler struct {
	current *ucIdentity.CurrentAccount
}

func NewMeHandler(current *ucIdentity.CurrentAccount) *MeHandler {
	return &MeHandler{current: current}
}

// GetMe is the one route that needs a valid bearer token.
func (h *MeHandler) GetMe(c *gin.Context) {
	email, ok := middleware.UserEmail(c)
	if !ok {
		httperr.Write(c, http.StatusUnauthorized, "unauthorized", "A valid bearer token is required.")
		return
	}

	acc, err := h.current.Execute(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			httperr.Write(c, http.StatusUnauthorized, "unauthorized", "Account no longer exists.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.FromAccount(acc))
}
