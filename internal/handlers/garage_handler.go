package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-booking/internal/dto"
	"github.com/BruksfildServices01/garage-booking/internal/httperr"
	"github.com/BruksfildServices01/garage-booking/internal/httpresp"
	ucGarage "github.com/BruksfildServices01/garage-booking/internal/usecase/garage"
	ucIdentity "github.com/BruksfildServices01/garage-booking/internal/usecase/identity"
)

type GarageHandler struct {
	list   *ucGarage.ListGarages
	get    *ucGarage.GetGarage
	search *ucIdentity.SearchGarages
}

func NewGarageHandler(
	list *ucGarage.ListGarages,
	get *ucGarage.GetGarage,
	search *ucIdentity.SearchGarages,
) *GarageHandler {
	return &GarageHandler{list: list, get: get, search: search}
}

func (h *GarageHandler) List(c *gin.Context) {
	garages, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.FromGarages(garages))
}

func (h *GarageHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	g, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.FromGarage(g))
}

func (h *GarageHandler) Search(c *gin.Context) {
	garages, err := h.search.Execute(c.Request.Context(), c.Param("name"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.FromGarages(garages))
}
