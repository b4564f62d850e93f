package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-booking/internal/audit"
	"github.com/BruksfildServices01/garage-booking/internal/httperr"
	"github.com/BruksfildServices01/garage-booking/internal/httpresp"
	"github.com/BruksfildServices01/garage-booking/internal/models"
	ucGarage "github.com/BruksfildServices01/garage-booking/internal/usecase/garage"
)

type AuditLogsHandler struct {
	logs   *audit.Logger
	garage *ucGarage.GetGarage
}

func NewAuditLogsHandler(logs *audit.Logger, garage *ucGarage.GetGarage) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, garage: garage}
}

// List pages through a garage's appointment history. Unparseable date
// filters are ignored.
func (h *AuditLogsHandler) List(c *gin.Context) {
	garageID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := h.garage.Execute(c.Request.Context(), garageID); err != nil {
		httperr.Respond(c, err)
		return
	}

	f := audit.Filter{
		GarageID: garageID,
		Action:   c.Query("action"),
		Entity:   c.Query("entity"),
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	f.Normalize()

	if from, err := time.Parse(models.DateLayout, c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse(models.DateLayout, c.Query("to")); err == nil {
		f.To = &to
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"page":  f.Page,
		"limit": f.Limit,
		"total": total,
		"logs":  logs,
	})
}
