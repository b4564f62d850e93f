package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/garage-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/garage-booking/internal/dto"
	"github.com/BruksfildServices01/garage-booking/internal/httperr"
	"github.com/BruksfildServices01/garage-booking/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/garage-booking/internal/usecase/appointment"
	"github.com/BruksfildServices01/garage-booking/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	list         *ucAppointment.ListAppointments
	updateStatus *ucAppointment.UpdateAppointmentStatus
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	list *ucAppointment.ListAppointments,
	updateStatus *ucAppointment.UpdateAppointmentStatus,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		list:         list,
		updateStatus: updateStatus,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	GarageID        uint   `json:"garageId" binding:"required"`
	CustomerID      uint   `json:"customerId" binding:"required"`
	ServiceType     string `json:"serviceType" binding:"required,notblank,max=100"`
	TimeSlot        string `json:"timeSlot" binding:"required,notblank,max=20"`
	AppointmentDate string `json:"appointmentDate" binding:"required,isodate"`
	Notes           string `json:"notes" binding:"max=1000"`
	ContactPhone    string `json:"contactPhone" binding:"max=20"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,apptstatus"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validators.FailedOn(err, "AppointmentDate", validators.TagISODate) {
			httperr.Respond(c, domain.ErrInvalidDate)
			return
		}
		invalidRequest(c)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		GarageID:        req.GarageID,
		CustomerID:      req.CustomerID,
		ServiceType:     req.ServiceType,
		TimeSlot:        req.TimeSlot,
		AppointmentDate: req.AppointmentDate,
		Notes:           req.Notes,
		ContactPhone:    req.ContactPhone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.FromAppointment(ap))
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var filter *domain.Status
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		s, err := domain.ParseStatus(raw)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		filter = &s
	}

	aps, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validators.FailedOn(err, "Status", validators.TagAppointmentStatus) {
			httperr.Respond(c, domain.ErrUnsupportedStatus)
			return
		}
		invalidRequest(c)
		return
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := h.updateStatus.Execute(c.Request.Context(), id, status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.UpdateStatusDTO{
		Appointment:      dto.FromAppointment(res.Appointment),
		NotificationSent: res.NotificationSent,
	})
}
