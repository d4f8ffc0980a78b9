package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/optisys/optisys-api/internal/application/service"
	"github.com/optisys/optisys-api/internal/presentation/http/dto/response"
)

// AppointmentHandler handles appointment-related HTTP requests
type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// List handles listing appointments within an optional RFC 3339 time window
func (h *AppointmentHandler) List(c *gin.Context) {
	var from, to time.Time
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.BadRequest(c, "Invalid 'from' timestamp")
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			response.BadRequest(c, "Invalid 'to' timestamp")
			return
		}
		to = parsed
	}

	appointments, err := h.appointmentService.List(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Collection(c, 200, "appointments", appointments, int64(len(appointments)))
}

// ListByPatient handles listing one patient's appointments
func (h *AppointmentHandler) ListByPatient(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid patient id")
		return
	}

	appointments, err := h.appointmentService.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Collection(c, 200, "appointments", appointments, int64(len(appointments)))
}

// Get handles fetching one appointment
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid appointment id")
		return
	}

	appointment, err := h.appointmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Resource(c, 200, "", "appointment", appointment)
}

// Create handles scheduling a new appointment
func (h *AppointmentHandler) Create(c *gin.Context) {
	var input service.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	appointment, err := h.appointmentService.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Resource(c, 201, "Appointment scheduled successfully", "appointment", appointment)
}

// Update handles modifying an existing appointment
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid appointment id")
		return
	}

	var input service.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	appointment, err := h.appointmentService.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Resource(c, 200, "Appointment updated successfully", "appointment", appointment)
}

// Delete handles removing an appointment
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid appointment id")
		return
	}

	if err := h.appointmentService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment deleted successfully")
}
