package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/optisys/optisys-api/internal/application/service"
	"github.com/optisys/optisys-api/internal/presentation/http/dto/response"
)

// PatientHandler handles patient-related HTTP requests
type PatientHandler struct {
	patientService *service.PatientService
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// List handles listing patients with an optional search term
func (h *PatientHandler) List(c *gin.Context) {
	patients, count, err := h.patientService.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Collection(c, 200, "patients", patients, count)
}

// Get handles fetching one patient with their prescription history
func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid patient id")
		return
	}

	patient, err := h.patientService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Resource(c, 200, "", "patient", patient)
}

// Create handles registering a new patient
func (h *PatientHandler) Create(c *gin.Context) {
	var input service.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	patient, err := h.patientService.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Resource(c, 201, "Patient created successfully", "patient", patient)
}

// Update handles modifying an existing patient
func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid patient id")
		return
	}

	var input service.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	patient, err := h.patientService.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Resource(c, 200, "Patient updated successfully", "patient", patient)
}

// Delete handles removing a patient
func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid patient id")
		return
	}

	if err := h.patientService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Patient deleted successfully")
}
