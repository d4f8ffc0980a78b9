package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/optisys/optisys-api/internal/application/service"
	"github.com/optisys/optisys-api/internal/presentation/http/dto/response"
)

// PrescriptionHandler handles prescription-related HTTP requests
type PrescriptionHandler struct {
	prescriptionService *service.PrescriptionService
	printService        *service.PrintService
}

// NewPrescriptionHandler creates a new prescription handler
func NewPrescriptionHandler(
	prescriptionService *service.PrescriptionService,
	printService *service.PrintService,
) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionService: prescriptionService,
		printService:        printService,
	}
}

// List handles listing one patient's prescription history, newest first
func (h *PrescriptionHandler) List(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid patient id")
		return
	}

	prescriptions, err := h.prescriptionService.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Collection(c, 200, "prescriptions", prescriptions, int64(len(prescriptions)))
}

// Create handles adding a prescription to a patient's record. The response
// carries the refreshed patient so the caller sees the updated history.
func (h *PrescriptionHandler) Create(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid patient id")
		return
	}

	var input service.PrescriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	patient, err := h.prescriptionService.Create(c.Request.Context(), patientID, &input, GetOperatorName(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Resource(c, 201, "Prescription saved successfully", "patient", patient)
}

// Delete handles removing one prescription from a patient's record
func (h *PrescriptionHandler) Delete(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid patient id")
		return
	}
	prescriptionID, ok := parseIDParam(c, "prescriptionId")
	if !ok {
		response.BadRequest(c, "Invalid prescription id")
		return
	}

	if err := h.prescriptionService.Delete(c.Request.Context(), patientID, prescriptionID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Prescription deleted successfully")
}

// Print renders both copies of a prescription and streams the PDF inline.
// The document carries an auto-print directive, so opening it in a viewer
// brings up the print dialog.
func (h *PrescriptionHandler) Print(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid patient id")
		return
	}
	prescriptionID, ok := parseIDParam(c, "prescriptionId")
	if !ok {
		response.BadRequest(c, "Invalid prescription id")
		return
	}

	pdf, err := h.printService.GeneratePDF(c.Request.Context(), patientID, prescriptionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="prescription.pdf"`)
	c.Data(200, "application/pdf", pdf)
}
