package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/domain/entity"
	"github.com/optisys/optisys-api/internal/domain/repository"
	"github.com/optisys/optisys-api/pkg/apperror"
	"github.com/optisys/optisys-api/pkg/dates"
	"github.com/optisys/optisys-api/pkg/pdfgen"
)

// copySpec is the explicit field set for one printed copy of a prescription.
// Which data each copy carries is configuration here, not conditional logic
// scattered through the composer.
type copySpec struct {
	Label             string
	HeightMM          float64
	IncludeRefraction bool
	IncludeDiagnosis  bool
}

var (
	// short take-away slip for the patient, no clinical data
	patientCopy = copySpec{Label: "PATIENT COPY", HeightMM: 80}
	// full-page archival copy with refraction table and diagnosis
	clinicCopy = copySpec{Label: "CLINIC COPY", HeightMM: 200, IncludeRefraction: true, IncludeDiagnosis: true}
)

// PrintService composes printable prescription slips and runs the
// rasterize-and-assemble pipeline over the shared off-screen surface.
type PrintService struct {
	prescriptionRepo repository.PrescriptionRepository
	patientRepo      repository.PatientRepository
	clinic           entity.ClinicInfo
	surface          *pdfgen.Surface
}

// NewPrintService creates a new print service
func NewPrintService(
	prescriptionRepo repository.PrescriptionRepository,
	patientRepo repository.PatientRepository,
	clinic entity.ClinicInfo,
	surface *pdfgen.Surface,
) *PrintService {
	return &PrintService{
		prescriptionRepo: prescriptionRepo,
		patientRepo:      patientRepo,
		clinic:           clinic,
		surface:          surface,
	}
}

// BuildSlip assembles the printable value object from a stored prescription
// and its patient. Financials are re-derived from the stored amounts, never
// copied from a previous computation.
func (s *PrintService) BuildSlip(prescription *entity.Prescription, patient *entity.Patient) (*entity.PrescriptionSlip, error) {
	if prescription == nil {
		return nil, apperror.NewBadRequestError("No prescription selected for printing")
	}
	if patient == nil {
		return nil, apperror.NewBadRequestError("No patient selected for printing")
	}
	if strings.TrimSpace(prescription.PractitionerName) == "" {
		return nil, apperror.NewBadRequestError("Prescription has no practitioner recorded")
	}

	return &entity.PrescriptionSlip{
		Clinic:           s.clinic,
		PatientName:      orNA(patient.FullName),
		ReceiptNumber:    orNA(prescription.ReceiptNumber),
		Date:             dates.Display(prescription.Date),
		PromisedDate:     dates.Display(prescription.PromisedDate),
		PractitionerName: prescription.PractitionerName,
		Diagnosis:        orNA(prescription.Diagnosis),
		Refraction: [2]entity.RefractionRow{
			{Eye: "OD", Sphere: orDash(prescription.SphereOD), Cylinder: orDash(prescription.CylinderOD), Axis: orDash(prescription.AxisOD)},
			{Eye: "OI", Sphere: orDash(prescription.SphereOI), Cylinder: orDash(prescription.CylinderOI), Axis: orDash(prescription.AxisOI)},
		},
		Addition:        orDash(prescription.Addition),
		PupillaryDist:   orDash(prescription.PupillaryDistance),
		Subtotal:        prescription.Subtotal,
		DiscountPercent: prescription.DiscountPercent,
		AmountPaid:      prescription.AmountPaid,
		PaymentMethod:   prescription.PaymentMethod.String(),
		Financials:      prescription.Financials(),
	}, nil
}

// ComposeSlipLayout lays out both copies of a slip as one linear document:
// patient copy on top, a tear-off line, then the clinic copy.
func (s *PrintService) ComposeSlipLayout(slip *entity.PrescriptionSlip) *pdfgen.Document {
	return &pdfgen.Document{
		WidthMM: 210,
		PadMM:   10,
		Sections: []pdfgen.Section{
			s.composeCopy(slip, patientCopy),
			{HeightMM: 8, Nodes: []pdfgen.Node{pdfgen.CutLine{Label: "CUT HERE"}}},
			s.composeCopy(slip, clinicCopy),
		},
	}
}

func (s *PrintService) composeCopy(slip *entity.PrescriptionSlip, spec copySpec) pdfgen.Section {
	nodes := []pdfgen.Node{
		pdfgen.Text{S: spec.Label, SizePt: 9, Bold: true, Align: pdfgen.AlignRight},
		pdfgen.Text{S: slip.Clinic.Name, SizePt: 15, Bold: true},
	}
	if slip.Clinic.Address != "" {
		nodes = append(nodes, pdfgen.Text{S: slip.Clinic.Address, SizePt: 8})
	}
	if slip.Clinic.Phone != "" {
		nodes = append(nodes, pdfgen.Text{S: "Tel: " + slip.Clinic.Phone, SizePt: 8})
	}
	nodes = append(nodes,
		pdfgen.Rule{},
		pdfgen.KeyValue{Key: "Patient:", Value: slip.PatientName, SizePt: 10, Bold: true},
		pdfgen.KeyValue{Key: "Receipt No.:", Value: slip.ReceiptNumber, SizePt: 9},
		pdfgen.KeyValue{Key: "Date:", Value: slip.Date, SizePt: 9},
		pdfgen.KeyValue{Key: "Promised date:", Value: slip.PromisedDate, SizePt: 9},
		pdfgen.KeyValue{Key: "Practitioner:", Value: slip.PractitionerName, SizePt: 9},
	)

	if spec.IncludeRefraction {
		nodes = append(nodes,
			pdfgen.Spacer{MM: 4},
			pdfgen.Text{S: "REFRACTION", SizePt: 10, Bold: true},
			pdfgen.Table{
				Header: []string{"EYE", "SPHERE", "CYLINDER", "AXIS", "ADD", "PD"},
				Rows: [][]string{
					{slip.Refraction[0].Eye, slip.Refraction[0].Sphere, slip.Refraction[0].Cylinder, slip.Refraction[0].Axis, slip.Addition, slip.PupillaryDist},
					{slip.Refraction[1].Eye, slip.Refraction[1].Sphere, slip.Refraction[1].Cylinder, slip.Refraction[1].Axis, slip.Addition, slip.PupillaryDist},
				},
			},
		)
	}
	if spec.IncludeDiagnosis {
		nodes = append(nodes,
			pdfgen.Spacer{MM: 4},
			pdfgen.Text{S: "DIAGNOSIS", SizePt: 10, Bold: true},
			pdfgen.Text{S: slip.Diagnosis, SizePt: 9, Wrap: true},
		)
	}

	section := pdfgen.Section{HeightMM: spec.HeightMM, Nodes: nodes}
	if slip.HasFinancials() {
		section.Footer = []pdfgen.Node{
			pdfgen.Rule{},
			pdfgen.KeyValue{Key: "Subtotal:", Value: money(slip.Subtotal), SizePt: 9},
			pdfgen.KeyValue{Key: fmt.Sprintf("Discount (%s%%):", trimFloat(slip.DiscountPercent)), Value: money(slip.Financials.DiscountAmount), SizePt: 9},
			pdfgen.KeyValue{Key: "NET TOTAL:", Value: money(slip.Financials.NetTotal), SizePt: 10, Bold: true},
			pdfgen.KeyValue{Key: "Paid (" + slip.PaymentMethod + "):", Value: money(slip.AmountPaid), SizePt: 9},
			pdfgen.KeyValue{Key: "BALANCE DUE:", Value: money(slip.Financials.BalanceDue), SizePt: 10, Bold: true},
		}
	}
	return section
}

// GeneratePDF renders both copies of a prescription to a single printable
// PDF. The shared surface is acquired only after all inputs check out, and is
// released on every exit path.
func (s *PrintService) GeneratePDF(ctx context.Context, patientID, prescriptionID uuid.UUID) ([]byte, error) {
	prescription, err := s.prescriptionRepo.GetByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil || prescription.PatientID != patientID {
		return nil, apperror.NewNotFoundError("Prescription")
	}

	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	slip, err := s.BuildSlip(prescription, patient)
	if err != nil {
		return nil, err
	}
	doc := s.ComposeSlipLayout(slip)

	lease := s.surface.Acquire()
	defer lease.Release()

	img, err := lease.Render(doc)
	if err != nil {
		return nil, apperror.NewInternalError("Could not render the prescription layout")
	}

	pdf, err := pdfgen.AssemblePDF(img)
	if err != nil {
		return nil, apperror.NewInternalError("Could not assemble the prescription PDF")
	}
	return pdf, nil
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func money(v float64) string {
	return fmt.Sprintf("$ %.2f", v)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
