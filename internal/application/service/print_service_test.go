package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/domain/entity"
	"github.com/optisys/optisys-api/pkg/apperror"
	"github.com/optisys/optisys-api/pkg/pdfgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrintFixture() (*PrintService, *fakePatientRepo, *fakePrescriptionRepo, *pdfgen.Surface) {
	prescriptionRepo := newFakePrescriptionRepo()
	patientRepo := newFakePatientRepo(prescriptionRepo)
	surface := pdfgen.NewSurface(4) // low density keeps the tests quick
	clinic := entity.ClinicInfo{Name: "Optisys Vision Center", Address: "12 High St", Phone: "555-0100"}
	return NewPrintService(prescriptionRepo, patientRepo, clinic, surface), patientRepo, prescriptionRepo, surface
}

func samplePrescription(patientID uuid.UUID) *entity.Prescription {
	return &entity.Prescription{
		PatientID:           patientID,
		Date:                "2025-03-10",
		PromisedDate:        "2025-03-15",
		PractitionerName:    "Dr. Amaya Torres",
		Diagnosis:           "Simple myopia, both eyes",
		SphereOD:            "-1.25",
		CylinderOD:          "-0.50",
		AxisOD:              "180",
		SphereOI:            "-1.00",
		ConceptsDescription: "Single vision lenses",
		Subtotal:            100,
		DiscountPercent:     10,
		AmountPaid:          50,
		ReceiptNumber:       "AB-12",
	}
}

func TestBuildSlipFormatsDatesAndPlaceholders(t *testing.T) {
	svc, _, _, _ := newPrintFixture()

	patient := &entity.Patient{ID: uuid.New(), FullName: "Jane Doe"}
	prescription := samplePrescription(patient.ID)
	prescription.CylinderOI = "" // missing refraction token

	slip, err := svc.BuildSlip(prescription, patient)
	require.NoError(t, err)

	assert.Equal(t, "10/03/2025", slip.Date)
	assert.Equal(t, "15/03/2025", slip.PromisedDate)
	assert.Equal(t, "OD", slip.Refraction[0].Eye)
	assert.Equal(t, "-", slip.Refraction[1].Cylinder)
	assert.Equal(t, "-", slip.Addition)
	assert.Equal(t, "Cash", slip.PaymentMethod)
	assert.Equal(t, 90.0, slip.Financials.NetTotal)
}

func TestBuildSlipRejectsMissingInputs(t *testing.T) {
	svc, _, _, _ := newPrintFixture()
	patient := &entity.Patient{ID: uuid.New(), FullName: "Jane Doe"}
	prescription := samplePrescription(patient.ID)

	_, err := svc.BuildSlip(nil, patient)
	assert.Error(t, err)

	_, err = svc.BuildSlip(prescription, nil)
	assert.Error(t, err)

	prescription.PractitionerName = " "
	_, err = svc.BuildSlip(prescription, patient)
	assert.Error(t, err)
}

func TestComposeSlipLayoutCopyFieldSets(t *testing.T) {
	svc, _, _, _ := newPrintFixture()
	patient := &entity.Patient{ID: uuid.New(), FullName: "Jane Doe"}
	slip, err := svc.BuildSlip(samplePrescription(patient.ID), patient)
	require.NoError(t, err)

	doc := svc.ComposeSlipLayout(slip)
	require.Len(t, doc.Sections, 3)

	patientSection, clinicSection := doc.Sections[0], doc.Sections[2]
	assert.Equal(t, 80.0, patientSection.HeightMM)
	assert.Equal(t, 200.0, clinicSection.HeightMM)

	// the refraction table belongs to the clinic copy only
	assert.False(t, hasTable(patientSection.Nodes))
	assert.True(t, hasTable(clinicSection.Nodes))

	// cut-off separator sits between the two copies
	_, ok := doc.Sections[1].Nodes[0].(pdfgen.CutLine)
	assert.True(t, ok)
}

func TestComposeSlipLayoutFinancialFooterGate(t *testing.T) {
	svc, _, _, _ := newPrintFixture()
	patient := &entity.Patient{ID: uuid.New(), FullName: "Jane Doe"}

	withSale, err := svc.BuildSlip(samplePrescription(patient.ID), patient)
	require.NoError(t, err)
	doc := svc.ComposeSlipLayout(withSale)
	assert.NotEmpty(t, doc.Sections[0].Footer)
	assert.NotEmpty(t, doc.Sections[2].Footer)

	noSale := samplePrescription(patient.ID)
	noSale.Subtotal = 0
	slip, err := svc.BuildSlip(noSale, patient)
	require.NoError(t, err)
	doc = svc.ComposeSlipLayout(slip)
	assert.Empty(t, doc.Sections[0].Footer)
	assert.Empty(t, doc.Sections[2].Footer)
}

func TestGeneratePDFProducesDocumentAndReleasesSurface(t *testing.T) {
	svc, patientRepo, prescriptionRepo, surface := newPrintFixture()
	ctx := context.Background()

	patient := &entity.Patient{FullName: "Jane Doe"}
	require.NoError(t, patientRepo.Create(ctx, patient))
	prescription := samplePrescription(patient.ID)
	require.NoError(t, prescriptionRepo.Create(ctx, prescription))

	pdf, err := svc.GeneratePDF(ctx, patient.ID, prescription.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.True(t, surface.Idle())

	// the surface is reusable for a second job
	pdf, err = svc.GeneratePDF(ctx, patient.ID, prescription.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.True(t, surface.Idle())
}

func TestGeneratePDFMissingInputsLeaveSurfaceIdle(t *testing.T) {
	svc, patientRepo, prescriptionRepo, surface := newPrintFixture()
	ctx := context.Background()

	// unknown prescription
	_, err := svc.GeneratePDF(ctx, uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
	assert.True(t, surface.Idle())

	// prescription exists but under a different patient
	patient := &entity.Patient{FullName: "Jane Doe"}
	require.NoError(t, patientRepo.Create(ctx, patient))
	prescription := samplePrescription(patient.ID)
	require.NoError(t, prescriptionRepo.Create(ctx, prescription))

	_, err = svc.GeneratePDF(ctx, uuid.New(), prescription.ID)
	require.Error(t, err)
	assert.True(t, surface.Idle())
}

func hasTable(nodes []pdfgen.Node) bool {
	for _, n := range nodes {
		if _, ok := n.(pdfgen.Table); ok {
			return true
		}
	}
	return false
}
