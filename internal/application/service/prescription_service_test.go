package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/application/history"
	"github.com/optisys/optisys-api/internal/domain/entity"
	"github.com/optisys/optisys-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *PrescriptionInput {
	return &PrescriptionInput{
		Date:                "2025-03-10",
		PromisedDate:        "2025-03-15",
		Diagnosis:           "Simple myopia, both eyes",
		SphereOD:            "-1.25",
		SphereOI:            "-1.00",
		ConceptsDescription: "Single vision lenses, CR-39",
		Subtotal:            "100",
		DiscountPercent:     "10",
		AmountPaid:          "50",
		PaymentMethod:       "Cash",
		ReceiptNumber:       "AB-12",
	}
}

func newPrescriptionFixture() (*PrescriptionService, *fakePatientRepo, *history.Store) {
	prescriptionRepo := newFakePrescriptionRepo()
	patientRepo := newFakePatientRepo(prescriptionRepo)
	store := history.NewStore()
	return NewPrescriptionService(prescriptionRepo, patientRepo, store), patientRepo, store
}

func fieldMessages(errs []apperror.FieldError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Message
	}
	return out
}

func TestValidateAcceptsWellFormedInput(t *testing.T) {
	svc, _, _ := newPrescriptionFixture()
	assert.Empty(t, svc.Validate(validInput()))
}

func TestValidateReceiptNumberFormat(t *testing.T) {
	svc, _, _ := newPrescriptionFixture()

	in := validInput()
	in.ReceiptNumber = "AB/12"
	errs := fieldMessages(svc.Validate(in))
	assert.Contains(t, errs, "receipt_number")

	in.ReceiptNumber = ""
	errs = fieldMessages(svc.Validate(in))
	assert.Contains(t, errs, "receipt_number")
}

func TestValidateRejectsOverpayment(t *testing.T) {
	svc, _, _ := newPrescriptionFixture()

	in := validInput()
	in.AmountPaid = "95" // net total is 90 after the 10% discount
	errs := fieldMessages(svc.Validate(in))
	assert.Contains(t, errs, "amount_paid")

	in.AmountPaid = "90"
	assert.Empty(t, svc.Validate(in))
}

func TestValidateDiscountRange(t *testing.T) {
	svc, _, _ := newPrescriptionFixture()

	in := validInput()
	in.DiscountPercent = "150"
	errs := fieldMessages(svc.Validate(in))
	assert.Contains(t, errs, "discount_percent")

	in.DiscountPercent = "-5"
	errs = fieldMessages(svc.Validate(in))
	assert.Contains(t, errs, "discount_percent")
}

func TestValidateRequiredFields(t *testing.T) {
	svc, _, _ := newPrescriptionFixture()

	in := validInput()
	in.Diagnosis = "  "
	in.ConceptsDescription = ""
	in.Subtotal = "abc"
	in.Date = "10/03/2025"
	errs := fieldMessages(svc.Validate(in))
	assert.Contains(t, errs, "diagnosis")
	assert.Contains(t, errs, "concepts_description")
	assert.Contains(t, errs, "subtotal")
	assert.Contains(t, errs, "date")
}

func TestBuildDefaultsPractitionerToOperator(t *testing.T) {
	svc, _, _ := newPrescriptionFixture()

	in := validInput()
	in.PractitionerName = ""
	p, err := svc.Build(in, "Dr. Amaya Torres")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Amaya Torres", p.PractitionerName)

	in.PractitionerName = "Dr. Ruiz"
	p, err = svc.Build(in, "Dr. Amaya Torres")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Ruiz", p.PractitionerName)
}

func TestBuildKeepsDatesAsStrings(t *testing.T) {
	svc, _, _ := newPrescriptionFixture()

	p, err := svc.Build(validInput(), "op")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", p.Date)
	assert.Equal(t, "2025-03-15", p.PromisedDate)
}

func TestBuildDerivedFinancialsAreNotStored(t *testing.T) {
	svc, _, _ := newPrescriptionFixture()

	p, err := svc.Build(validInput(), "op")
	require.NoError(t, err)

	// stored amounts only; the breakdown is recomputed on demand
	assert.Equal(t, 100.0, p.Subtotal)
	assert.Equal(t, 10.0, p.DiscountPercent)
	assert.Equal(t, 50.0, p.AmountPaid)

	f := p.Financials()
	assert.Equal(t, 10.0, f.DiscountAmount)
	assert.Equal(t, 90.0, f.NetTotal)
	assert.Equal(t, 40.0, f.BalanceDue)

	// re-deriving is idempotent
	assert.Equal(t, f, p.Financials())
}

func TestBuildReturnsValidationError(t *testing.T) {
	svc, _, _ := newPrescriptionFixture()

	in := validInput()
	in.ReceiptNumber = "no/good"
	_, err := svc.Build(in, "op")
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.NotEmpty(t, appErr.Errors)
}

func TestCreateAppendsToHistoryAndBumpsLastVisit(t *testing.T) {
	svc, patientRepo, store := newPrescriptionFixture()
	ctx := context.Background()

	patient := &entity.Patient{FullName: "Jane Doe"}
	require.NoError(t, patientRepo.Create(ctx, patient))

	updated, err := svc.Create(ctx, patient.ID, validInput(), "op")
	require.NoError(t, err)
	require.NotNil(t, updated.LastVisit)
	assert.Equal(t, "2025-03-10", *updated.LastVisit)

	hist := store.History(patient.ID)
	require.Len(t, hist, 1)
	assert.Equal(t, "AB-12", hist[0].ReceiptNumber)
}

func TestCreateUnknownPatient(t *testing.T) {
	svc, _, _ := newPrescriptionFixture()

	_, err := svc.Create(context.Background(), uuid.New(), validInput(), "op")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestDeleteRemovesFromStoreAndHistory(t *testing.T) {
	svc, patientRepo, store := newPrescriptionFixture()
	ctx := context.Background()

	patient := &entity.Patient{FullName: "Jane Doe"}
	require.NoError(t, patientRepo.Create(ctx, patient))
	_, err := svc.Create(ctx, patient.ID, validInput(), "op")
	require.NoError(t, err)

	hist, err := svc.ListByPatient(ctx, patient.ID)
	require.NoError(t, err)
	require.Len(t, hist, 1)

	require.NoError(t, svc.Delete(ctx, patient.ID, hist[0].ID))
	assert.Empty(t, store.History(patient.ID))

	got, err := svc.ListByPatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteRejectsForeignPrescription(t *testing.T) {
	svc, patientRepo, _ := newPrescriptionFixture()
	ctx := context.Background()

	owner := &entity.Patient{FullName: "Jane Doe"}
	other := &entity.Patient{FullName: "John Roe"}
	require.NoError(t, patientRepo.Create(ctx, owner))
	require.NoError(t, patientRepo.Create(ctx, other))

	_, err := svc.Create(ctx, owner.ID, validInput(), "op")
	require.NoError(t, err)
	hist, err := svc.ListByPatient(ctx, owner.ID)
	require.NoError(t, err)

	err = svc.Delete(ctx, other.ID, hist[0].ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestListByPatientNewestFirst(t *testing.T) {
	svc, patientRepo, _ := newPrescriptionFixture()
	ctx := context.Background()

	patient := &entity.Patient{FullName: "Jane Doe"}
	require.NoError(t, patientRepo.Create(ctx, patient))

	older := validInput()
	older.Date = "2024-01-05"
	older.ReceiptNumber = "R-1"
	newer := validInput()
	newer.Date = "2025-06-01"
	newer.ReceiptNumber = "R-2"

	_, err := svc.Create(ctx, patient.ID, older, "op")
	require.NoError(t, err)
	_, err = svc.Create(ctx, patient.ID, newer, "op")
	require.NoError(t, err)

	hist, err := svc.ListByPatient(ctx, patient.ID)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, "R-2", hist[0].ReceiptNumber)
	assert.Equal(t, "R-1", hist[1].ReceiptNumber)
}
