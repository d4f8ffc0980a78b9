package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/application/history"
	"github.com/optisys/optisys-api/internal/domain/entity"
	"github.com/optisys/optisys-api/internal/domain/enum"
	"github.com/optisys/optisys-api/internal/domain/repository"
	"github.com/optisys/optisys-api/pkg/apperror"
	"github.com/optisys/optisys-api/pkg/dates"
	"github.com/optisys/optisys-api/pkg/finance"
)

var receiptNumberPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// PrescriptionService validates raw form input, builds submission-ready
// prescription records and keeps the per-patient history cache in step with
// confirmed writes.
type PrescriptionService struct {
	prescriptionRepo repository.PrescriptionRepository
	patientRepo      repository.PatientRepository
	history          *history.Store
}

// NewPrescriptionService creates a new prescription service
func NewPrescriptionService(
	prescriptionRepo repository.PrescriptionRepository,
	patientRepo repository.PatientRepository,
	historyStore *history.Store,
) *PrescriptionService {
	return &PrescriptionService{
		prescriptionRepo: prescriptionRepo,
		patientRepo:      patientRepo,
		history:          historyStore,
	}
}

// PrescriptionInput models the raw form fields as the operator entered them.
// Numeric values arrive as strings and are coerced during Build; refraction
// tokens are free text and stored as-is.
type PrescriptionInput struct {
	Date                string `json:"date"`
	PromisedDate        string `json:"promised_date"`
	PractitionerName    string `json:"practitioner_name"`
	Diagnosis           string `json:"diagnosis"`
	SphereOD            string `json:"sphere_od"`
	CylinderOD          string `json:"cylinder_od"`
	AxisOD              string `json:"axis_od"`
	SphereOI            string `json:"sphere_oi"`
	CylinderOI          string `json:"cylinder_oi"`
	AxisOI              string `json:"axis_oi"`
	Addition            string `json:"addition"`
	PupillaryDistance   string `json:"pupillary_distance"`
	ConceptsDescription string `json:"concepts_description"`
	Subtotal            string `json:"subtotal"`
	DiscountPercent     string `json:"discount_percent"`
	AmountPaid          string `json:"amount_paid"`
	PaymentMethod       string `json:"payment_method"`
	ReceiptNumber       string `json:"receipt_number"`
	Notes               string `json:"notes"`
}

// Validate checks the raw fields and returns one error per offending field.
// A submission that fails validation never reaches the persistence layer.
func (s *PrescriptionService) Validate(in *PrescriptionInput) []apperror.FieldError {
	var errs []apperror.FieldError
	add := func(field, message string) {
		errs = append(errs, apperror.FieldError{Field: field, Message: message})
	}

	if strings.TrimSpace(in.Diagnosis) == "" {
		add("diagnosis", "Diagnosis is required")
	}
	if strings.TrimSpace(in.ConceptsDescription) == "" {
		add("concepts_description", "Billed concepts description is required")
	}
	if strings.TrimSpace(in.Date) == "" {
		add("date", "Date is required")
	} else if !dates.IsISO(strings.TrimSpace(in.Date)) {
		add("date", "Date must be YYYY-MM-DD")
	}
	if v := strings.TrimSpace(in.PromisedDate); v != "" && !dates.IsISO(v) {
		add("promised_date", "Promised date must be YYYY-MM-DD")
	}

	subtotal, ok := parseAmount(in.Subtotal)
	if !ok {
		add("subtotal", "Subtotal must be a number")
	} else if strings.TrimSpace(in.Subtotal) == "" {
		add("subtotal", "Subtotal is required")
	} else if subtotal < 0 {
		add("subtotal", "Subtotal must not be negative")
	}

	discount, ok := parseAmount(in.DiscountPercent)
	if !ok {
		add("discount_percent", "Discount must be a number")
	} else if discount < 0 || discount > 100 {
		add("discount_percent", "Discount must be between 0 and 100")
	}

	paid, ok := parseAmount(in.AmountPaid)
	if !ok {
		add("amount_paid", "Amount paid must be a number")
	} else if paid < 0 {
		add("amount_paid", "Amount paid must not be negative")
	} else if subtotal >= 0 && discount >= 0 && discount <= 100 {
		// cross-field check against the derived net total
		if net := finance.Compute(subtotal, discount, paid).NetTotal; paid > net {
			add("amount_paid", "Amount paid must not exceed the net total")
		}
	}

	receipt := strings.TrimSpace(in.ReceiptNumber)
	if receipt == "" {
		add("receipt_number", "Receipt number is required")
	} else if !receiptNumberPattern.MatchString(receipt) {
		add("receipt_number", "Receipt number may only contain letters, digits and hyphens")
	}

	return errs
}

// Build turns validated raw fields into a prescription record. The
// practitioner name defaults to the logged-in operator's display name; dates
// stay as YYYY-MM-DD strings untouched. Returns a validation error without
// touching storage when the input is invalid.
func (s *PrescriptionService) Build(in *PrescriptionInput, operatorName string) (*entity.Prescription, error) {
	if errs := s.Validate(in); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	practitioner := strings.TrimSpace(in.PractitionerName)
	if practitioner == "" {
		practitioner = operatorName
	}

	subtotal, _ := parseAmount(in.Subtotal)
	discount, _ := parseAmount(in.DiscountPercent)
	paid, _ := parseAmount(in.AmountPaid)

	return &entity.Prescription{
		Date:                strings.TrimSpace(in.Date),
		PromisedDate:        strings.TrimSpace(in.PromisedDate),
		PractitionerName:    practitioner,
		Diagnosis:           strings.TrimSpace(in.Diagnosis),
		SphereOD:            strings.TrimSpace(in.SphereOD),
		CylinderOD:          strings.TrimSpace(in.CylinderOD),
		AxisOD:              strings.TrimSpace(in.AxisOD),
		SphereOI:            strings.TrimSpace(in.SphereOI),
		CylinderOI:          strings.TrimSpace(in.CylinderOI),
		AxisOI:              strings.TrimSpace(in.AxisOI),
		Addition:            strings.TrimSpace(in.Addition),
		PupillaryDistance:   strings.TrimSpace(in.PupillaryDistance),
		ConceptsDescription: strings.TrimSpace(in.ConceptsDescription),
		Subtotal:            subtotal,
		DiscountPercent:     discount,
		AmountPaid:          paid,
		PaymentMethod:       enum.ParsePaymentMethod(strings.TrimSpace(in.PaymentMethod)),
		ReceiptNumber:       strings.TrimSpace(in.ReceiptNumber),
		Notes:               strings.TrimSpace(in.Notes),
	}, nil
}

// Create validates, builds and persists a prescription under a patient. The
// history cache is only touched after the write is confirmed.
func (s *PrescriptionService) Create(ctx context.Context, patientID uuid.UUID, in *PrescriptionInput, operatorName string) (*entity.Patient, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	prescription, err := s.Build(in, operatorName)
	if err != nil {
		return nil, err
	}
	prescription.PatientID = patientID

	if err := s.prescriptionRepo.Create(ctx, prescription); err != nil {
		return nil, err
	}

	s.history.Append(*prescription)

	// bump the patient's last visit to the prescription date
	date := prescription.Date
	patient.LastVisit = &date
	if err := s.patientRepo.Update(ctx, patient); err != nil {
		return nil, err
	}

	return s.patientWithHistory(ctx, patientID)
}

// ListByPatient returns a patient's history newest first and reprimes the
// cache from the confirmed fetch.
func (s *PrescriptionService) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]entity.Prescription, error) {
	patient, err := s.patientRepo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	list, err := s.prescriptionRepo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	s.history.Load(patientID, list)
	return s.history.History(patientID), nil
}

// Delete removes a prescription from both the store and the patient's cached
// history, by identity.
func (s *PrescriptionService) Delete(ctx context.Context, patientID, prescriptionID uuid.UUID) error {
	prescription, err := s.prescriptionRepo.GetByID(ctx, prescriptionID)
	if err != nil {
		return err
	}
	if prescription == nil || prescription.PatientID != patientID {
		return apperror.NewNotFoundError("Prescription")
	}

	if err := s.prescriptionRepo.Delete(ctx, prescriptionID); err != nil {
		return err
	}

	s.history.Remove(patientID, prescriptionID)
	return nil
}

func (s *PrescriptionService) patientWithHistory(ctx context.Context, patientID uuid.UUID) (*entity.Patient, error) {
	patient, err := s.patientRepo.GetWithHistory(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}
	return patient, nil
}

// parseAmount coerces a numeric form field. Empty input means 0; the second
// return value reports whether the text was parseable at all.
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
