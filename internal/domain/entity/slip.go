package entity

import "github.com/optisys/optisys-api/pkg/finance"

// ClinicInfo is the letterhead printed at the top of every document.
type ClinicInfo struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// RefractionRow is one eye's line in the printed refraction table.
type RefractionRow struct {
	Eye      string `json:"eye"` // "OD" or "OI"
	Sphere   string `json:"sphere"`
	Cylinder string `json:"cylinder"`
	Axis     string `json:"axis"`
}

// PrescriptionSlip is a value object representing a printable prescription.
// It is not a database entity; it is composed from prescription, patient and
// operator data at print time, with financials re-derived from the stored
// amounts rather than copied.
type PrescriptionSlip struct {
	Clinic           ClinicInfo        `json:"clinic"`
	PatientName      string            `json:"patient_name"`
	ReceiptNumber    string            `json:"receipt_number"`
	Date             string            `json:"date"`          // display form DD/MM/YYYY
	PromisedDate     string            `json:"promised_date"` // display form DD/MM/YYYY
	PractitionerName string            `json:"practitioner_name"`
	Diagnosis        string            `json:"diagnosis"`
	Refraction       [2]RefractionRow  `json:"refraction"` // OD first, OI second
	Addition         string            `json:"addition"`
	PupillaryDist    string            `json:"pupillary_distance"`
	Subtotal         float64           `json:"subtotal"`
	DiscountPercent  float64           `json:"discount_percent"`
	AmountPaid       float64           `json:"amount_paid"`
	PaymentMethod    string            `json:"payment_method"`
	Financials       finance.Breakdown `json:"financials"`
}

// HasFinancials reports whether the financial summary block should appear.
// A zero subtotal means the prescription carries no sale and the block is
// omitted entirely.
func (s *PrescriptionSlip) HasFinancials() bool {
	return s.Subtotal > 0
}
