package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/domain/enum"
	"github.com/optisys/optisys-api/pkg/finance"
	"gorm.io/gorm"
)

// Prescription is an issued optical prescription together with its sale
// figures. Only the entered amounts (subtotal, discount percent, amount paid)
// are persisted; discount amount, net total and balance due are derived at
// every read site so the stored record can never drift from them.
//
// Refraction values are free-text tokens (e.g. "-1.25", "+2.00"), stored
// exactly as entered and rendered with a "-" placeholder when empty.
type Prescription struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`

	Date             string `gorm:"size:10;not null" json:"date"`
	PromisedDate     string `gorm:"size:10" json:"promised_date"`
	PractitionerName string `gorm:"size:255" json:"practitioner_name"`
	Diagnosis        string `gorm:"type:text;not null" json:"diagnosis"`

	// Refraction, one row per eye (OD = right, OI = left)
	SphereOD   string `gorm:"size:20" json:"sphere_od"`
	CylinderOD string `gorm:"size:20" json:"cylinder_od"`
	AxisOD     string `gorm:"size:20" json:"axis_od"`
	SphereOI   string `gorm:"size:20" json:"sphere_oi"`
	CylinderOI string `gorm:"size:20" json:"cylinder_oi"`
	AxisOI     string `gorm:"size:20" json:"axis_oi"`

	Addition          string `gorm:"size:20" json:"addition"`
	PupillaryDistance string `gorm:"size:20" json:"pupillary_distance"`

	ConceptsDescription string             `gorm:"type:text;not null" json:"concepts_description"`
	Subtotal            float64            `gorm:"not null;default:0" json:"subtotal"`
	DiscountPercent     float64            `gorm:"not null;default:0" json:"discount_percent"`
	AmountPaid          float64            `gorm:"not null;default:0" json:"amount_paid"`
	PaymentMethod       enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	ReceiptNumber       string             `gorm:"size:100;not null" json:"receipt_number"`
	Notes               string             `gorm:"type:text" json:"notes"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}

// Financials recomputes the derived monetary fields from the stored amounts.
func (p *Prescription) Financials() finance.Breakdown {
	return finance.Compute(p.Subtotal, p.DiscountPercent, p.AmountPaid)
}

// MarshalJSON attaches the derived financial fields to API responses.
func (p Prescription) MarshalJSON() ([]byte, error) {
	type Alias Prescription
	b := p.Financials()
	return json.Marshal(&struct {
		Alias
		DiscountAmount float64 `json:"discount_amount"`
		NetTotal       float64 `json:"net_total"`
		BalanceDue     float64 `json:"balance_due"`
	}{
		Alias:          Alias(p),
		DiscountAmount: b.DiscountAmount,
		NetTotal:       b.NetTotal,
		BalanceDue:     b.BalanceDue,
	})
}

// BeforeCreate generates a UUID before creating a new prescription
func (p *Prescription) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Prescription model
func (Prescription) TableName() string {
	return "prescriptions"
}
