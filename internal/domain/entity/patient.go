package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient is a clinic patient. A patient owns its prescription history; a
// prescription never outlives its patient.
//
// Calendar fields are plain YYYY-MM-DD strings, never time.Time, so a birth
// date entered in one timezone cannot display shifted by a day in another.
type Patient struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FullName          string         `gorm:"size:255;not null" json:"full_name"`
	Phone             *string        `gorm:"size:50" json:"phone,omitempty"`
	Email             *string        `gorm:"size:255" json:"email,omitempty"`
	BirthDate         *string        `gorm:"size:10" json:"birth_date,omitempty"`
	Occupation        *string        `gorm:"size:255" json:"occupation,omitempty"`
	Address           *string        `gorm:"type:text" json:"address,omitempty"`
	MedicalBackground *string        `gorm:"type:text" json:"medical_background,omitempty"`
	Notes             *string        `gorm:"type:text" json:"notes,omitempty"`
	LastVisit         *string        `gorm:"size:10" json:"last_visit,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Prescriptions []Prescription `gorm:"foreignKey:PatientID" json:"history_of_prescriptions,omitempty"`
	Appointments  []Appointment  `gorm:"foreignKey:PatientID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new patient
func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Patient model
func (Patient) TableName() string {
	return "patients"
}
