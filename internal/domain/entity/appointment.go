package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Appointment is a scheduled patient visit. Unlike prescriptions, an
// appointment carries a real timestamp because the time of day matters.
type Appointment struct {
	ID              uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	PatientID       uuid.UUID              `gorm:"type:uuid;not null;index" json:"patient_id"`
	StartsAt        time.Time              `gorm:"not null;index" json:"starts_at"`
	DurationMinutes int                    `gorm:"default:30" json:"duration_minutes"`
	Type            string                 `gorm:"size:100;default:'Visual Exam'" json:"type"`
	Practitioner    string                 `gorm:"size:255" json:"practitioner"`
	Status          enum.AppointmentStatus `gorm:"default:0" json:"status"`
	Notes           string                 `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	DeletedAt       gorm.DeletedAt         `gorm:"index" json:"-"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

// BeforeCreate generates a UUID before creating a new appointment
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
