package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/optisys/optisys-api/internal/domain/entity"
	domainRepo "github.com/optisys/optisys-api/internal/domain/repository"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).Preload("Patient").First(&appointment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Appointment{}, "id = ?", id).Error
}

func (r *appointmentRepository) List(ctx context.Context, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment

	query := r.db.WithContext(ctx).Model(&entity.Appointment{}).Preload("Patient")
	if !from.IsZero() {
		query = query.Where("starts_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("starts_at < ?", to)
	}

	err := query.Order("starts_at ASC").Find(&appointments).Error
	return appointments, err
}

func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("starts_at DESC").
		Find(&appointments).Error
	return appointments, err
}
