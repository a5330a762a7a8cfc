package repositories

import (
	"context"
	"errors"

	"nobateasy/internal/adapters/persistence/models"
	"nobateasy/internal/core/domain"

	"gorm.io/gorm"
)

// GormAppointmentRepository handles appointment database operations
type GormAppointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

// Create inserts a new appointment row
func (r *GormAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

// GetByTrackingCode returns the appointment whose tracking code exactly
// equals code (binary comparison, no partial match)
func (r *GormAppointmentRepository) GetByTrackingCode(ctx context.Context, code string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Where("BINARY tracking_code = ?", code).
		First(&appointment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAppointmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// List returns every appointment newest-first, ties broken by id
func (r *GormAppointmentRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&appointments).Error
	return appointments, err
}

// SearchByTrackingCode returns appointments whose tracking code contains
// term, newest-first. LIKE under the default utf8mb4 collation, so the
// substring match is case-insensitive.
func (r *GormAppointmentRepository) SearchByTrackingCode(ctx context.Context, term string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Where("tracking_code LIKE ?", "%"+term+"%").
		Order("created_at DESC, id DESC").
		Find(&appointments).Error
	return appointments, err
}

// Update applies a column map to the row matching code. The tracking code
// column is never part of changes; callers build the map from the update
// schema which has no code field. RowsAffected is not inspected: MySQL
// reports 0 when the new values equal the old ones, so existence is checked
// with GetByTrackingCode instead.
func (r *GormAppointmentRepository) Update(ctx context.Context, code string, changes map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("BINARY tracking_code = ?", code).
		Updates(changes).Error
}

// ExistsByTrackingCode reports whether a tracking code is already taken
func (r *GormAppointmentRepository) ExistsByTrackingCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("tracking_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

// CountUnscheduled counts records still waiting for a staff-assigned slot
func (r *GormAppointmentRepository) CountUnscheduled(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("appointment_date IS NULL").
		Count(&count).Error
	return count, err
}
