package repositories

import (
	"context"

	"nobateasy/internal/adapters/persistence/models"
)

// AppointmentRepository defines appointment repository interface.
//
// Implementations translate their storage-level "no rows" condition into
// domain.ErrAppointmentNotFound; every other failure surfaces as-is so the
// service layer can classify it as an internal error.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByTrackingCode(ctx context.Context, code string) (*models.Appointment, error)
	List(ctx context.Context) ([]models.Appointment, error)
	SearchByTrackingCode(ctx context.Context, term string) ([]models.Appointment, error)
	Update(ctx context.Context, code string, changes map[string]interface{}) error
	ExistsByTrackingCode(ctx context.Context, code string) (bool, error)
	CountUnscheduled(ctx context.Context) (int64, error)
}
