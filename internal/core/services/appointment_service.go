package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"nobateasy/internal/adapters/persistence/models"
	"nobateasy/internal/adapters/persistence/repositories"
	"nobateasy/internal/core/domain"
	"nobateasy/internal/pkg/timeformat"
	"nobateasy/internal/pkg/trackcode"
)

// maxCodeAttempts bounds tracking-code regeneration on store collisions
const maxCodeAttempts = 5

// SearchFields is the allow-list of searchable field names
var SearchFields = map[string]bool{
	"trackingCode":    true,
	"applicationDate": true,
	"paymentDate":     true,
	"appointmentDate": true,
}

// AppointmentService handles appointment business logic
type AppointmentService struct {
	repo repositories.AppointmentRepository
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(repo repositories.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repo: repo}
}

// ============================================================
// Input DTOs
// ============================================================

// CreateAppointmentInput represents a citizen's booking submission.
// Times are 24-hour HH:MM; the UI converts from 12-hour form before
// submitting. Appointment date/time stay empty until staff assign a slot.
type CreateAppointmentInput struct {
	ApplicationDate string `json:"applicationDate"`
	ApplicationTime string `json:"applicationTime"`
	PaymentDate     string `json:"paymentDate"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
}

// Optional is a three-state string for partial updates: key absent (leave
// the column untouched), key null/empty (clear to NULL), key set (overwrite).
// UnmarshalJSON only runs for keys present in the payload, which is what
// distinguishes absent from cleared.
type Optional struct {
	Set   bool
	Valid bool
	Value string
}

// UnmarshalJSON implements json.Unmarshaler
func (o *Optional) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	o.Valid = true
	o.Value = s
	return nil
}

// UpdateAppointmentInput represents a partial update. The tracking code is
// deliberately not part of the schema: it is immutable, and a code supplied
// in the raw payload is simply ignored.
type UpdateAppointmentInput struct {
	ApplicationDate Optional `json:"applicationDate"`
	ApplicationTime Optional `json:"applicationTime"`
	PaymentDate     Optional `json:"paymentDate"`
	AppointmentDate Optional `json:"appointmentDate"`
	AppointmentTime Optional `json:"appointmentTime"`
}

// ============================================================
// Operations
// ============================================================

// Create validates and persists a new appointment record, generating its
// tracking code. Validation failures enumerate every offending field.
func (s *AppointmentService) Create(ctx context.Context, input *CreateAppointmentInput) (*models.Appointment, error) {
	var fields []string
	if input.ApplicationDate == "" {
		fields = append(fields, "applicationDate")
	}
	if !timeformat.Valid24(input.ApplicationTime) {
		fields = append(fields, "applicationTime")
	}
	if input.PaymentDate == "" {
		fields = append(fields, "paymentDate")
	}
	if input.AppointmentTime != "" && !timeformat.Valid24(input.AppointmentTime) {
		fields = append(fields, "appointmentTime")
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	code, err := s.generateCode(ctx)
	if err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		TrackingCode:    code,
		ApplicationDate: input.ApplicationDate,
		ApplicationTime: input.ApplicationTime,
		PaymentDate:     input.PaymentDate,
		AppointmentDate: optionalColumn(input.AppointmentDate),
		AppointmentTime: optionalColumn(input.AppointmentTime),
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	log.Printf("✅ Appointment created: %s", code)
	return appointment, nil
}

// GetByTrackingCode returns the record for an exact tracking code match
func (s *AppointmentService) GetByTrackingCode(ctx context.Context, code string) (*models.Appointment, error) {
	return s.repo.GetByTrackingCode(ctx, code)
}

// List returns every record ordered by creation time, newest first
func (s *AppointmentService) List(ctx context.Context) ([]models.Appointment, error) {
	return s.repo.List(ctx)
}

// Update applies a partial change set to the record identified by code.
// Omitted fields stay untouched; optional fields explicitly sent as empty
// or null clear to NULL; required fields reject an explicit empty value.
func (s *AppointmentService) Update(ctx context.Context, code string, input *UpdateAppointmentInput) (*models.Appointment, error) {
	if _, err := s.repo.GetByTrackingCode(ctx, code); err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	var fields []string

	required := []struct {
		name   string
		column string
		value  Optional
		isTime bool
	}{
		{"applicationDate", "application_date", input.ApplicationDate, false},
		{"applicationTime", "application_time", input.ApplicationTime, true},
		{"paymentDate", "payment_date", input.PaymentDate, false},
	}
	for _, f := range required {
		if !f.value.Set {
			continue
		}
		if !f.value.Valid || (f.isTime && !timeformat.Valid24(f.value.Value)) {
			fields = append(fields, f.name)
			continue
		}
		changes[f.column] = f.value.Value
	}

	if input.AppointmentDate.Set {
		if input.AppointmentDate.Valid {
			changes["appointment_date"] = input.AppointmentDate.Value
		} else {
			changes["appointment_date"] = nil
		}
	}
	if input.AppointmentTime.Set {
		switch {
		case !input.AppointmentTime.Valid:
			changes["appointment_time"] = nil
		case !timeformat.Valid24(input.AppointmentTime.Value):
			fields = append(fields, "appointmentTime")
		default:
			changes["appointment_time"] = input.AppointmentTime.Value
		}
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	if len(changes) > 0 {
		if err := s.repo.Update(ctx, code, changes); err != nil {
			return nil, fmt.Errorf("failed to update appointment: %w", err)
		}
	}

	return s.repo.GetByTrackingCode(ctx, code)
}

// Search returns records matching query on an allow-listed field.
// Only trackingCode performs a real (substring) match; the remaining
// fields fall back to the full newest-first listing. That fallback is
// deliberate legacy behavior, kept rather than silently strengthened.
func (s *AppointmentService) Search(ctx context.Context, field, query string) ([]models.Appointment, error) {
	if !SearchFields[field] {
		return nil, domain.ErrInvalidSearchField
	}

	if field == "trackingCode" {
		return s.repo.SearchByTrackingCode(ctx, query)
	}

	return s.repo.List(ctx)
}

// generateCode draws tracking codes until one is free in the store
func (s *AppointmentService) generateCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := trackcode.Generate()
		if err != nil {
			return "", err
		}

		taken, err := s.repo.ExistsByTrackingCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}

		log.Printf("⚠️ Tracking code collision on %s, regenerating", code)
	}

	return "", domain.ErrDuplicateTrackingCode
}

// optionalColumn normalizes an omitted optional field to NULL instead of
// storing an empty string
func optionalColumn(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
