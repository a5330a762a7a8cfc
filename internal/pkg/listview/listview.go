// Package listview implements the client-observable ordering and filtering
// rules for appointment listings. Paging lives in the pagination package.
package listview

import (
	"sort"
	"strings"

	"nobateasy/internal/adapters/persistence/models"
)

// Direction of a sort
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// SortState tracks the current sort key and direction for one view.
// State is per view/session, never process-wide.
type SortState struct {
	Key       string
	Direction Direction
}

// Request toggles the sort for key: asking for the current key again flips
// the direction, asking for a new key resets to ascending.
func (s *SortState) Request(key string) {
	if s.Key == key && s.Direction == Ascending {
		s.Direction = Descending
	} else {
		s.Direction = Ascending
	}
	s.Key = key
}

// Sort returns a sorted copy of items per state. Absent optional values
// compare equal to everything, so rows with no appointment date keep their
// relative order. An empty sort key leaves the listing untouched.
func Sort(items []models.Appointment, state SortState) []models.Appointment {
	sorted := make([]models.Appointment, len(items))
	copy(sorted, items)

	if state.Key == "" {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, aok := fieldValue(&sorted[i], state.Key)
		b, bok := fieldValue(&sorted[j], state.Key)
		if !aok || !bok {
			return false
		}
		if state.Direction == Descending {
			return a > b
		}
		return a < b
	})

	return sorted
}

// Filter keeps records matching both conditions: the tracking-code term (if
// set) must be a substring of the code, and the appointment-date filter (if
// set) must equal the record's appointment date exactly. The code match is
// case-sensitive here; the SQL search path matches per collation instead.
func Filter(items []models.Appointment, codeTerm, appointmentDate string) []models.Appointment {
	filtered := make([]models.Appointment, 0, len(items))
	for _, item := range items {
		if codeTerm != "" && !strings.Contains(item.TrackingCode, codeTerm) {
			continue
		}
		if appointmentDate != "" {
			if item.AppointmentDate == nil || *item.AppointmentDate != appointmentDate {
				continue
			}
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// fieldValue extracts a sortable value by field name; ok=false means the
// value is absent on this record or the field name is unknown.
func fieldValue(a *models.Appointment, key string) (string, bool) {
	switch key {
	case "trackingCode":
		return a.TrackingCode, true
	case "applicationDate":
		return a.ApplicationDate, true
	case "applicationTime":
		return a.ApplicationTime, true
	case "paymentDate":
		return a.PaymentDate, true
	case "appointmentDate":
		if a.AppointmentDate == nil {
			return "", false
		}
		return *a.AppointmentDate, true
	case "appointmentTime":
		if a.AppointmentTime == nil {
			return "", false
		}
		return *a.AppointmentTime, true
	case "createdAt":
		return a.CreatedAt.Format("2006-01-02T15:04:05.000000000"), true
	default:
		return "", false
	}
}
