package listview

import (
	"testing"

	"nobateasy/internal/adapters/persistence/models"
)

func ptr(s string) *string { return &s }

func sampleRecords() []models.Appointment {
	return []models.Appointment{
		{TrackingCode: "APT-ccc33333", ApplicationDate: "1403/01/03", PaymentDate: "1403/02/03"},
		{TrackingCode: "APT-aaa11111", ApplicationDate: "1403/01/01", PaymentDate: "1403/02/01", AppointmentDate: ptr("1403/03/01")},
		{TrackingCode: "APT-bbb22222", ApplicationDate: "1403/01/02", PaymentDate: "1403/02/02", AppointmentDate: ptr("1403/03/02")},
	}
}

func codes(items []models.Appointment) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.TrackingCode
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortStateToggle(t *testing.T) {
	var s SortState

	s.Request("applicationDate")
	if s.Key != "applicationDate" || s.Direction != Ascending {
		t.Fatalf("first request: got %+v", s)
	}

	s.Request("applicationDate")
	if s.Direction != Descending {
		t.Fatalf("same-key request should flip to descending, got %+v", s)
	}

	s.Request("applicationDate")
	if s.Direction != Ascending {
		t.Fatalf("third request should flip back to ascending, got %+v", s)
	}

	s.Request("paymentDate")
	if s.Key != "paymentDate" || s.Direction != Ascending {
		t.Fatalf("new key should reset to ascending, got %+v", s)
	}
}

func TestSortAscendingDescending(t *testing.T) {
	items := sampleRecords()

	var s SortState
	s.Request("applicationDate")
	got := codes(Sort(items, s))
	want := []string{"APT-aaa11111", "APT-bbb22222", "APT-ccc33333"}
	if !equal(got, want) {
		t.Fatalf("ascending sort = %v, want %v", got, want)
	}

	s.Request("applicationDate")
	got = codes(Sort(items, s))
	want = []string{"APT-ccc33333", "APT-bbb22222", "APT-aaa11111"}
	if !equal(got, want) {
		t.Fatalf("descending sort = %v, want %v", got, want)
	}
}

// Records with no appointment date compare equal to everything, so a sort on
// appointmentDate must keep their original relative position (stable no-op).
func TestSortAbsentValuesStable(t *testing.T) {
	items := sampleRecords()

	got := codes(Sort(items, SortState{Key: "appointmentDate", Direction: Ascending}))
	want := []string{"APT-ccc33333", "APT-aaa11111", "APT-bbb22222"}
	if !equal(got, want) {
		t.Fatalf("sort on appointmentDate = %v, want %v", got, want)
	}
}

func TestSortWithoutKeyKeepsOrder(t *testing.T) {
	items := sampleRecords()
	got := codes(Sort(items, SortState{}))
	if !equal(got, codes(items)) {
		t.Fatalf("empty sort key reordered the listing: %v", got)
	}
}

func TestFilter(t *testing.T) {
	items := sampleRecords()

	tests := []struct {
		name     string
		codeTerm string
		apptDate string
		want     []string
	}{
		{name: "no filters", want: []string{"APT-ccc33333", "APT-aaa11111", "APT-bbb22222"}},
		{name: "code substring", codeTerm: "bbb", want: []string{"APT-bbb22222"}},
		{name: "code substring no match", codeTerm: "zzz", want: []string{}},
		{name: "appointment date exact", apptDate: "1403/03/01", want: []string{"APT-aaa11111"}},
		{name: "appointment date excludes unscheduled", apptDate: "1403/03/99", want: []string{}},
		{name: "both conditions AND", codeTerm: "APT", apptDate: "1403/03/02", want: []string{"APT-bbb22222"}},
		{name: "code matches but date does not", codeTerm: "aaa", apptDate: "1403/03/02", want: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := codes(Filter(items, tc.codeTerm, tc.apptDate))
			if !equal(got, tc.want) {
				t.Fatalf("Filter(%q, %q) = %v, want %v", tc.codeTerm, tc.apptDate, got, tc.want)
			}
		})
	}
}
