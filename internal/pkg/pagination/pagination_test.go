package pagination

import "testing"

func TestGetMeta(t *testing.T) {
	tests := []struct {
		name       string
		params     Params
		total      int64
		totalPages int
	}{
		{name: "exact pages", params: Params{Page: 1, Limit: 5}, total: 10, totalPages: 2},
		{name: "partial last page", params: Params{Page: 1, Limit: 5}, total: 11, totalPages: 3},
		{name: "empty", params: Params{Page: 1, Limit: 5}, total: 0, totalPages: 0},
		{name: "single record", params: Params{Page: 1, Limit: 5}, total: 1, totalPages: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			meta := GetMeta(&tc.params, tc.total)
			if meta.TotalPages != tc.totalPages {
				t.Fatalf("TotalPages = %d, want %d", meta.TotalPages, tc.totalPages)
			}
			if meta.Total != tc.total {
				t.Fatalf("Total = %d, want %d", meta.Total, tc.total)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name   string
		params Params
		want   []int
	}{
		{name: "first page", params: Params{Page: 1, Limit: 5, Offset: 0}, want: []int{1, 2, 3, 4, 5}},
		{name: "last partial page", params: Params{Page: 2, Limit: 5, Offset: 5}, want: []int{6, 7}},
		{name: "past the end", params: Params{Page: 3, Limit: 5, Offset: 10}, want: []int{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Slice(items, &tc.params)
			if len(got) != len(tc.want) {
				t.Fatalf("Slice() = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Slice() = %v, want %v", got, tc.want)
				}
			}
		})
	}
}
