package util

import "testing"

func TestParseUintOrZero(t *testing.T) {
	tests := []struct {
		in   string
		want uint
	}{
		{"42", 42},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-7", 0},
		{"4.2", 0},
		{"99999999999999999999", 0},
	}
	for _, tc := range tests {
		if got := ParseUintOrZero(tc.in); got != tc.want {
			t.Errorf("ParseUintOrZero(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		page, limit         string
		wantPage, wantLimit int
	}{
		{"2", "50", 2, 50},
		{"", "", 1, 20},
		{"0", "-1", 1, 20},
		{"3", "500", 3, 100},
	}
	for _, tc := range tests {
		page, limit := ParsePagination(tc.page, tc.limit)
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Errorf("ParsePagination(%q, %q) = %d, %d, want %d, %d",
				tc.page, tc.limit, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}
