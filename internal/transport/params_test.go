package transport

import (
	"net/http/httptest"
	"testing"
)

func TestParseMonthQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantMonth int
		wantSet   bool
		wantErr   bool
	}{
		{"absent", "", 0, false, false},
		{"valid bucket", "month=202509", 202509, true, false},
		{"december", "month=202512", 202512, true, false},
		{"month thirteen", "month=202513", 0, false, true},
		{"month zero", "month=202500", 0, false, true},
		{"negative", "month=-5", 0, false, true},
		{"not a number", "month=latest", 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/revenue?"+tt.query, nil)

			month, set, err := parseMonthQuery(req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if set != tt.wantSet {
				t.Errorf("set = %v, want %v", set, tt.wantSet)
			}
			if month != tt.wantMonth {
				t.Errorf("month = %d, want %d", month, tt.wantMonth)
			}
		})
	}
}
