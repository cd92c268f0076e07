package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

var errInvalidMonth = errors.New("month must be in YYYYMM format")

// parseIDParam parses the {id} URL parameter as an int64.
func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// parseMonthQuery parses the month query parameter (YYYYMM). Returns
// (0, false) when the parameter is absent, an error when it is malformed.
func parseMonthQuery(r *http.Request) (int, bool, error) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return 0, false, nil
	}
	month, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, err
	}
	if mm := month % 100; month < 100 || mm < 1 || mm > 12 {
		return 0, false, errInvalidMonth
	}
	return month, true, nil
}
