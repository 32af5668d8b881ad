package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"workdate/services/calendar"
	"workdate/services/holiday"
)

type stubService struct {
	result time.Time
	err    error

	gotStart string
	gotDays  int
	gotHours float64
}

func (s *stubService) ComputeBusinessDate(_ context.Context, startUTC string, days int, hours float64) (time.Time, error) {
	s.gotStart = startUTC
	s.gotDays = days
	s.gotHours = hours
	return s.result, s.err
}

func newTestRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBusinessDateHandler(svc, zap.NewNop())
	r.GET("/api/business-dates/calculate", h.Calculate)
	return r
}

func doRequest(r *gin.Engine, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)
	return rw
}

func decodeBody(t *testing.T, rw *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rw.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body %q: %v", rw.Body.String(), err)
	}
	return body
}

func TestCalculateHappyPath(t *testing.T) {
	svc := &stubService{result: time.Date(2025, 10, 6, 14, 0, 0, 0, time.UTC)}
	r := newTestRouter(svc)

	rw := doRequest(r, "/api/business-dates/calculate?date=2025-10-03T22:00:00Z&hours=1")
	if rw.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rw.Code, rw.Body.String())
	}
	if body := decodeBody(t, rw); body["date"] != "2025-10-06T14:00:00Z" {
		t.Fatalf("unexpected body %v", body)
	}
	if svc.gotStart != "2025-10-03T22:00:00Z" || svc.gotDays != 0 || svc.gotHours != 1 {
		t.Fatalf("service called with %q days=%d hours=%v", svc.gotStart, svc.gotDays, svc.gotHours)
	}
}

func TestCalculateValidation(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"missing both days and hours", "/api/business-dates/calculate"},
		{"negative days", "/api/business-dates/calculate?days=-1"},
		{"non-numeric days", "/api/business-dates/calculate?days=two"},
		{"negative hours", "/api/business-dates/calculate?hours=-3"},
		{"fractional hours at the boundary", "/api/business-dates/calculate?hours=1.5"},
		{"date without Z suffix", "/api/business-dates/calculate?days=1&date=2025-10-03T22:00:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubService{}
			rw := doRequest(newTestRouter(svc), tc.url)
			if rw.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rw.Code, rw.Body.String())
			}
			if body := decodeBody(t, rw); body["error"] != "InvalidParameters" {
				t.Fatalf("unexpected error code %q", body["error"])
			}
		})
	}
}

func TestCalculateInvalidDateFromService(t *testing.T) {
	svc := &stubService{err: calendar.NewInvalidDateError("2025-13-99T00:00:00Z")}
	rw := doRequest(newTestRouter(svc), "/api/business-dates/calculate?days=1&date=2025-13-99T00:00:00Z")

	if rw.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rw.Code)
	}
	if body := decodeBody(t, rw); body["error"] != "InvalidDate" {
		t.Fatalf("unexpected error code %q", body["error"])
	}
}

func TestCalculateSourceUnavailable(t *testing.T) {
	svc := &stubService{err: holiday.NewSourceError("catalog down", nil)}
	rw := doRequest(newTestRouter(svc), "/api/business-dates/calculate?days=1")

	if rw.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rw.Code)
	}
	if body := decodeBody(t, rw); body["error"] != "HolidaySourceUnavailable" {
		t.Fatalf("unexpected error code %q", body["error"])
	}
}
