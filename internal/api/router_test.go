package api

import (
	"bytes"
	"encoding/json"
	"hos-recap-service/internal/adapters/repositories"
	"hos-recap-service/internal/api/dto"
	"hos-recap-service/internal/services"
	"net/http"
	"net/http/httptest"
	"testing"
)

const tripBody = `{
	"current_location": "Phoenix, AZ",
	"pickup_location": "Flagstaff, AZ",
	"dropoff_location": "Albuquerque, NM",
	"current_cycle_hours_used": 10,
	"distance_m": 643736,
	"logs": [
		{
			"date": "2025-03-03",
			"segments": [
				{"status": "on", "start_iso": "2025-03-03T07:00:00", "end_iso": "2025-03-03T08:00:00"},
				{"status": "D", "start_iso": "2025-03-03T08:00:00", "end_iso": "2025-03-03T12:00:00"},
				{"status": "OFF", "start_iso": "2025-03-03T12:00:00", "end_iso": "2025-03-03T12:30:00"},
				{"status": "D", "start_iso": "2025-03-03T12:30:00", "end_iso": "2025-03-03T15:00:00"}
			],
			"remark_events": [
				{"start_iso": "2025-03-03T07:00:00", "type": "Pickup", "location": "Flagstaff, AZ", "reason": "Loading"}
			]
		},
		{
			"date": "2025-03-04",
			"segments": [
				{"status": "D", "start_iso": "2025-03-04T06:00:00", "end_iso": "2025-03-04T07:30:00"},
				{"status": "ON", "start_iso": "2025-03-04T07:30:00", "end_iso": "2025-03-04T08:30:00"}
			]
		}
	]
}`

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	repo := repositories.NewMemoryTripRepository()
	return NewRouter(repo, repo, &services.SheetBuilder{})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	h := newTestServer(t)

	w := do(t, h, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID header")
	}

	if w := do(t, h, http.MethodPost, "/health", ""); w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /health status = %d, want 405", w.Code)
	}
}

func TestRequestIDIsPropagated(t *testing.T) {
	h := newTestServer(t)

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("X-Request-ID = %q, want abc-123", got)
	}
}

func TestComputeSheets(t *testing.T) {
	h := newTestServer(t)

	body := `{
		"logs": [{
			"date": "2025-03-03",
			"segments": [
				{"status": "ON", "start_iso": "2025-03-03T07:00:00", "end_iso": "2025-03-03T08:00:00"},
				{"status": "D", "start_iso": "2025-03-03T08:00:00", "end_iso": "2025-03-03T12:00:00"},
				{"status": "OFF", "start_iso": "2025-03-03T12:00:00", "end_iso": "2025-03-03T12:30:00"},
				{"status": "D", "start_iso": "2025-03-03T12:30:00", "end_iso": "2025-03-03T15:00:00"}
			]
		}],
		"total_miles": 390,
		"sleeper_berth": {"2025-03-03": {"active": true, "time": "20:00"}}
	}`

	w := do(t, h, http.MethodPost, "/sheets", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	res := decode[dto.ListSheetsResponse](t, w)
	if len(res.Sheets) != 1 {
		t.Fatalf("sheets = %d, want 1", len(res.Sheets))
	}
	s := res.Sheets[0]
	if s.Totals["D"] != 6.5 || s.Totals["ON"] != 1 || s.Totals["SB"] != 4 || s.Totals["OFF"] != 12.5 {
		t.Fatalf("totals = %v", s.Totals)
	}
	if s.DrivingPlusOnDuty != 7.5 || s.Recap.SeventyB != 62.5 {
		t.Fatalf("on duty = %v, 70 B = %v", s.DrivingPlusOnDuty, s.Recap.SeventyB)
	}
	if s.Miles != 390 {
		t.Fatalf("miles = %v, want 390", s.Miles)
	}
	if !s.SleeperBerth.Active || s.SleeperBerth.Time != "20:00" {
		t.Fatalf("sleeper berth = %+v", s.SleeperBerth)
	}
	last := s.Segments[len(s.Segments)-1]
	if last.Status != "SB" || last.StartHour != 20 || last.EndHour != 24 {
		t.Fatalf("last segment = %+v, want SB[20,24)", last)
	}
}

func TestComputeSheetsRejectsBadInput(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"not json", `{`, http.StatusBadRequest},
		{"unknown field", `{"logs":[],"extra":true}`, http.StatusBadRequest},
		{"schema", `{"logs":[{"date":"2025-03-03"}]}`, http.StatusUnprocessableEntity},
		{"unknown status", `{"logs":[{"date":"2025-03-03","segments":[{"status":"YARD","start_iso":"08:00","end_iso":"09:00"}]}]}`, http.StatusUnprocessableEntity},
		{"bad date", `{"logs":[{"date":"March 3","segments":[]}]}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		if w := do(t, h, http.MethodPost, "/sheets", tt.body); w.Code != tt.want {
			t.Errorf("%s: status = %d, want %d (body %s)", tt.name, w.Code, tt.want, w.Body.String())
		}
	}
}

func TestTripLifecycle(t *testing.T) {
	h := newTestServer(t)

	w := do(t, h, http.MethodPost, "/trips", tripBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	created := decode[dto.TripResponse](t, w)
	if created.ID == "" || len(created.Logs) != 2 {
		t.Fatalf("created = %+v", created)
	}
	if created.Logs[0].Segments[0].Status != "ON" {
		t.Fatalf("status not normalized: %q", created.Logs[0].Segments[0].Status)
	}

	w = do(t, h, http.MethodGet, "/trips", "")
	list := decode[dto.ListTripsResponse](t, w)
	if len(list.Results) != 1 || list.Results[0].ID != created.ID {
		t.Fatalf("list = %+v", list)
	}

	w = do(t, h, http.MethodGet, "/trips/"+created.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	// Page 1 of each day exists after save.
	w = do(t, h, http.MethodGet, "/trips/"+created.ID+"/logbooks", "")
	pages := decode[dto.ListLogbookPagesResponse](t, w)
	if len(pages.Results) != 2 {
		t.Fatalf("pages = %+v", pages)
	}

	w = do(t, h, http.MethodPost, "/trips/"+created.ID+"/logbooks",
		`{"date":"2025-03-03","form_data":{"carrier":"ACME"},"sleeper_berth":{"active":true,"time":"18:00"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("upsert status = %d, body %s", w.Code, w.Body.String())
	}
	page := decode[dto.LogbookPageResponse](t, w)
	if page.Index != 1 || page.FormData["carrier"] != "ACME" || page.SleeperBerth.Time != "18:00" {
		t.Fatalf("page = %+v", page)
	}

	w = do(t, h, http.MethodGet, "/trips/"+created.ID+"/sheets", "")
	if w.Code != http.StatusOK {
		t.Fatalf("sheets status = %d, body %s", w.Code, w.Body.String())
	}
	sheets := decode[dto.ListSheetsResponse](t, w)
	if sheets.TripID != created.ID || len(sheets.Sheets) != 2 {
		t.Fatalf("sheets = %+v", sheets)
	}

	day0, day1 := sheets.Sheets[0], sheets.Sheets[1]
	if !day0.SleeperBerth.Active || day0.Totals["SB"] != 6 {
		t.Fatalf("day 0 override not applied: %+v totals %v", day0.SleeperBerth, day0.Totals)
	}
	if day1.SleeperBerth.Active {
		t.Fatalf("day 1 should have no override")
	}
	// 643736 m is 400 miles; driving is 6.5h and 1.5h.
	if d := day0.Miles + day1.Miles; d < 399.99 || d > 400.01 {
		t.Fatalf("miles = %v + %v, want 400", day0.Miles, day1.Miles)
	}
	if day1.Recap.SeventyA != 10 {
		t.Fatalf("day 1 70 A = %v, want 10", day1.Recap.SeventyA)
	}
	if len(day0.Remarks) != 1 || day0.Remarks[0].Type != "pickup" {
		t.Fatalf("day 0 remarks = %+v", day0.Remarks)
	}
}

func TestTripNotFound(t *testing.T) {
	h := newTestServer(t)

	for _, path := range []string{
		"/trips/6f1c2a3e-0b5d-4e8a-9c41-2d7f0e9b1a10",
		"/trips/6f1c2a3e-0b5d-4e8a-9c41-2d7f0e9b1a10/sheets",
		"/trips/6f1c2a3e-0b5d-4e8a-9c41-2d7f0e9b1a10/logbooks",
		"/trips/6f1c2a3e-0b5d-4e8a-9c41-2d7f0e9b1a10/logbooks?date=2025-03-03",
		"/trips/6f1c2a3e-0b5d-4e8a-9c41-2d7f0e9b1a10/logbooks?date=tomorrow",
		"/trips/not-a-uuid",
	} {
		if w := do(t, h, http.MethodGet, path, ""); w.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", path, w.Code)
		}
	}

	w := do(t, h, http.MethodPost, "/trips/6f1c2a3e-0b5d-4e8a-9c41-2d7f0e9b1a10/logbooks", `{"date":"2025-03-03"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("upsert on missing trip status = %d, want 404", w.Code)
	}
}

func TestListTripsLimit(t *testing.T) {
	h := newTestServer(t)

	for range 3 {
		if w := do(t, h, http.MethodPost, "/trips", tripBody); w.Code != http.StatusCreated {
			t.Fatalf("create status = %d", w.Code)
		}
	}

	tests := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"?limit=2", 2},
		{"?limit=0", 1},
		{"?limit=500", 3},
	}
	for _, tt := range tests {
		w := do(t, h, http.MethodGet, "/trips"+tt.query, "")
		if got := len(decode[dto.ListTripsResponse](t, w).Results); got != tt.want {
			t.Errorf("GET /trips%s results = %d, want %d", tt.query, got, tt.want)
		}
	}

	if w := do(t, h, http.MethodGet, "/trips?limit=many", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("limit=many status = %d, want 400", w.Code)
	}
}

func TestLogbookValidation(t *testing.T) {
	h := newTestServer(t)

	w := do(t, h, http.MethodPost, "/trips", tripBody)
	id := decode[dto.TripResponse](t, w).ID

	tests := []struct {
		name string
		body string
		want int
	}{
		{"missing date", `{"form_data":{}}`, http.StatusBadRequest},
		{"bad date", `{"date":"03/03/2025"}`, http.StatusBadRequest},
		{"negative index", `{"date":"2025-03-03","index":-1}`, http.StatusBadRequest},
		{"bad time", `{"date":"2025-03-03","sleeper_berth":{"active":true,"time":"9pm"}}`, http.StatusBadRequest},
		{"second page", `{"date":"2025-03-03","index":2}`, http.StatusOK},
	}
	for _, tt := range tests {
		if w := do(t, h, http.MethodPost, "/trips/"+id+"/logbooks", tt.body); w.Code != tt.want {
			t.Errorf("%s: status = %d, want %d (body %s)", tt.name, w.Code, tt.want, w.Body.String())
		}
	}

	w = do(t, h, http.MethodGet, "/trips/"+id+"/logbooks?date=2025-03-03", "")
	if got := len(decode[dto.ListLogbookPagesResponse](t, w).Results); got != 2 {
		t.Fatalf("pages for 2025-03-03 = %d, want 2", got)
	}

	w = do(t, h, http.MethodGet, "/trips/"+id+"/logbooks?date=tomorrow", "")
	if w.Code != http.StatusOK || len(decode[dto.ListLogbookPagesResponse](t, w).Results) != 0 {
		t.Fatalf("invalid date filter: status %d body %s", w.Code, w.Body.String())
	}
}
