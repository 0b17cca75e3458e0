package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ocs_dashboard/internal/models"
	"ocs_dashboard/internal/service"
	"ocs_dashboard/internal/twin"
)

func doRequest(t *testing.T, h http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{})
	w := doRequest(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != statusOK {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestAssetHandlers_ListAndGet(t *testing.T) {
	r := newTestRouter(&service.Service{Assets: &mockAssets{assets: sampleAssets()}})

	w := doRequest(t, r, http.MethodGet, "/api/v1/assets", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d body=%s", w.Code, w.Body.String())
	}
	var list struct {
		Count  int                 `json:"count"`
		Assets []models.AssetState `json:"assets"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if list.Count != 2 || list.Assets[1].Key != "T-310" {
		t.Fatalf("unexpected list %+v", list)
	}

	w = doRequest(t, r, http.MethodGet, "/api/v1/assets/T-310", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d", w.Code)
	}
	var st models.AssetState
	_ = json.Unmarshal(w.Body.Bytes(), &st)
	if st.Status != models.StatusMaintenanceRequired || len(st.ActiveAlerts) != 1 {
		t.Fatalf("unexpected asset %+v", st)
	}

	w = doRequest(t, r, http.MethodGet, "/api/v1/assets/NOPE", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAssetHandlers_ListError(t *testing.T) {
	r := newTestRouter(&service.Service{Assets: &mockAssets{err: errors.New("db down")}})
	w := doRequest(t, r, http.MethodGet, "/api/v1/assets", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestControlHandlers(t *testing.T) {
	after := models.AssetState{Key: "P-101", Status: models.StatusImminentFailure, Health: 5}

	tests := []struct {
		name     string
		path     string
		body     []byte
		ctlErr   error
		wantCode int
		check    func(t *testing.T, m *mockControl)
	}{
		{
			name: "load ok", path: "/api/v1/assets/P-101/load", body: []byte(`{"load_factor":1.2}`),
			wantCode: http.StatusOK,
			check: func(t *testing.T, m *mockControl) {
				if m.loadCalls != 1 || m.lastKey != "P-101" || m.lastFactor != 1.2 {
					t.Fatalf("unexpected call %+v", m)
				}
			},
		},
		{
			name: "load zero is allowed", path: "/api/v1/assets/P-101/load", body: []byte(`{"load_factor":0}`),
			wantCode: http.StatusOK,
			check: func(t *testing.T, m *mockControl) {
				if m.loadCalls != 1 || m.lastFactor != 0 {
					t.Fatalf("unexpected call %+v", m)
				}
			},
		},
		{
			name: "load missing field", path: "/api/v1/assets/P-101/load", body: []byte(`{}`),
			wantCode: http.StatusBadRequest,
			check: func(t *testing.T, m *mockControl) {
				if m.loadCalls != 0 {
					t.Fatalf("service should not be called")
				}
			},
		},
		{
			name: "load rejected by domain", path: "/api/v1/assets/P-101/load", body: []byte(`{"load_factor":-1}`),
			ctlErr: fmt.Errorf("set load factor: %w", twin.ErrInvalidLoadFactor), wantCode: http.StatusBadRequest,
		},
		{
			name: "maintenance unknown asset", path: "/api/v1/assets/X/maintenance",
			ctlErr: errNotFound("X"), wantCode: http.StatusNotFound,
		},
		{
			name: "failure ok", path: "/api/v1/assets/P-101/failure",
			wantCode: http.StatusOK,
			check: func(t *testing.T, m *mockControl) {
				if m.failCalls != 1 {
					t.Fatalf("failure calls=%d", m.failCalls)
				}
			},
		},
		{
			name: "failure internal error", path: "/api/v1/assets/P-101/failure",
			ctlErr: errors.New("boom"), wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl := &mockControl{state: after, err: tt.ctlErr}
			r := newTestRouter(&service.Service{Control: ctl})

			w := doRequest(t, r, http.MethodPost, tt.path, tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("status=%d want %d body=%s", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantCode == http.StatusOK {
				var st models.AssetState
				_ = json.Unmarshal(w.Body.Bytes(), &st)
				if st.Key != "P-101" {
					t.Fatalf("missing snapshot in %s", w.Body.String())
				}
			}
			if tt.check != nil {
				tt.check(t, ctl)
			}
		})
	}
}

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("x: %w", twin.ErrAssetNotFound), http.StatusNotFound},
		{twin.ErrInvalidLoadFactor, http.StatusBadRequest},
		{service.ErrInvalidTimeRange, http.StatusBadRequest},
		{fmt.Errorf("%w: %q", service.ErrInvalidLevel, "x"), http.StatusBadRequest},
		{service.ErrInvalidLimit, http.StatusBadRequest},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := statusForError(c.err); got != c.want {
			t.Fatalf("%v: got %d want %d", c.err, got, c.want)
		}
	}
}
