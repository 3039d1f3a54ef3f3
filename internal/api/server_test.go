package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"sublimation-calc/internal/engine"
	"sublimation-calc/internal/storage"
)

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }

func newTestServer(t *testing.T, health ...Pinger) *httptest.Server {
	t.Helper()
	return newTestServerWithOptions(t, Options{Defaults: engine.DefaultInputs()}, health...)
}

func newTestServerWithOptions(t *testing.T, opts Options, health ...Pinger) *httptest.Server {
	t.Helper()

	db, err := sqlx.Open("sqlite", filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := storage.New(db, "sqlite", nil, 0, zap.NewNop())
	require.NoError(t, store.Migrate(context.Background()))

	srv := NewServer(store, opts, zap.NewNop(), health...)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, ts *httptest.Server, method, path, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp := do(t, ts, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	down := newTestServer(t, failingPinger{})
	resp = do(t, down, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestDefaultsAndFields(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, ts, http.MethodGet, "/api/defaults", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, engine.DefaultInputs(), decodeBody[engine.Inputs](t, resp))

	resp = do(t, ts, http.MethodGet, "/api/fields?lang=en", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	fields := decodeBody[[]map[string]any](t, resp)
	require.Len(t, fields, len(engine.Fields))
	assert.Equal(t, "width", fields[0]["key"])
	assert.Equal(t, "Print width (m)", fields[0]["label"])
}

func TestEvaluate(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, ts, http.MethodPost, "/api/evaluate", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	e := decodeBody[engine.Evaluation](t, resp)
	assert.InDelta(t, 57600, e.Capacity.MonthlyProductionMeters, 1e-6)

	resp = do(t, ts, http.MethodPost, "/api/evaluate", `{"inputs":{"sell_price_usd_per_meter":5}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	e = decodeBody[engine.Evaluation](t, resp)
	assert.InDelta(t, 288000, e.Financial.MonthlyRevenueUsd, 1e-6)
	assert.Equal(t, 1.6, e.Inputs.Production.PrintWidthMeters)
}

func TestEvaluate_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed", `{"inputs":`, http.StatusBadRequest},
		{"unknown top-level field", `{"colour":1}`, http.StatusBadRequest},
		{"wrong type", `{"percent":"ten"}`, http.StatusUnprocessableEntity},
		{"wrong inputs type", `{"inputs":{"sell_price_usd_per_meter":"x"}}`, http.StatusUnprocessableEntity},
		{"out of range", `{"inputs":{"production":{"print_width_meters":99}}}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, ts, http.MethodPost, "/api/evaluate", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestEvaluate_FieldErrors(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, ts, http.MethodPost, "/api/evaluate",
		`{"inputs":{"production":{"shifts_per_day":3,"hours_per_shift":12}}}`)

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decodeBody[errorResponse](t, resp)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "hours", body.Fields[0].Key)
}

func TestSensitivity(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, ts, http.MethodPost, "/api/sensitivity", `{"percent":10,"parameter":"ink"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rows := decodeBody[[]engine.SensitivityRow](t, resp)
	require.Len(t, rows, 1)
	assert.InDelta(t, 228.63368, rows[0].AdjustedRoi, 1e-4)

	resp = do(t, ts, http.MethodPost, "/api/sensitivity", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody[[]engine.SensitivityRow](t, resp), len(engine.SensitivityKeys))

	resp = do(t, ts, http.MethodPost, "/api/sensitivity", `{"percent":80}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = do(t, ts, http.MethodPost, "/api/sensitivity", `{"parameter":"rent"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSensitivity_ConfiguredZeroPercent(t *testing.T) {
	zero := 0.0
	ts := newTestServerWithOptions(t, Options{Defaults: engine.DefaultInputs(), SensitivityPercent: &zero})

	resp := do(t, ts, http.MethodPost, "/api/sensitivity", `{"parameter":"ink"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rows := decodeBody[[]engine.SensitivityRow](t, resp)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].Percent)
	assert.InDelta(t, rows[0].BaseValue, rows[0].AdjustedValue, 1e-9)
	assert.InDelta(t, rows[0].BaseRoi, rows[0].AdjustedRoi, 1e-9)
}

func TestScenario(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, ts, http.MethodPost, "/api/scenario", `{"scenario":{"schedule":{"shifts_per_day":2}}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	c := decodeBody[engine.ScenarioComparison](t, resp)
	assert.InDelta(t, 115200, c.Scenario.Capacity.MonthlyProductionMeters, 1e-6)
	assert.InDelta(t, 57600, c.Delta.MonthlyProductionMeters, 1e-6)

	resp = do(t, ts, http.MethodPost, "/api/scenario", `{"scenario":{"schedule":{"shifts_per_day":3,"hours_per_shift":10}}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCurve(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, ts, http.MethodPost, "/api/curve", `{"points":5}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	points := decodeBody[[]engine.CurvePoint](t, resp)
	require.Len(t, points, 5)
	assert.Zero(t, points[0].Meters)

	resp = do(t, ts, http.MethodPost, "/api/curve", `{"points":1}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestReport_CSV(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, ts, http.MethodPost, "/api/report?format=csv&table=capacity", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "sublimation_capacity.csv")

	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "monthly_production,57600.00")
}

func TestReport_XLSX(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, ts, http.MethodPost, "/api/report?format=xlsx&lang=en",
		`{"scenario":{"consumables":{"ink_price_usd_per_liter":40}}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "capacity")
	assert.Contains(t, sheets, "scenario")
}

func TestReport_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		path   string
		status int
	}{
		{"/api/report?format=pdf", http.StatusBadRequest},
		{"/api/report?format=csv", http.StatusBadRequest},
		{"/api/report?format=csv&table=nope", http.StatusNotFound},
		{"/api/report?lang=xx", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := do(t, ts, http.MethodPost, tt.path, "")
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestProfiles(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, ts, http.MethodPut, "/api/profiles/web:1/base", `{"inputs":{"sell_price_usd_per_meter":6}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	saved := decodeBody[storage.Profile](t, resp)
	assert.Equal(t, "base", saved.Name)
	assert.Equal(t, 6.0, saved.Inputs.SellPriceUsdPerMeter)

	resp = do(t, ts, http.MethodGet, "/api/profiles/web:1/base", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, saved.Inputs, decodeBody[storage.Profile](t, resp).Inputs)

	resp = do(t, ts, http.MethodGet, "/api/profiles/web:1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody[[]storage.Profile](t, resp), 1)

	resp = do(t, ts, http.MethodDelete, "/api/profiles/web:1/base", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, ts, http.MethodGet, "/api/profiles/web:1/base", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, ts, http.MethodPut, "/api/profiles/web:1/base", `{"inputs":{"sell_price_usd_per_meter":-1}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRequireToken(t *testing.T) {
	ts := newTestServerWithOptions(t, Options{Defaults: engine.DefaultInputs(), Token: "s3cret"})

	tests := []struct {
		name   string
		path   string
		auth   string
		status int
	}{
		{"health is open", "/api/health", "", http.StatusOK},
		{"missing token", "/api/defaults", "", http.StatusUnauthorized},
		{"wrong token", "/api/defaults", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "/api/defaults", "Bearer s3cret", http.StatusOK},
		{"profiles need token", "/api/profiles/web:1", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, ts.URL+tt.path, nil)
			require.NoError(t, err)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}

			resp, err := ts.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
