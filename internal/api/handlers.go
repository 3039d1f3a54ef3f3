package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"sublimation-calc/internal/engine"
	"sublimation-calc/internal/i18n"
	"sublimation-calc/internal/report"
)

// Request is the body of every POST route. Inputs are applied on top of the
// configured defaults, so clients may send only the fields they change; the
// same holds for Scenario on top of the request's baseline.
type Request struct {
	Inputs    json.RawMessage `json:"inputs,omitempty"`
	Scenario  json.RawMessage `json:"scenario,omitempty"`
	Percent   *float64        `json:"percent,omitempty"`
	Parameter string          `json:"parameter,omitempty"`
	Points    *int            `json:"points,omitempty"`
}

type fieldView struct {
	engine.Field
	Label string `json:"label"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	for _, p := range s.health {
		if err := p.Ping(r.Context()); err != nil {
			s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.opts.Defaults)
}

func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	t := i18n.For(r.URL.Query().Get("lang"))

	fields := make([]fieldView, 0, len(engine.Fields))
	for _, f := range engine.Fields {
		fields = append(fields, fieldView{Field: f, Label: t.Label("field." + f.Key)})
	}
	s.writeJSON(w, http.StatusOK, fields)
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	_, in, ok := s.readRequest(w, r)
	if !ok {
		return
	}

	s.writeJSON(w, http.StatusOK, engine.Evaluate(in))
}

func (s *Server) handleSensitivity(w http.ResponseWriter, r *http.Request) {
	req, in, ok := s.readRequest(w, r)
	if !ok {
		return
	}

	percent, ok := s.percent(w, req)
	if !ok {
		return
	}

	e := engine.Evaluate(in)

	if req.Parameter == "" {
		s.writeJSON(w, http.StatusOK, engine.ComputeSensitivityTable(percent, e))
		return
	}

	key, err := engine.ParseSensitivityKey(req.Parameter)
	if err != nil {
		s.writeInputError(w, engine.FieldError{Key: "parameter", Message: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, []engine.SensitivityRow{engine.ComputeSensitivity(key, percent, e)})
}

func (s *Server) handleScenario(w http.ResponseWriter, r *http.Request) {
	req, in, ok := s.readRequest(w, r)
	if !ok {
		return
	}

	alt, ok := s.scenario(w, req, in)
	if !ok {
		return
	}

	s.writeJSON(w, http.StatusOK, engine.CompareScenario(engine.Evaluate(in), alt))
}

func (s *Server) handleCurve(w http.ResponseWriter, r *http.Request) {
	req, in, ok := s.readRequest(w, r)
	if !ok {
		return
	}

	points := s.opts.CurvePoints
	if req.Points != nil {
		points = *req.Points
	}
	if points < 2 || points > maxCurvePoints {
		s.writeInputError(w, engine.FieldError{Key: "points", Message: fmt.Sprintf("must be between 2 and %d", maxCurvePoints)})
		return
	}

	curve := slices.Collect(engine.Curve(engine.Evaluate(in), points))
	if curve == nil {
		curve = []engine.CurvePoint{}
	}
	s.writeJSON(w, http.StatusOK, curve)
}

// handleReport streams a CSV table or an XLSX workbook. Labels are localized
// only when lang is given; otherwise identifiers are kept.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := strings.ToLower(q.Get("format"))
	if format == "" {
		format = "xlsx"
	}
	if format != "csv" && format != "xlsx" {
		s.writeError(w, http.StatusBadRequest, "format must be csv or xlsx")
		return
	}

	req, in, ok := s.readRequest(w, r)
	if !ok {
		return
	}

	percent, ok := s.percent(w, req)
	if !ok {
		return
	}

	opts := report.Options{SensitivityPercent: percent}
	if lang := q.Get("lang"); lang != "" {
		t, valid := i18n.Parse(lang)
		if !valid {
			s.writeError(w, http.StatusBadRequest, "lang must be pt, en or es")
			return
		}
		opts.Labeler = i18n.For(string(t))
	}
	if len(req.Scenario) > 0 {
		alt, ok := s.scenario(w, req, in)
		if !ok {
			return
		}
		opts.Scenario = &alt
	}

	tables := report.Build(engine.Evaluate(in), opts)

	if name := q.Get("table"); name != "" {
		t, found := report.Find(tables, name)
		if !found {
			s.writeError(w, http.StatusNotFound, "unknown table "+name)
			return
		}
		tables = []report.Table{t}
	}

	var (
		buf         bytes.Buffer
		err         error
		contentType string
		fileName    string
	)
	if format == "csv" {
		if len(tables) != 1 {
			s.writeError(w, http.StatusBadRequest, "csv export needs a table")
			return
		}
		err = report.WriteCSV(&buf, tables[0])
		contentType = "text/csv; charset=utf-8"
		fileName = report.FileName(tables[0], "csv")
	} else {
		err = report.WriteXLSX(&buf, tables)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		fileName = "sublimation_report.xlsx"
	}
	if err != nil {
		s.writeInputError(w, fmt.Errorf("write report: %w", err))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// readRequest decodes the body and returns validated inputs.
func (s *Server) readRequest(w http.ResponseWriter, r *http.Request) (Request, engine.Inputs, bool) {
	var req Request
	if !s.decode(w, r, &req) {
		return req, engine.Inputs{}, false
	}

	in := s.opts.Defaults
	if len(req.Inputs) > 0 {
		if err := unmarshalStrict(req.Inputs, &in); err != nil {
			s.writeError(w, http.StatusUnprocessableEntity, "invalid inputs: "+err.Error())
			return req, in, false
		}
	}
	if err := engine.Validate(in); err != nil {
		s.writeInputError(w, err)
		return req, in, false
	}
	return req, in, true
}

func (s *Server) percent(w http.ResponseWriter, req Request) (float64, bool) {
	percent := s.sensitivityPercent
	if req.Percent != nil {
		percent = *req.Percent
	}
	if err := engine.ValidateSensitivityPercent(percent); err != nil {
		s.writeInputError(w, err)
		return 0, false
	}
	return percent, true
}

func (s *Server) scenario(w http.ResponseWriter, req Request, in engine.Inputs) (engine.ScenarioInputs, bool) {
	alt := engine.ScenarioFromInputs(in)
	if len(req.Scenario) > 0 {
		if err := unmarshalStrict(req.Scenario, &alt); err != nil {
			s.writeError(w, http.StatusUnprocessableEntity, "invalid scenario: "+err.Error())
			return alt, false
		}
	}
	if err := engine.ValidateScenario(alt); err != nil {
		s.writeInputError(w, err)
		return alt, false
	}
	return alt, true
}

func unmarshalStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
