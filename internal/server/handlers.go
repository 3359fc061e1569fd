package server

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sipgo/investment-calculator/internal/domain"
	"github.com/sipgo/investment-calculator/internal/observability/metrics"
	"github.com/sipgo/investment-calculator/internal/output"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		CurrencySymbol string
	}{
		CurrencySymbol: s.settings.CurrencySymbol,
	}
	if err := indexTemplate.Execute(w, data); err != nil {
		s.log.Error().Err(err).Msg("Failed to render index page")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleProjection computes a projection for JSON-encoded inputs. Invalid
// inputs are rejected with a 400 whose message names the offending field.
func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var inputs domain.InvestmentInputs
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		metrics.IncValidationError("body")
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	if err := s.parser.ValidateInputs(&inputs); err != nil {
		metrics.IncValidationError(validationField(err))
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result := s.engine.Project(inputs)
	metrics.ObserveProjection(metrics.ResultSuccess, time.Since(start))
	s.writeJSON(w, http.StatusOK, result)
}

// handleReportDownload renders a report in the requested format and streams
// it as an attachment. Inputs arrive as query parameters so the endpoint
// works as a plain browser download link.
func (s *Server) handleReportDownload(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	format := output.NormalizeFormatName(q.Get("format"))
	if format == "" {
		format = "xlsx"
	}
	f := output.GetFormatterByName(format)
	if f == nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "unsupported format " + strconv.Quote(format) + ", try one of: " +
				strings.Join(output.AvailableFormatterNames(), ", "),
		})
		return
	}

	inputs, err := parseInputQuery(q)
	if err != nil {
		metrics.IncValidationError(validationField(err))
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if err := s.parser.ValidateInputs(inputs); err != nil {
		metrics.IncValidationError(validationField(err))
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result := s.engine.Project(*inputs)
	data, err := f.Format(result)
	if err != nil {
		metrics.ObserveReportExport(f.Name(), metrics.ResultError, time.Since(start))
		s.log.Error().Err(err).Str("format", f.Name()).Msg("Report generation failed")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "report generation failed"})
		return
	}

	metrics.ObserveReportExport(f.Name(), metrics.ResultSuccess, time.Since(start))
	w.Header().Set("Content-Type", output.ContentType(f))
	w.Header().Set("Content-Disposition", `attachment; filename="`+output.ReportFilename(f.Ext())+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to write report response")
	}
}

func parseInputQuery(q map[string][]string) (*domain.InvestmentInputs, error) {
	get := func(key string) string {
		if v, ok := q[key]; ok && len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
		return ""
	}

	inputs := &domain.InvestmentInputs{}
	var err error

	if inputs.SIPAmount, err = parseDecimalParam(get("sip_amount"), "sip_amount"); err != nil {
		return nil, err
	}
	if inputs.LumpsumAmount, err = parseDecimalParam(get("lumpsum_amount"), "lumpsum_amount"); err != nil {
		return nil, err
	}
	if inputs.AnnualReturnPercent, err = parseDecimalParam(get("annual_return_percent"), "annual_return_percent"); err != nil {
		return nil, err
	}

	years := get("horizon_years")
	if years == "" {
		return nil, &paramError{field: "horizon_years", msg: "horizon_years is required"}
	}
	if inputs.HorizonYears, err = strconv.Atoi(years); err != nil {
		return nil, &paramError{field: "horizon_years", msg: "horizon_years must be an integer"}
	}

	return inputs, nil
}

func parseDecimalParam(raw, field string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &paramError{field: field, msg: field + " must be a number"}
	}
	return v, nil
}

type paramError struct {
	field string
	msg   string
}

func (e *paramError) Error() string { return e.msg }

// validationField extracts the field label from a validation error for the
// metrics counter. Validation messages lead with the snake_case field name.
func validationField(err error) string {
	var pe *paramError
	if errors.As(err, &pe) {
		return pe.field
	}
	fields := strings.Fields(err.Error())
	if len(fields) > 0 && strings.Contains(fields[0], "_") {
		return fields[0]
	}
	return "unknown"
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
