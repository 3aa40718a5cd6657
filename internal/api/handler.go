package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/database"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/geometry"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/models"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/overlap"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/parser"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 8 << 20

type Executor interface {
	Execute(ctx context.Context, req models.CountRequest) (models.CountResult, error)
}

type ReportStore interface {
	SaveReport(ctx context.Context, result models.CountResult) error
	GetReport(ctx context.Context, id string) (models.CountResult, error)
	ListReports(ctx context.Context, limit int) ([]models.CountResult, error)
}

const defaultReportLimit = 20

type Handler struct {
	executor Executor
	reports  ReportStore
	logger   *zerolog.Logger
}

// NewHandler builds the HTTP handler. reports may be nil, in which case results are not persisted.
func NewHandler(executor Executor, reports ReportStore, logger *zerolog.Logger) *Handler {
	return &Handler{
		executor: executor,
		reports:  reports,
		logger:   logger,
	}
}

// POST /api/v1/overlaps
// Body: CountRequest
// Returns: CountResult
func (h *Handler) CountOverlaps(req *restful.Request, resp *restful.Response) {
	req.Request.Body = http.MaxBytesReader(resp.ResponseWriter, req.Request.Body, maxBodyBytes)

	var countRequest models.CountRequest
	if err := req.ReadEntity(&countRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.execute(req.Request.Context(), resp, countRequest)
}

// POST /api/v1/overlaps/text?threshold=N&id=ID
// Body: vent lines, one "x1,y1 -> x2,y2" per line
func (h *Handler) CountOverlapsText(req *restful.Request, resp *restful.Response) {
	threshold := 0
	if thresholdStr := req.QueryParameter("threshold"); thresholdStr != "" {
		parsed, err := strconv.Atoi(thresholdStr)
		if err != nil || parsed < 1 {
			middleware.HandleError(resp, fmt.Errorf("invalid threshold %q", thresholdStr), http.StatusBadRequest)
			return
		}
		threshold = parsed
	}

	body, err := io.ReadAll(http.MaxBytesReader(resp.ResponseWriter, req.Request.Body, maxBodyBytes))
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	segments, err := parser.ParseString(string(body))
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to parse vent lines")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	countRequest := models.CountRequest{
		ID:        req.QueryParameter("id"),
		Threshold: threshold,
		Lines:     make([]models.VentLine, 0, len(segments)),
	}
	for _, s := range segments {
		countRequest.Lines = append(countRequest.Lines, models.FromSegment(s))
	}

	h.execute(req.Request.Context(), resp, countRequest)
}

// GET /api/v1/reports/{report_id}
func (h *Handler) GetReport(req *restful.Request, resp *restful.Response) {
	if h.reports == nil {
		middleware.HandleError(resp, errors.New("report store not configured"), http.StatusServiceUnavailable)
		return
	}

	id := req.PathParameter("report_id")
	report, err := h.reports.GetReport(req.Request.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrReportNotFound) {
			middleware.HandleError(resp, err, http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Str("report_id", id).Msg("Failed to load report")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	_ = resp.WriteHeaderAndEntity(http.StatusOK, report)
}

// ListReports handler GET API /api/v1/reports
func (h *Handler) ListReports(req *restful.Request, resp *restful.Response) {
	if h.reports == nil {
		middleware.HandleError(resp, errors.New("report store not configured"), http.StatusServiceUnavailable)
		return
	}

	limit := defaultReportLimit
	if raw := req.QueryParameter("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			middleware.HandleError(resp, fmt.Errorf("invalid limit %q", raw), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	reports, err := h.reports.ListReports(req.Request.Context(), limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list reports")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	_ = resp.WriteHeaderAndEntity(http.StatusOK, reports)
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	_ = resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

func (h *Handler) execute(ctx context.Context, resp *restful.Response, countRequest models.CountRequest) {
	h.logger.Info().
		Str("request_id", countRequest.ID).
		Int("lines", len(countRequest.Lines)).
		Msg("Start count")

	result, err := h.executor.Execute(ctx, countRequest)
	if err != nil {
		status := statusFor(err)
		h.logger.Error().Err(err).Str("request_id", countRequest.ID).Int("status", status).Msg("Count failed")
		middleware.HandleError(resp, err, status)
		return
	}

	if h.reports != nil && result.ID != "" {
		if err := h.reports.SaveReport(ctx, result); err != nil {
			h.logger.Error().Err(err).Str("request_id", result.ID).Msg("Failed to save report")
		}
	}

	h.logger.Info().
		Str("request_id", result.ID).
		Int("axis_aligned", result.AxisAligned).
		Int("all", result.All).
		Msg("Count complete")

	_ = resp.WriteHeaderAndEntity(http.StatusOK, result)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, geometry.ErrUnsupportedSlope):
		return http.StatusUnprocessableEntity
	case errors.Is(err, overlap.ErrInvalidThreshold),
		errors.Is(err, models.ErrInvalidVentLine),
		errors.Is(err, geometry.ErrCoordinateOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}
