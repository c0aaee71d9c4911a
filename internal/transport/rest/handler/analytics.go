package handler

import (
	"errors"
	"net/http"
	"strings"

	"pulsesurvey/internal/service"
)

// AnalyticsHandler handles analytics endpoints
type AnalyticsHandler struct {
	analyticsSvc *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsSvc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

func queryFromRequest(r *http.Request) service.AnalyticsQuery {
	q := service.AnalyticsQuery{
		OrganizationID:   r.URL.Query().Get("organizationId"),
		OrganizationName: r.URL.Query().Get("organizationName"),
		SurveyTypeID:     r.URL.Query().Get("surveyTypeId"),
	}
	if ids := r.URL.Query().Get("questionIds"); ids != "" {
		q.QuestionIDs = strings.Split(ids, ",")
	}
	return q
}

func (h *AnalyticsHandler) writeAnalyticsError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrDefinitionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrQuestionNotFound):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// Get handles GET /v1/analytics
func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.analyticsSvc.GetSurveyAnalytics(r.Context(), queryFromRequest(r))
	if err != nil {
		h.writeAnalyticsError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analytics)
}

// GetEngagement handles GET /v1/analytics/engagement
func (h *AnalyticsHandler) GetEngagement(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.analyticsSvc.GetEngagementAnalytics(r.Context(), queryFromRequest(r))
	if err != nil {
		h.writeAnalyticsError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analytics)
}

// GetBurnout handles GET /v1/analytics/burnout
func (h *AnalyticsHandler) GetBurnout(w http.ResponseWriter, r *http.Request) {
	risk, err := h.analyticsSvc.GetBurnoutRisk(r.Context(), queryFromRequest(r))
	if err != nil {
		h.writeAnalyticsError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, risk)
}
