package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"pulsesurvey/internal/model"
	"pulsesurvey/internal/service"
)

// SurveyTypeHandler handles survey type authoring endpoints
type SurveyTypeHandler struct {
	surveyTypeSvc *service.SurveyTypeService
}

// NewSurveyTypeHandler creates a new survey type handler
func NewSurveyTypeHandler(surveyTypeSvc *service.SurveyTypeService) *SurveyTypeHandler {
	return &SurveyTypeHandler{surveyTypeSvc: surveyTypeSvc}
}

// Create handles POST /v1/survey-types
func (h *SurveyTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var surveyType model.SurveyType
	if err := json.NewDecoder(r.Body).Decode(&surveyType); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.surveyTypeSvc.Create(r.Context(), &surveyType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSurveyType) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"surveyTypeId": id})
}

// Get handles GET /v1/survey-types/{surveyTypeId}
func (h *SurveyTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyTypeID := mux.Vars(r)["surveyTypeId"]

	surveyType, err := h.surveyTypeSvc.GetByID(r.Context(), surveyTypeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if surveyType == nil {
		writeError(w, http.StatusNotFound, "survey type not found")
		return
	}

	writeJSON(w, http.StatusOK, surveyType)
}

// List handles GET /v1/survey-types
func (h *SurveyTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	surveyTypes, err := h.surveyTypeSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"surveyTypes": surveyTypes})
}

// Update handles PUT /v1/survey-types/{surveyTypeId}
func (h *SurveyTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	surveyTypeID := mux.Vars(r)["surveyTypeId"]

	var surveyType model.SurveyType
	if err := json.NewDecoder(r.Body).Decode(&surveyType); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	surveyType.ID = surveyTypeID

	if err := h.surveyTypeSvc.Update(r.Context(), &surveyType); err != nil {
		if errors.Is(err, service.ErrInvalidSurveyType) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, surveyType)
}

// Delete handles DELETE /v1/survey-types/{surveyTypeId}
func (h *SurveyTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	surveyTypeID := mux.Vars(r)["surveyTypeId"]

	if err := h.surveyTypeSvc.Delete(r.Context(), surveyTypeID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
