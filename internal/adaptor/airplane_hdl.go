package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Zonda001/AirportAPI/internal/dto/request"
	"github.com/Zonda001/AirportAPI/internal/usecase"
	"github.com/Zonda001/AirportAPI/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AirplaneHandler struct {
	service usecase.AirplaneService
	log     *zap.Logger
}

func NewAirplaneHandler(service usecase.AirplaneService, log *zap.Logger) *AirplaneHandler {
	return &AirplaneHandler{
		service: service,
		log:     log.With(zap.String("handler", "airplane")),
	}
}

// GetAirplanes handles GET /api/airplanes
func (h *AirplaneHandler) GetAirplanes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:     utils.ParseInt(query.Get("page"), 1),
		PageSize: utils.ParseInt(query.Get("page_size"), 10),
	}

	var nameFilter, typeFilter *string
	if name := query.Get("name"); name != "" {
		nameFilter = &name
	}
	if typeName := query.Get("airplane_type"); typeName != "" {
		typeFilter = &typeName
	}

	airplanes, err := h.service.GetAirplanes(r.Context(), req, nameFilter, typeFilter)
	if err != nil {
		h.handleServiceError(w, err, "get airplanes")
		return
	}

	utils.ResponseSuccess(w, "success", airplanes)
}

// GetAirplaneByID handles GET /api/airplanes/{id}
func (h *AirplaneHandler) GetAirplaneByID(w http.ResponseWriter, r *http.Request) {
	airplaneID := chi.URLParam(r, "id")
	if airplaneID == "" {
		utils.ResponseBadRequest(w, "Airplane ID is required", nil)
		return
	}

	airplane, err := h.service.GetAirplaneByID(r.Context(), airplaneID)
	if err != nil {
		h.handleServiceError(w, err, "get airplane by ID")
		return
	}

	utils.ResponseSuccess(w, "success", airplane)
}

// CreateAirplane handles POST /api/airplanes
func (h *AirplaneHandler) CreateAirplane(w http.ResponseWriter, r *http.Request) {
	var req request.AirplaneRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	airplane, err := h.service.CreateAirplane(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create airplane")
		return
	}

	utils.ResponseCreated(w, "success", airplane)
}

// UpdateAirplane handles PATCH /api/airplanes/{id}
func (h *AirplaneHandler) UpdateAirplane(w http.ResponseWriter, r *http.Request) {
	airplaneID := chi.URLParam(r, "id")
	if airplaneID == "" {
		utils.ResponseBadRequest(w, "Airplane ID is required", nil)
		return
	}

	var req request.AirplaneUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	airplane, err := h.service.UpdateAirplane(r.Context(), airplaneID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update airplane")
		return
	}

	utils.ResponseSuccess(w, "success", airplane)
}

// DeleteAirplane handles DELETE /api/airplanes/{id}
func (h *AirplaneHandler) DeleteAirplane(w http.ResponseWriter, r *http.Request) {
	airplaneID := chi.URLParam(r, "id")
	if airplaneID == "" {
		utils.ResponseBadRequest(w, "Airplane ID is required", nil)
		return
	}

	if err := h.service.DeleteAirplane(r.Context(), airplaneID); err != nil {
		h.handleServiceError(w, err, "delete airplane")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *AirplaneHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
