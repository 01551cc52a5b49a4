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

type AirportHandler struct {
	service usecase.AirportService
	log     *zap.Logger
}

func NewAirportHandler(service usecase.AirportService, log *zap.Logger) *AirportHandler {
	return &AirportHandler{
		service: service,
		log:     log.With(zap.String("handler", "airport")),
	}
}

// GetAirports handles GET /api/airports
func (h *AirportHandler) GetAirports(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:     utils.ParseInt(query.Get("page"), 1),
		PageSize: utils.ParseInt(query.Get("page_size"), 10),
	}

	var nameFilter *string
	if name := query.Get("name"); name != "" {
		nameFilter = &name
	}

	airports, err := h.service.GetAirports(r.Context(), req, nameFilter)
	if err != nil {
		h.handleServiceError(w, err, "get airports")
		return
	}

	utils.ResponseSuccess(w, "success", airports)
}

// GetAirportByID handles GET /api/airports/{id}
func (h *AirportHandler) GetAirportByID(w http.ResponseWriter, r *http.Request) {
	airportID := chi.URLParam(r, "id")
	if airportID == "" {
		utils.ResponseBadRequest(w, "Airport ID is required", nil)
		return
	}

	airport, err := h.service.GetAirportByID(r.Context(), airportID)
	if err != nil {
		h.handleServiceError(w, err, "get airport by ID")
		return
	}

	utils.ResponseSuccess(w, "success", airport)
}

// CreateAirport handles POST /api/airports
func (h *AirportHandler) CreateAirport(w http.ResponseWriter, r *http.Request) {
	var req request.AirportRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	airport, err := h.service.CreateAirport(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create airport")
		return
	}

	utils.ResponseCreated(w, "success", airport)
}

// UpdateAirport handles PATCH /api/airports/{id}
func (h *AirportHandler) UpdateAirport(w http.ResponseWriter, r *http.Request) {
	airportID := chi.URLParam(r, "id")
	if airportID == "" {
		utils.ResponseBadRequest(w, "Airport ID is required", nil)
		return
	}

	var req request.AirportUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	airport, err := h.service.UpdateAirport(r.Context(), airportID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update airport")
		return
	}

	utils.ResponseSuccess(w, "success", airport)
}

// DeleteAirport handles DELETE /api/airports/{id}
func (h *AirportHandler) DeleteAirport(w http.ResponseWriter, r *http.Request) {
	airportID := chi.URLParam(r, "id")
	if airportID == "" {
		utils.ResponseBadRequest(w, "Airport ID is required", nil)
		return
	}

	if err := h.service.DeleteAirport(r.Context(), airportID); err != nil {
		h.handleServiceError(w, err, "delete airport")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *AirportHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already exists"):
		h.log.Warn(operation+" failed - duplicate",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
