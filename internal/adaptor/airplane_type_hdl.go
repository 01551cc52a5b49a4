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

type AirplaneTypeHandler struct {
	service usecase.AirplaneTypeService
	log     *zap.Logger
}

func NewAirplaneTypeHandler(service usecase.AirplaneTypeService, log *zap.Logger) *AirplaneTypeHandler {
	return &AirplaneTypeHandler{
		service: service,
		log:     log.With(zap.String("handler", "airplane_type")),
	}
}

// GetAirplaneTypes handles GET /api/airplane-types
func (h *AirplaneTypeHandler) GetAirplaneTypes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:     utils.ParseInt(query.Get("page"), 1),
		PageSize: utils.ParseInt(query.Get("page_size"), 10),
	}

	var nameFilter *string
	if name := query.Get("name"); name != "" {
		nameFilter = &name
	}

	types, err := h.service.GetAirplaneTypes(r.Context(), req, nameFilter)
	if err != nil {
		h.handleServiceError(w, err, "get airplane types")
		return
	}

	utils.ResponseSuccess(w, "success", types)
}

// GetAirplaneTypeByID handles GET /api/airplane-types/{id}
func (h *AirplaneTypeHandler) GetAirplaneTypeByID(w http.ResponseWriter, r *http.Request) {
	typeID := chi.URLParam(r, "id")
	if typeID == "" {
		utils.ResponseBadRequest(w, "Airplane type ID is required", nil)
		return
	}

	airplaneType, err := h.service.GetAirplaneTypeByID(r.Context(), typeID)
	if err != nil {
		h.handleServiceError(w, err, "get airplane type by ID")
		return
	}

	utils.ResponseSuccess(w, "success", airplaneType)
}

// CreateAirplaneType handles POST /api/airplane-types
func (h *AirplaneTypeHandler) CreateAirplaneType(w http.ResponseWriter, r *http.Request) {
	var req request.AirplaneTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	airplaneType, err := h.service.CreateAirplaneType(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create airplane type")
		return
	}

	utils.ResponseCreated(w, "success", airplaneType)
}

// UpdateAirplaneType handles PATCH /api/airplane-types/{id}
func (h *AirplaneTypeHandler) UpdateAirplaneType(w http.ResponseWriter, r *http.Request) {
	typeID := chi.URLParam(r, "id")
	if typeID == "" {
		utils.ResponseBadRequest(w, "Airplane type ID is required", nil)
		return
	}

	var req request.AirplaneTypeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	airplaneType, err := h.service.UpdateAirplaneType(r.Context(), typeID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update airplane type")
		return
	}

	utils.ResponseSuccess(w, "success", airplaneType)
}

// DeleteAirplaneType handles DELETE /api/airplane-types/{id}
func (h *AirplaneTypeHandler) DeleteAirplaneType(w http.ResponseWriter, r *http.Request) {
	typeID := chi.URLParam(r, "id")
	if typeID == "" {
		utils.ResponseBadRequest(w, "Airplane type ID is required", nil)
		return
	}

	if err := h.service.DeleteAirplaneType(r.Context(), typeID); err != nil {
		h.handleServiceError(w, err, "delete airplane type")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *AirplaneTypeHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
