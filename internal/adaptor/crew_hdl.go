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

type CrewHandler struct {
	service usecase.CrewService
	log     *zap.Logger
}

func NewCrewHandler(service usecase.CrewService, log *zap.Logger) *CrewHandler {
	return &CrewHandler{
		service: service,
		log:     log.With(zap.String("handler", "crew")),
	}
}

// GetCrews handles GET /api/crews
func (h *CrewHandler) GetCrews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:     utils.ParseInt(query.Get("page"), 1),
		PageSize: utils.ParseInt(query.Get("page_size"), 10),
	}

	var fullNameFilter *string
	if fullName := query.Get("full_name"); fullName != "" {
		fullNameFilter = &fullName
	}

	crews, err := h.service.GetCrews(r.Context(), req, fullNameFilter)
	if err != nil {
		h.handleServiceError(w, err, "get crews")
		return
	}

	utils.ResponseSuccess(w, "success", crews)
}

// GetCrewByID handles GET /api/crews/{id}
func (h *CrewHandler) GetCrewByID(w http.ResponseWriter, r *http.Request) {
	crewID := chi.URLParam(r, "id")
	if crewID == "" {
		utils.ResponseBadRequest(w, "Crew ID is required", nil)
		return
	}

	crew, err := h.service.GetCrewByID(r.Context(), crewID)
	if err != nil {
		h.handleServiceError(w, err, "get crew by ID")
		return
	}

	utils.ResponseSuccess(w, "success", crew)
}

// CreateCrew handles POST /api/crews
func (h *CrewHandler) CreateCrew(w http.ResponseWriter, r *http.Request) {
	var req request.CrewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	crew, err := h.service.CreateCrew(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create crew")
		return
	}

	utils.ResponseCreated(w, "success", crew)
}

// UpdateCrew handles PATCH /api/crews/{id}
func (h *CrewHandler) UpdateCrew(w http.ResponseWriter, r *http.Request) {
	crewID := chi.URLParam(r, "id")
	if crewID == "" {
		utils.ResponseBadRequest(w, "Crew ID is required", nil)
		return
	}

	var req request.CrewUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	crew, err := h.service.UpdateCrew(r.Context(), crewID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update crew")
		return
	}

	utils.ResponseSuccess(w, "success", crew)
}

// DeleteCrew handles DELETE /api/crews/{id}
func (h *CrewHandler) DeleteCrew(w http.ResponseWriter, r *http.Request) {
	crewID := chi.URLParam(r, "id")
	if crewID == "" {
		utils.ResponseBadRequest(w, "Crew ID is required", nil)
		return
	}

	if err := h.service.DeleteCrew(r.Context(), crewID); err != nil {
		h.handleServiceError(w, err, "delete crew")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *CrewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
