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

type RouteHandler struct {
	service usecase.RouteService
	log     *zap.Logger
}

func NewRouteHandler(service usecase.RouteService, log *zap.Logger) *RouteHandler {
	return &RouteHandler{
		service: service,
		log:     log.With(zap.String("handler", "route")),
	}
}

// GetRoutes handles GET /api/routes
func (h *RouteHandler) GetRoutes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:     utils.ParseInt(query.Get("page"), 1),
		PageSize: utils.ParseInt(query.Get("page_size"), 10),
	}

	var fromName, toName *string
	if from := query.Get("from"); from != "" {
		fromName = &from
	}
	if to := query.Get("to"); to != "" {
		toName = &to
	}

	routes, err := h.service.GetRoutes(r.Context(), req, fromName, toName)
	if err != nil {
		h.handleServiceError(w, err, "get routes")
		return
	}

	utils.ResponseSuccess(w, "success", routes)
}

// GetRouteByID handles GET /api/routes/{id}
func (h *RouteHandler) GetRouteByID(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "id")
	if routeID == "" {
		utils.ResponseBadRequest(w, "Route ID is required", nil)
		return
	}

	route, err := h.service.GetRouteByID(r.Context(), routeID)
	if err != nil {
		h.handleServiceError(w, err, "get route by ID")
		return
	}

	utils.ResponseSuccess(w, "success", route)
}

// CreateRoute handles POST /api/routes
func (h *RouteHandler) CreateRoute(w http.ResponseWriter, r *http.Request) {
	var req request.RouteRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	route, err := h.service.CreateRoute(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create route")
		return
	}

	utils.ResponseCreated(w, "success", route)
}

// UpdateRoute handles PATCH /api/routes/{id}
func (h *RouteHandler) UpdateRoute(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "id")
	if routeID == "" {
		utils.ResponseBadRequest(w, "Route ID is required", nil)
		return
	}

	var req request.RouteUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	route, err := h.service.UpdateRoute(r.Context(), routeID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update route")
		return
	}

	utils.ResponseSuccess(w, "success", route)
}

// DeleteRoute handles DELETE /api/routes/{id}
func (h *RouteHandler) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "id")
	if routeID == "" {
		utils.ResponseBadRequest(w, "Route ID is required", nil)
		return
	}

	if err := h.service.DeleteRoute(r.Context(), routeID); err != nil {
		h.handleServiceError(w, err, "delete route")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *RouteHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
