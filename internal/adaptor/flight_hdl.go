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

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log.With(zap.String("handler", "flight")),
	}
}

// GetFlights handles GET /api/flights
func (h *FlightHandler) GetFlights(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:     utils.ParseInt(query.Get("page"), 1),
		PageSize: utils.ParseInt(query.Get("page_size"), 10),
	}

	var filter usecase.FlightListFilter
	if from := query.Get("from"); from != "" {
		filter.FromCity = &from
	}
	if to := query.Get("to"); to != "" {
		filter.ToCity = &to
	}
	if departureTime := query.Get("departure_time"); departureTime != "" {
		filter.DepartureTime = &departureTime
	}
	if arrivalTime := query.Get("arrival_time"); arrivalTime != "" {
		filter.ArrivalTime = &arrivalTime
	}

	flights, err := h.service.GetFlights(r.Context(), req, filter)
	if err != nil {
		h.handleServiceError(w, err, "get flights")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}

// GetFlightByID handles GET /api/flights/{id}
func (h *FlightHandler) GetFlightByID(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return
	}

	flight, err := h.service.GetFlightByID(r.Context(), flightID)
	if err != nil {
		h.handleServiceError(w, err, "get flight by ID")
		return
	}

	utils.ResponseSuccess(w, "success", flight)
}

// CreateFlight handles POST /api/flights
func (h *FlightHandler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var req request.FlightRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	flight, err := h.service.CreateFlight(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create flight")
		return
	}

	utils.ResponseCreated(w, "success", flight)
}

// UpdateFlight handles PATCH /api/flights/{id}
func (h *FlightHandler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return
	}

	var req request.FlightUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	flight, err := h.service.UpdateFlight(r.Context(), flightID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update flight")
		return
	}

	utils.ResponseSuccess(w, "success", flight)
}

// DeleteFlight handles DELETE /api/flights/{id}
func (h *FlightHandler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return
	}

	if err := h.service.DeleteFlight(r.Context(), flightID); err != nil {
		h.handleServiceError(w, err, "delete flight")
		return
	}

	utils.ResponseNoContent(w)
}

func (h *FlightHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
