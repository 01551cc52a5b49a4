package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Zonda001/AirportAPI/internal/dto/request"
	"github.com/Zonda001/AirportAPI/internal/usecase"
	"github.com/Zonda001/AirportAPI/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/user/register (public)
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	utils.ResponseCreated(w, "success", user)
}

// Token handles POST /api/token (public)
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	pair, err := h.service.Token(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "token")
		return
	}

	utils.ResponseSuccess(w, "success", pair)
}

// RefreshToken handles POST /api/token/refresh (public)
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req request.RefreshRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	access, err := h.service.RefreshToken(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "refresh token")
		return
	}

	utils.ResponseSuccess(w, "success", access)
}

// VerifyToken handles POST /api/token/verify (public)
func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.VerifyToken(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "verify token")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "invalid credentials"),
		strings.Contains(errMsg, "token is invalid or expired"),
		strings.Contains(errMsg, "account is deactivated"):
		h.log.Warn(operation+" unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already registered"):
		h.log.Warn(operation+" failed - duplicate",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "not found"):
		utils.ResponseNotFound(w, errMsg)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
