package wire

import (
	"github.com/Zonda001/AirportAPI/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/api/user/register", authHandler.Register)
	r.Post("/api/token", authHandler.Token)
	r.Post("/api/token/refresh", authHandler.RefreshToken)
	r.Post("/api/token/verify", authHandler.VerifyToken)
}
