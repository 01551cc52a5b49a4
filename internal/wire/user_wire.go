package wire

import (
	"github.com/Zonda001/AirportAPI/internal/adaptor"
	"github.com/Zonda001/AirportAPI/pkg/middleware"
	"github.com/Zonda001/AirportAPI/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/user/me", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, log))

		r.Get("/", userHandler.GetProfile)
		r.Patch("/", userHandler.UpdateProfile)
	})
}
