package wire

import (
	"github.com/Zonda001/AirportAPI/internal/adaptor"
	"github.com/Zonda001/AirportAPI/pkg/middleware"
	"github.com/Zonda001/AirportAPI/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(r chi.Router, orderHandler *adaptor.OrderHandler, config *utils.Config, log *zap.Logger) {
	// Orders are always owner-scoped, so every route needs a token.
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, log))

		r.Get("/", orderHandler.GetOrders)
		r.Post("/", orderHandler.CreateOrder)
		r.Get("/{id}", orderHandler.GetOrderByID)
		r.Delete("/{id}", orderHandler.DeleteOrder)
	})
}
