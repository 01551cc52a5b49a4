package wire

import (
	"github.com/Zonda001/AirportAPI/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoute(r chi.Router, routeHandler *adaptor.RouteHandler) {
	r.Route("/api/routes", func(r chi.Router) {
		r.Get("/", routeHandler.GetRoutes)
		r.Post("/", routeHandler.CreateRoute)
		r.Get("/{id}", routeHandler.GetRouteByID)
		r.Patch("/{id}", routeHandler.UpdateRoute)
		r.Delete("/{id}", routeHandler.DeleteRoute)
	})
}
