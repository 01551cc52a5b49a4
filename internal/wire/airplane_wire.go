package wire

import (
	"github.com/Zonda001/AirportAPI/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAirplane(r chi.Router, typeHandler *adaptor.AirplaneTypeHandler, airplaneHandler *adaptor.AirplaneHandler) {
	r.Route("/api/airplane-types", func(r chi.Router) {
		r.Get("/", typeHandler.GetAirplaneTypes)
		r.Post("/", typeHandler.CreateAirplaneType)
		r.Get("/{id}", typeHandler.GetAirplaneTypeByID)
		r.Patch("/{id}", typeHandler.UpdateAirplaneType)
		r.Delete("/{id}", typeHandler.DeleteAirplaneType)
	})

	r.Route("/api/airplanes", func(r chi.Router) {
		r.Get("/", airplaneHandler.GetAirplanes)
		r.Post("/", airplaneHandler.CreateAirplane)
		r.Get("/{id}", airplaneHandler.GetAirplaneByID)
		r.Patch("/{id}", airplaneHandler.UpdateAirplane)
		r.Delete("/{id}", airplaneHandler.DeleteAirplane)
	})
}
