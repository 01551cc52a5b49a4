package wire

import (
	"github.com/Zonda001/AirportAPI/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAirport(r chi.Router, airportHandler *adaptor.AirportHandler) {
	r.Route("/api/airports", func(r chi.Router) {
		r.Get("/", airportHandler.GetAirports)
		r.Post("/", airportHandler.CreateAirport)
		r.Get("/{id}", airportHandler.GetAirportByID)
		r.Patch("/{id}", airportHandler.UpdateAirport)
		r.Delete("/{id}", airportHandler.DeleteAirport)
	})
}
