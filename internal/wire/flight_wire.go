package wire

import (
	"github.com/Zonda001/AirportAPI/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFlight(r chi.Router, flightHandler *adaptor.FlightHandler) {
	r.Route("/api/flights", func(r chi.Router) {
		r.Get("/", flightHandler.GetFlights)
		r.Post("/", flightHandler.CreateFlight)
		r.Get("/{id}", flightHandler.GetFlightByID)
		r.Patch("/{id}", flightHandler.UpdateFlight)
		r.Delete("/{id}", flightHandler.DeleteFlight)
	})
}
