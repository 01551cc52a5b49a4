package wire

import (
	"github.com/Zonda001/AirportAPI/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCrew(r chi.Router, crewHandler *adaptor.CrewHandler) {
	r.Route("/api/crews", func(r chi.Router) {
		r.Get("/", crewHandler.GetCrews)
		r.Post("/", crewHandler.CreateCrew)
		r.Get("/{id}", crewHandler.GetCrewByID)
		r.Patch("/{id}", crewHandler.UpdateCrew)
		r.Delete("/{id}", crewHandler.DeleteCrew)
	})
}
