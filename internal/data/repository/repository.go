package repository

import (
	"github.com/Zonda001/AirportAPI/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Crew         CrewRepository
	Airport      AirportRepository
	Route        RouteRepository
	AirplaneType AirplaneTypeRepository
	Airplane     AirplaneRepository
	Flight       FlightRepository
	Order        OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Crew:         NewCrewRepository(db, log),
		Airport:      NewAirportRepository(db, log),
		Route:        NewRouteRepository(db, log),
		AirplaneType: NewAirplaneTypeRepository(db, log),
		Airplane:     NewAirplaneRepository(db, log),
		Flight:       NewFlightRepository(db, log),
		Order:        NewOrderRepository(db, log),
	}
}
