package adaptor

import (
	"github.com/Zonda001/AirportAPI/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Crew         *CrewHandler
	Airport      *AirportHandler
	Route        *RouteHandler
	AirplaneType *AirplaneTypeHandler
	Airplane     *AirplaneHandler
	Flight       *FlightHandler
	Order        *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		User:         NewUserHandler(service.User, log),
		Crew:         NewCrewHandler(service.Crew, log),
		Airport:      NewAirportHandler(service.Airport, log),
		Route:        NewRouteHandler(service.Route, log),
		AirplaneType: NewAirplaneTypeHandler(service.AirplaneType, log),
		Airplane:     NewAirplaneHandler(service.Airplane, log),
		Flight:       NewFlightHandler(service.Flight, log),
		Order:        NewOrderHandler(service.Order, log),
	}
}
