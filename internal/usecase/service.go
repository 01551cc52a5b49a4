package usecase

import (
	"github.com/Zonda001/AirportAPI/internal/data/repository"
	"github.com/Zonda001/AirportAPI/internal/kafka"
	"github.com/Zonda001/AirportAPI/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	User         UserService
	Crew         CrewService
	Airport      AirportService
	Route        RouteService
	AirplaneType AirplaneTypeService
	Airplane     AirplaneService
	Flight       FlightService
	Order        OrderService
}

func NewService(repo *repository.Repository, producer *kafka.Producer, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo.User, config, log),
		User:         NewUserService(repo.User, log),
		Crew:         NewCrewService(repo.Crew, log),
		Airport:      NewAirportService(repo.Airport, log),
		Route:        NewRouteService(repo, log),
		AirplaneType: NewAirplaneTypeService(repo.AirplaneType, log),
		Airplane:     NewAirplaneService(repo, log),
		Flight:       NewFlightService(repo, log),
		Order:        NewOrderService(repo, producer, log),
	}
}
