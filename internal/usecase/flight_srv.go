package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Zonda001/AirportAPI/internal/data/entity"
	"github.com/Zonda001/AirportAPI/internal/data/repository"
	"github.com/Zonda001/AirportAPI/internal/dto/request"
	"github.com/Zonda001/AirportAPI/internal/dto/response"
	"github.com/Zonda001/AirportAPI/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FlightTimeLayout is the only accepted wire format for flight
// timestamps, both in payloads and in query filters.
const FlightTimeLayout = "2006-01-02T15:04:05Z"

// FlightListFilter carries raw query values; timestamps are parsed
// against FlightTimeLayout before hitting the repository.
type FlightListFilter struct {
	FromCity      *string
	ToCity        *string
	DepartureTime *string
	ArrivalTime   *string
}

type FlightService interface {
	GetFlights(ctx context.Context, req *request.PaginatedRequest, filter FlightListFilter) (*response.PaginatedResponse[response.FlightResponse], error)
	GetFlightByID(ctx context.Context, flightID string) (*response.FlightDetailResponse, error)
	CreateFlight(ctx context.Context, req *request.FlightRequest) (*response.FlightDetailResponse, error)
	UpdateFlight(ctx context.Context, flightID string, req *request.FlightUpdateRequest) (*response.FlightDetailResponse, error)
	DeleteFlight(ctx context.Context, flightID string) error
}

type flightService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFlightService(repo *repository.Repository, log *zap.Logger) FlightService {
	return &flightService{
		repo: repo,
		log:  log.With(zap.String("service", "flight")),
	}
}

func (s *flightService) GetFlights(ctx context.Context, req *request.PaginatedRequest, filter FlightListFilter) (*response.PaginatedResponse[response.FlightResponse], error) {
	repoFilter, err := s.parseFilter(filter)
	if err != nil {
		return nil, err
	}

	limit := req.Limit()
	offset := req.Offset()

	flights, err := s.repo.Flight.FindAll(ctx, repoFilter, limit, offset)
	if err != nil {
		s.log.Error("Failed to get flights from repository",
			zap.Error(err),
			zap.Stringp("from", filter.FromCity),
			zap.Stringp("to", filter.ToCity),
		)
		return nil, fmt.Errorf("get flights: %w", err)
	}

	total, err := s.repo.Flight.CountAll(ctx, repoFilter)
	if err != nil {
		s.log.Error("Failed to count flights", zap.Error(err))
		return nil, fmt.Errorf("count flights: %w", err)
	}

	flightResponses := make([]response.FlightResponse, len(flights))
	for i, flight := range flights {
		crews, err := s.repo.Flight.FindCrew(ctx, flight.ID)
		if err != nil {
			s.log.Warn("Failed to get crew for flight",
				zap.Error(err),
				zap.String("flight_id", flight.ID.String()),
			)
		}
		flightResponses[i] = response.FlightToResponse(flight, crews)
	}

	return response.NewPaginatedResponse(flightResponses, req.Page, limit, total), nil
}

func (s *flightService) GetFlightByID(ctx context.Context, flightID string) (*response.FlightDetailResponse, error) {
	id, err := uuid.Parse(flightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID format %s: %w", flightID, err)
	}

	flight, err := s.repo.Flight.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get flight by ID", zap.Error(err), zap.String("flight_id", flightID))
		return nil, fmt.Errorf("get flight %s: %w", flightID, err)
	}
	if flight == nil {
		return nil, fmt.Errorf("flight %s not found", flightID)
	}

	return s.buildDetail(ctx, flight)
}

func (s *flightService) CreateFlight(ctx context.Context, req *request.FlightRequest) (*response.FlightDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create flight validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	departureTime, err := time.Parse(FlightTimeLayout, req.DepartureTime)
	if err != nil {
		return nil, fmt.Errorf("invalid departure_time format %s, expected %s", req.DepartureTime, FlightTimeLayout)
	}
	arrivalTime, err := time.Parse(FlightTimeLayout, req.ArrivalTime)
	if err != nil {
		return nil, fmt.Errorf("invalid arrival_time format %s, expected %s", req.ArrivalTime, FlightTimeLayout)
	}

	if errs := entity.ValidateArrival(departureTime, arrivalTime); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	routeID, err := uuid.Parse(req.Route)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID format %s: %w", req.Route, err)
	}
	airplaneID, err := uuid.Parse(req.Airplane)
	if err != nil {
		return nil, fmt.Errorf("invalid airplane ID format %s: %w", req.Airplane, err)
	}

	if err := s.checkReferences(ctx, routeID, airplaneID); err != nil {
		return nil, err
	}

	crewIDs, err := s.resolveCrewIDs(ctx, req.Crew)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	flight := &entity.Flight{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RouteID:       routeID,
		AirplaneID:    airplaneID,
		DepartureTime: departureTime,
		ArrivalTime:   arrivalTime,
	}

	if err := s.repo.Flight.Create(ctx, flight, crewIDs); err != nil {
		s.log.Error("Failed to create flight",
			zap.Error(err),
			zap.String("route_id", routeID.String()),
		)
		return nil, fmt.Errorf("create flight: %w", err)
	}

	s.log.Info("Flight created",
		zap.String("flight_id", flight.ID.String()),
		zap.Time("departure_time", departureTime),
		zap.Int("crew_count", len(crewIDs)),
	)

	return s.buildDetail(ctx, flight)
}

func (s *flightService) UpdateFlight(ctx context.Context, flightID string, req *request.FlightUpdateRequest) (*response.FlightDetailResponse, error) {
	id, err := uuid.Parse(flightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID format %s: %w", flightID, err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	flight, err := s.repo.Flight.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get flight %s: %w", flightID, err)
	}
	if flight == nil {
		return nil, fmt.Errorf("flight %s not found", flightID)
	}

	if req.Route != nil {
		routeID, err := uuid.Parse(*req.Route)
		if err != nil {
			return nil, fmt.Errorf("invalid route ID format %s: %w", *req.Route, err)
		}
		flight.RouteID = routeID
	}

	if req.Airplane != nil {
		airplaneID, err := uuid.Parse(*req.Airplane)
		if err != nil {
			return nil, fmt.Errorf("invalid airplane ID format %s: %w", *req.Airplane, err)
		}
		flight.AirplaneID = airplaneID
	}

	if req.DepartureTime != nil {
		departureTime, err := time.Parse(FlightTimeLayout, *req.DepartureTime)
		if err != nil {
			return nil, fmt.Errorf("invalid departure_time format %s, expected %s", *req.DepartureTime, FlightTimeLayout)
		}
		flight.DepartureTime = departureTime
	}

	if req.ArrivalTime != nil {
		arrivalTime, err := time.Parse(FlightTimeLayout, *req.ArrivalTime)
		if err != nil {
			return nil, fmt.Errorf("invalid arrival_time format %s, expected %s", *req.ArrivalTime, FlightTimeLayout)
		}
		flight.ArrivalTime = arrivalTime
	}

	if errs := entity.ValidateArrival(flight.DepartureTime, flight.ArrivalTime); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.checkReferences(ctx, flight.RouteID, flight.AirplaneID); err != nil {
		return nil, err
	}

	// Crew omitted from the payload keeps the current assignment.
	var crewIDs []uuid.UUID
	if req.Crew != nil {
		crewIDs, err = s.resolveCrewIDs(ctx, req.Crew)
		if err != nil {
			return nil, err
		}
	} else {
		current, err := s.repo.Flight.FindCrew(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get flight crew %s: %w", flightID, err)
		}
		for _, crew := range current {
			crewIDs = append(crewIDs, crew.ID)
		}
	}

	flight.UpdatedAt = time.Now()
	if err := s.repo.Flight.Update(ctx, flight, crewIDs); err != nil {
		s.log.Error("Failed to update flight", zap.Error(err), zap.String("flight_id", flightID))
		return nil, fmt.Errorf("update flight %s: %w", flightID, err)
	}

	return s.buildDetail(ctx, flight)
}

func (s *flightService) DeleteFlight(ctx context.Context, flightID string) error {
	id, err := uuid.Parse(flightID)
	if err != nil {
		return fmt.Errorf("invalid flight ID format %s: %w", flightID, err)
	}

	flight, err := s.repo.Flight.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get flight %s: %w", flightID, err)
	}
	if flight == nil {
		return fmt.Errorf("flight %s not found", flightID)
	}

	if err := s.repo.Flight.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete flight", zap.Error(err), zap.String("flight_id", flightID))
		return fmt.Errorf("delete flight %s: %w", flightID, err)
	}

	s.log.Info("Flight deleted", zap.String("flight_id", flightID))
	return nil
}

func (s *flightService) parseFilter(filter FlightListFilter) (repository.FlightFilter, error) {
	repoFilter := repository.FlightFilter{
		FromCity: filter.FromCity,
		ToCity:   filter.ToCity,
	}

	if filter.DepartureTime != nil {
		departureTime, err := time.Parse(FlightTimeLayout, *filter.DepartureTime)
		if err != nil {
			return repoFilter, fmt.Errorf("invalid departure_time format %s, expected %s", *filter.DepartureTime, FlightTimeLayout)
		}
		repoFilter.DepartureTime = &departureTime
	}

	if filter.ArrivalTime != nil {
		arrivalTime, err := time.Parse(FlightTimeLayout, *filter.ArrivalTime)
		if err != nil {
			return repoFilter, fmt.Errorf("invalid arrival_time format %s, expected %s", *filter.ArrivalTime, FlightTimeLayout)
		}
		repoFilter.ArrivalTime = &arrivalTime
	}

	return repoFilter, nil
}

func (s *flightService) checkReferences(ctx context.Context, routeID, airplaneID uuid.UUID) error {
	route, err := s.repo.Route.FindByID(ctx, routeID)
	if err != nil {
		return fmt.Errorf("check route %s: %w", routeID.String(), err)
	}
	if route == nil {
		return fmt.Errorf("route %s not found", routeID.String())
	}

	airplane, err := s.repo.Airplane.FindByID(ctx, airplaneID)
	if err != nil {
		return fmt.Errorf("check airplane %s: %w", airplaneID.String(), err)
	}
	if airplane == nil {
		return fmt.Errorf("airplane %s not found", airplaneID.String())
	}

	return nil
}

func (s *flightService) resolveCrewIDs(ctx context.Context, crew []string) ([]uuid.UUID, error) {
	crewIDs := make([]uuid.UUID, 0, len(crew))
	for _, raw := range crew {
		crewID, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid crew ID format %s: %w", raw, err)
		}

		member, err := s.repo.Crew.FindByID(ctx, crewID)
		if err != nil {
			return nil, fmt.Errorf("check crew %s: %w", raw, err)
		}
		if member == nil {
			return nil, fmt.Errorf("crew %s not found", raw)
		}

		crewIDs = append(crewIDs, crewID)
	}
	return crewIDs, nil
}

func (s *flightService) buildDetail(ctx context.Context, flight *entity.Flight) (*response.FlightDetailResponse, error) {
	route, err := s.repo.Route.FindByID(ctx, flight.RouteID)
	if err != nil || route == nil {
		return nil, fmt.Errorf("route %s not found", flight.RouteID.String())
	}

	source, err := s.repo.Airport.FindByID(ctx, route.SourceID)
	if err != nil || source == nil {
		return nil, fmt.Errorf("airport %s not found", route.SourceID.String())
	}
	destination, err := s.repo.Airport.FindByID(ctx, route.DestinationID)
	if err != nil || destination == nil {
		return nil, fmt.Errorf("airport %s not found", route.DestinationID.String())
	}

	airplane, err := s.repo.Airplane.FindByID(ctx, flight.AirplaneID)
	if err != nil || airplane == nil {
		return nil, fmt.Errorf("airplane %s not found", flight.AirplaneID.String())
	}
	airplaneType, err := s.repo.AirplaneType.FindByID(ctx, airplane.AirplaneTypeID)
	if err != nil || airplaneType == nil {
		return nil, fmt.Errorf("airplane type %s not found", airplane.AirplaneTypeID.String())
	}

	crews, err := s.repo.Flight.FindCrew(ctx, flight.ID)
	if err != nil {
		return nil, fmt.Errorf("get flight crew %s: %w", flight.ID.String(), err)
	}

	takenSeats, err := s.repo.Order.FindTakenSeats(ctx, flight.ID)
	if err != nil {
		return nil, fmt.Errorf("get taken seats %s: %w", flight.ID.String(), err)
	}

	routeItem := &entity.RouteListItem{
		Route:           *route,
		SourceName:      source.Name,
		DestinationName: destination.Name,
	}
	airplaneItem := &entity.AirplaneListItem{
		Airplane:         *airplane,
		AirplaneTypeName: airplaneType.Name,
	}

	detail := response.FlightToDetailResponse(flight, routeItem, airplaneItem, crews, takenSeats)
	return &detail, nil
}
