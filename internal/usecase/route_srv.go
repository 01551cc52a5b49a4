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

type RouteService interface {
	GetRoutes(ctx context.Context, req *request.PaginatedRequest, fromName, toName *string) (*response.PaginatedResponse[response.RouteResponse], error)
	GetRouteByID(ctx context.Context, routeID string) (*response.RouteDetailResponse, error)
	CreateRoute(ctx context.Context, req *request.RouteRequest) (*response.RouteDetailResponse, error)
	UpdateRoute(ctx context.Context, routeID string, req *request.RouteUpdateRequest) (*response.RouteDetailResponse, error)
	DeleteRoute(ctx context.Context, routeID string) error
}

type routeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRouteService(repo *repository.Repository, log *zap.Logger) RouteService {
	return &routeService{
		repo: repo,
		log:  log.With(zap.String("service", "route")),
	}
}

// GetRoutes filters by endpoint airport names only when both from and
// to are supplied; a lone filter is ignored.
func (s *routeService) GetRoutes(ctx context.Context, req *request.PaginatedRequest, fromName, toName *string) (*response.PaginatedResponse[response.RouteResponse], error) {
	if fromName == nil || toName == nil {
		fromName, toName = nil, nil
	}

	limit := req.Limit()
	offset := req.Offset()

	routes, err := s.repo.Route.FindAll(ctx, fromName, toName, limit, offset)
	if err != nil {
		s.log.Error("Failed to get routes from repository",
			zap.Error(err),
			zap.Stringp("from", fromName),
			zap.Stringp("to", toName),
		)
		return nil, fmt.Errorf("get routes: %w", err)
	}

	total, err := s.repo.Route.CountAll(ctx, fromName, toName)
	if err != nil {
		s.log.Error("Failed to count routes", zap.Error(err))
		return nil, fmt.Errorf("count routes: %w", err)
	}

	routeResponses := make([]response.RouteResponse, len(routes))
	for i, route := range routes {
		routeResponses[i] = response.RouteToResponse(route)
	}

	return response.NewPaginatedResponse(routeResponses, req.Page, limit, total), nil
}

func (s *routeService) GetRouteByID(ctx context.Context, routeID string) (*response.RouteDetailResponse, error) {
	id, err := uuid.Parse(routeID)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID format %s: %w", routeID, err)
	}

	route, err := s.repo.Route.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get route by ID", zap.Error(err), zap.String("route_id", routeID))
		return nil, fmt.Errorf("get route %s: %w", routeID, err)
	}
	if route == nil {
		return nil, fmt.Errorf("route %s not found", routeID)
	}

	return s.buildDetail(ctx, route)
}

func (s *routeService) CreateRoute(ctx context.Context, req *request.RouteRequest) (*response.RouteDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create route validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	sourceID, err := uuid.Parse(req.Source)
	if err != nil {
		return nil, fmt.Errorf("invalid airport ID format %s: %w", req.Source, err)
	}
	destinationID, err := uuid.Parse(req.Destination)
	if err != nil {
		return nil, fmt.Errorf("invalid airport ID format %s: %w", req.Destination, err)
	}

	if errs := entity.ValidateDestination(sourceID, destinationID); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.checkAirportExists(ctx, sourceID); err != nil {
		return nil, err
	}
	if err := s.checkAirportExists(ctx, destinationID); err != nil {
		return nil, err
	}

	now := time.Now()
	route := &entity.Route{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		SourceID:      sourceID,
		DestinationID: destinationID,
		Distance:      req.Distance,
	}

	if err := s.repo.Route.Create(ctx, route); err != nil {
		s.log.Error("Failed to create route",
			zap.Error(err),
			zap.String("source_id", sourceID.String()),
			zap.String("destination_id", destinationID.String()),
		)
		return nil, fmt.Errorf("create route: %w", err)
	}

	s.log.Info("Route created",
		zap.String("route_id", route.ID.String()),
		zap.Int("distance", route.Distance),
	)

	return s.buildDetail(ctx, route)
}

func (s *routeService) UpdateRoute(ctx context.Context, routeID string, req *request.RouteUpdateRequest) (*response.RouteDetailResponse, error) {
	id, err := uuid.Parse(routeID)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID format %s: %w", routeID, err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	route, err := s.repo.Route.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get route %s: %w", routeID, err)
	}
	if route == nil {
		return nil, fmt.Errorf("route %s not found", routeID)
	}

	updated := false

	if req.Source != nil {
		sourceID, err := uuid.Parse(*req.Source)
		if err != nil {
			return nil, fmt.Errorf("invalid airport ID format %s: %w", *req.Source, err)
		}
		if sourceID != route.SourceID {
			if err := s.checkAirportExists(ctx, sourceID); err != nil {
				return nil, err
			}
			route.SourceID = sourceID
			updated = true
		}
	}

	if req.Destination != nil {
		destinationID, err := uuid.Parse(*req.Destination)
		if err != nil {
			return nil, fmt.Errorf("invalid airport ID format %s: %w", *req.Destination, err)
		}
		if destinationID != route.DestinationID {
			if err := s.checkAirportExists(ctx, destinationID); err != nil {
				return nil, err
			}
			route.DestinationID = destinationID
			updated = true
		}
	}

	if errs := entity.ValidateDestination(route.SourceID, route.DestinationID); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.Distance != nil && *req.Distance != route.Distance {
		route.Distance = *req.Distance
		updated = true
	}

	if updated {
		route.UpdatedAt = time.Now()
		if err := s.repo.Route.Update(ctx, route); err != nil {
			s.log.Error("Failed to update route", zap.Error(err), zap.String("route_id", routeID))
			return nil, fmt.Errorf("update route %s: %w", routeID, err)
		}
	}

	return s.buildDetail(ctx, route)
}

func (s *routeService) DeleteRoute(ctx context.Context, routeID string) error {
	id, err := uuid.Parse(routeID)
	if err != nil {
		return fmt.Errorf("invalid route ID format %s: %w", routeID, err)
	}

	route, err := s.repo.Route.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get route %s: %w", routeID, err)
	}
	if route == nil {
		return fmt.Errorf("route %s not found", routeID)
	}

	if err := s.repo.Route.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete route", zap.Error(err), zap.String("route_id", routeID))
		return fmt.Errorf("delete route %s: %w", routeID, err)
	}

	s.log.Info("Route deleted", zap.String("route_id", routeID))
	return nil
}

func (s *routeService) checkAirportExists(ctx context.Context, airportID uuid.UUID) error {
	airport, err := s.repo.Airport.FindByID(ctx, airportID)
	if err != nil {
		s.log.Error("Failed to check airport", zap.Error(err), zap.String("airport_id", airportID.String()))
		return fmt.Errorf("check airport %s: %w", airportID.String(), err)
	}
	if airport == nil {
		return fmt.Errorf("airport %s not found", airportID.String())
	}
	return nil
}

func (s *routeService) buildDetail(ctx context.Context, route *entity.Route) (*response.RouteDetailResponse, error) {
	source, err := s.repo.Airport.FindByID(ctx, route.SourceID)
	if err != nil || source == nil {
		return nil, fmt.Errorf("airport %s not found", route.SourceID.String())
	}

	destination, err := s.repo.Airport.FindByID(ctx, route.DestinationID)
	if err != nil || destination == nil {
		return nil, fmt.Errorf("airport %s not found", route.DestinationID.String())
	}

	detail := response.RouteToDetailResponse(route, source, destination)
	return &detail, nil
}
