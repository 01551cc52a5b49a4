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

type AirportService interface {
	GetAirports(ctx context.Context, req *request.PaginatedRequest, nameFilter *string) (*response.PaginatedResponse[response.AirportResponse], error)
	GetAirportByID(ctx context.Context, airportID string) (*response.AirportResponse, error)
	CreateAirport(ctx context.Context, req *request.AirportRequest) (*response.AirportResponse, error)
	UpdateAirport(ctx context.Context, airportID string, req *request.AirportUpdateRequest) (*response.AirportResponse, error)
	DeleteAirport(ctx context.Context, airportID string) error
}

type airportService struct {
	airportRepo repository.AirportRepository
	log         *zap.Logger
}

func NewAirportService(airportRepo repository.AirportRepository, log *zap.Logger) AirportService {
	return &airportService{
		airportRepo: airportRepo,
		log:         log.With(zap.String("service", "airport")),
	}
}

func (s *airportService) GetAirports(ctx context.Context, req *request.PaginatedRequest, nameFilter *string) (*response.PaginatedResponse[response.AirportResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	airports, err := s.airportRepo.FindAll(ctx, nameFilter, limit, offset)
	if err != nil {
		s.log.Error("Failed to get airports from repository",
			zap.Error(err),
			zap.Stringp("name_filter", nameFilter),
		)
		return nil, fmt.Errorf("get airports: %w", err)
	}

	total, err := s.airportRepo.CountAll(ctx, nameFilter)
	if err != nil {
		s.log.Error("Failed to count airports", zap.Error(err))
		return nil, fmt.Errorf("count airports: %w", err)
	}

	airportResponses := make([]response.AirportResponse, len(airports))
	for i, airport := range airports {
		airportResponses[i] = response.AirportToResponse(airport)
	}

	return response.NewPaginatedResponse(airportResponses, req.Page, limit, total), nil
}

func (s *airportService) GetAirportByID(ctx context.Context, airportID string) (*response.AirportResponse, error) {
	id, err := uuid.Parse(airportID)
	if err != nil {
		return nil, fmt.Errorf("invalid airport ID format %s: %w", airportID, err)
	}

	airport, err := s.airportRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get airport by ID", zap.Error(err), zap.String("airport_id", airportID))
		return nil, fmt.Errorf("get airport %s: %w", airportID, err)
	}
	if airport == nil {
		return nil, fmt.Errorf("airport %s not found", airportID)
	}

	airportResp := response.AirportToResponse(airport)
	return &airportResp, nil
}

func (s *airportService) CreateAirport(ctx context.Context, req *request.AirportRequest) (*response.AirportResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create airport validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	airport := &entity.Airport{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		ClosestBigCity: req.ClosestBigCity,
	}

	if err := s.airportRepo.Create(ctx, airport); err != nil {
		s.log.Error("Failed to create airport",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create airport: %w", err)
	}

	s.log.Info("Airport created",
		zap.String("airport_id", airport.ID.String()),
		zap.String("name", airport.Name),
		zap.String("closest_big_city", airport.ClosestBigCity),
	)

	airportResp := response.AirportToResponse(airport)
	return &airportResp, nil
}

func (s *airportService) UpdateAirport(ctx context.Context, airportID string, req *request.AirportUpdateRequest) (*response.AirportResponse, error) {
	id, err := uuid.Parse(airportID)
	if err != nil {
		return nil, fmt.Errorf("invalid airport ID format %s: %w", airportID, err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	airport, err := s.airportRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get airport %s: %w", airportID, err)
	}
	if airport == nil {
		return nil, fmt.Errorf("airport %s not found", airportID)
	}

	updated := false

	if req.Name != nil && *req.Name != airport.Name {
		airport.Name = *req.Name
		updated = true
	}

	if req.ClosestBigCity != nil && *req.ClosestBigCity != airport.ClosestBigCity {
		airport.ClosestBigCity = *req.ClosestBigCity
		updated = true
	}

	if updated {
		airport.UpdatedAt = time.Now()
		if err := s.airportRepo.Update(ctx, airport); err != nil {
			s.log.Error("Failed to update airport", zap.Error(err), zap.String("airport_id", airportID))
			return nil, fmt.Errorf("update airport %s: %w", airportID, err)
		}
	}

	airportResp := response.AirportToResponse(airport)
	return &airportResp, nil
}

func (s *airportService) DeleteAirport(ctx context.Context, airportID string) error {
	id, err := uuid.Parse(airportID)
	if err != nil {
		return fmt.Errorf("invalid airport ID format %s: %w", airportID, err)
	}

	airport, err := s.airportRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get airport %s: %w", airportID, err)
	}
	if airport == nil {
		return fmt.Errorf("airport %s not found", airportID)
	}

	if err := s.airportRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete airport", zap.Error(err), zap.String("airport_id", airportID))
		return fmt.Errorf("delete airport %s: %w", airportID, err)
	}

	s.log.Info("Airport deleted",
		zap.String("airport_id", airportID),
		zap.String("name", airport.Name),
	)

	return nil
}
