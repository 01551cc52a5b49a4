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

type AirplaneService interface {
	GetAirplanes(ctx context.Context, req *request.PaginatedRequest, nameFilter, typeFilter *string) (*response.PaginatedResponse[response.AirplaneResponse], error)
	GetAirplaneByID(ctx context.Context, airplaneID string) (*response.AirplaneDetailResponse, error)
	CreateAirplane(ctx context.Context, req *request.AirplaneRequest) (*response.AirplaneDetailResponse, error)
	UpdateAirplane(ctx context.Context, airplaneID string, req *request.AirplaneUpdateRequest) (*response.AirplaneDetailResponse, error)
	DeleteAirplane(ctx context.Context, airplaneID string) error
}

type airplaneService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAirplaneService(repo *repository.Repository, log *zap.Logger) AirplaneService {
	return &airplaneService{
		repo: repo,
		log:  log.With(zap.String("service", "airplane")),
	}
}

func (s *airplaneService) GetAirplanes(ctx context.Context, req *request.PaginatedRequest, nameFilter, typeFilter *string) (*response.PaginatedResponse[response.AirplaneResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	airplanes, err := s.repo.Airplane.FindAll(ctx, nameFilter, typeFilter, limit, offset)
	if err != nil {
		s.log.Error("Failed to get airplanes from repository",
			zap.Error(err),
			zap.Stringp("name_filter", nameFilter),
			zap.Stringp("type_filter", typeFilter),
		)
		return nil, fmt.Errorf("get airplanes: %w", err)
	}

	total, err := s.repo.Airplane.CountAll(ctx, nameFilter, typeFilter)
	if err != nil {
		s.log.Error("Failed to count airplanes", zap.Error(err))
		return nil, fmt.Errorf("count airplanes: %w", err)
	}

	airplaneResponses := make([]response.AirplaneResponse, len(airplanes))
	for i, airplane := range airplanes {
		airplaneResponses[i] = response.AirplaneToResponse(airplane)
	}

	return response.NewPaginatedResponse(airplaneResponses, req.Page, limit, total), nil
}

func (s *airplaneService) GetAirplaneByID(ctx context.Context, airplaneID string) (*response.AirplaneDetailResponse, error) {
	id, err := uuid.Parse(airplaneID)
	if err != nil {
		return nil, fmt.Errorf("invalid airplane ID format %s: %w", airplaneID, err)
	}

	airplane, err := s.repo.Airplane.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get airplane by ID", zap.Error(err), zap.String("airplane_id", airplaneID))
		return nil, fmt.Errorf("get airplane %s: %w", airplaneID, err)
	}
	if airplane == nil {
		return nil, fmt.Errorf("airplane %s not found", airplaneID)
	}

	return s.buildDetail(ctx, airplane)
}

func (s *airplaneService) CreateAirplane(ctx context.Context, req *request.AirplaneRequest) (*response.AirplaneDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create airplane validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	typeID, err := uuid.Parse(req.AirplaneType)
	if err != nil {
		return nil, fmt.Errorf("invalid airplane type ID format %s: %w", req.AirplaneType, err)
	}

	airplaneType, err := s.repo.AirplaneType.FindByID(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("check airplane type %s: %w", req.AirplaneType, err)
	}
	if airplaneType == nil {
		return nil, fmt.Errorf("airplane type %s not found", req.AirplaneType)
	}

	now := time.Now()
	airplane := &entity.Airplane{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		Rows:           req.Rows,
		SeatsInRows:    req.SeatsInRows,
		AirplaneTypeID: typeID,
	}

	if err := s.repo.Airplane.Create(ctx, airplane); err != nil {
		s.log.Error("Failed to create airplane",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create airplane: %w", err)
	}

	s.log.Info("Airplane created",
		zap.String("airplane_id", airplane.ID.String()),
		zap.String("name", airplane.Name),
		zap.Int("num_of_seats", airplane.NumOfSeats()),
	)

	detail := response.AirplaneToDetailResponse(airplane, airplaneType)
	return &detail, nil
}

func (s *airplaneService) UpdateAirplane(ctx context.Context, airplaneID string, req *request.AirplaneUpdateRequest) (*response.AirplaneDetailResponse, error) {
	id, err := uuid.Parse(airplaneID)
	if err != nil {
		return nil, fmt.Errorf("invalid airplane ID format %s: %w", airplaneID, err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	airplane, err := s.repo.Airplane.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get airplane %s: %w", airplaneID, err)
	}
	if airplane == nil {
		return nil, fmt.Errorf("airplane %s not found", airplaneID)
	}

	updated := false

	if req.Name != nil && *req.Name != airplane.Name {
		airplane.Name = *req.Name
		updated = true
	}

	if req.Rows != nil && *req.Rows != airplane.Rows {
		airplane.Rows = *req.Rows
		updated = true
	}

	if req.SeatsInRows != nil && *req.SeatsInRows != airplane.SeatsInRows {
		airplane.SeatsInRows = *req.SeatsInRows
		updated = true
	}

	if req.AirplaneType != nil {
		typeID, err := uuid.Parse(*req.AirplaneType)
		if err != nil {
			return nil, fmt.Errorf("invalid airplane type ID format %s: %w", *req.AirplaneType, err)
		}
		if typeID != airplane.AirplaneTypeID {
			airplaneType, err := s.repo.AirplaneType.FindByID(ctx, typeID)
			if err != nil {
				return nil, fmt.Errorf("check airplane type %s: %w", *req.AirplaneType, err)
			}
			if airplaneType == nil {
				return nil, fmt.Errorf("airplane type %s not found", *req.AirplaneType)
			}
			airplane.AirplaneTypeID = typeID
			updated = true
		}
	}

	if updated {
		airplane.UpdatedAt = time.Now()
		if err := s.repo.Airplane.Update(ctx, airplane); err != nil {
			s.log.Error("Failed to update airplane", zap.Error(err), zap.String("airplane_id", airplaneID))
			return nil, fmt.Errorf("update airplane %s: %w", airplaneID, err)
		}
	}

	return s.buildDetail(ctx, airplane)
}

func (s *airplaneService) DeleteAirplane(ctx context.Context, airplaneID string) error {
	id, err := uuid.Parse(airplaneID)
	if err != nil {
		return fmt.Errorf("invalid airplane ID format %s: %w", airplaneID, err)
	}

	airplane, err := s.repo.Airplane.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get airplane %s: %w", airplaneID, err)
	}
	if airplane == nil {
		return fmt.Errorf("airplane %s not found", airplaneID)
	}

	if err := s.repo.Airplane.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete airplane", zap.Error(err), zap.String("airplane_id", airplaneID))
		return fmt.Errorf("delete airplane %s: %w", airplaneID, err)
	}

	s.log.Info("Airplane deleted",
		zap.String("airplane_id", airplaneID),
		zap.String("name", airplane.Name),
	)

	return nil
}

func (s *airplaneService) buildDetail(ctx context.Context, airplane *entity.Airplane) (*response.AirplaneDetailResponse, error) {
	airplaneType, err := s.repo.AirplaneType.FindByID(ctx, airplane.AirplaneTypeID)
	if err != nil || airplaneType == nil {
		return nil, fmt.Errorf("airplane type %s not found", airplane.AirplaneTypeID.String())
	}

	detail := response.AirplaneToDetailResponse(airplane, airplaneType)
	return &detail, nil
}
