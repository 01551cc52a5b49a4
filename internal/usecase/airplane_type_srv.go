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

type AirplaneTypeService interface {
	GetAirplaneTypes(ctx context.Context, req *request.PaginatedRequest, nameFilter *string) (*response.PaginatedResponse[response.AirplaneTypeResponse], error)
	GetAirplaneTypeByID(ctx context.Context, typeID string) (*response.AirplaneTypeResponse, error)
	CreateAirplaneType(ctx context.Context, req *request.AirplaneTypeRequest) (*response.AirplaneTypeResponse, error)
	UpdateAirplaneType(ctx context.Context, typeID string, req *request.AirplaneTypeUpdateRequest) (*response.AirplaneTypeResponse, error)
	DeleteAirplaneType(ctx context.Context, typeID string) error
}

type airplaneTypeService struct {
	typeRepo repository.AirplaneTypeRepository
	log      *zap.Logger
}

func NewAirplaneTypeService(typeRepo repository.AirplaneTypeRepository, log *zap.Logger) AirplaneTypeService {
	return &airplaneTypeService{
		typeRepo: typeRepo,
		log:      log.With(zap.String("service", "airplane_type")),
	}
}

func (s *airplaneTypeService) GetAirplaneTypes(ctx context.Context, req *request.PaginatedRequest, nameFilter *string) (*response.PaginatedResponse[response.AirplaneTypeResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	types, err := s.typeRepo.FindAll(ctx, nameFilter, limit, offset)
	if err != nil {
		s.log.Error("Failed to get airplane types from repository",
			zap.Error(err),
			zap.Stringp("name_filter", nameFilter),
		)
		return nil, fmt.Errorf("get airplane types: %w", err)
	}

	total, err := s.typeRepo.CountAll(ctx, nameFilter)
	if err != nil {
		s.log.Error("Failed to count airplane types", zap.Error(err))
		return nil, fmt.Errorf("count airplane types: %w", err)
	}

	typeResponses := make([]response.AirplaneTypeResponse, len(types))
	for i, airplaneType := range types {
		typeResponses[i] = response.AirplaneTypeToResponse(airplaneType)
	}

	return response.NewPaginatedResponse(typeResponses, req.Page, limit, total), nil
}

func (s *airplaneTypeService) GetAirplaneTypeByID(ctx context.Context, typeID string) (*response.AirplaneTypeResponse, error) {
	id, err := uuid.Parse(typeID)
	if err != nil {
		return nil, fmt.Errorf("invalid airplane type ID format %s: %w", typeID, err)
	}

	airplaneType, err := s.typeRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get airplane type by ID", zap.Error(err), zap.String("type_id", typeID))
		return nil, fmt.Errorf("get airplane type %s: %w", typeID, err)
	}
	if airplaneType == nil {
		return nil, fmt.Errorf("airplane type %s not found", typeID)
	}

	typeResp := response.AirplaneTypeToResponse(airplaneType)
	return &typeResp, nil
}

func (s *airplaneTypeService) CreateAirplaneType(ctx context.Context, req *request.AirplaneTypeRequest) (*response.AirplaneTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create airplane type validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	airplaneType := &entity.AirplaneType{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: req.Name,
	}

	if err := s.typeRepo.Create(ctx, airplaneType); err != nil {
		s.log.Error("Failed to create airplane type",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create airplane type: %w", err)
	}

	s.log.Info("Airplane type created",
		zap.String("type_id", airplaneType.ID.String()),
		zap.String("name", airplaneType.Name),
	)

	typeResp := response.AirplaneTypeToResponse(airplaneType)
	return &typeResp, nil
}

func (s *airplaneTypeService) UpdateAirplaneType(ctx context.Context, typeID string, req *request.AirplaneTypeUpdateRequest) (*response.AirplaneTypeResponse, error) {
	id, err := uuid.Parse(typeID)
	if err != nil {
		return nil, fmt.Errorf("invalid airplane type ID format %s: %w", typeID, err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	airplaneType, err := s.typeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get airplane type %s: %w", typeID, err)
	}
	if airplaneType == nil {
		return nil, fmt.Errorf("airplane type %s not found", typeID)
	}

	if req.Name != nil && *req.Name != airplaneType.Name {
		airplaneType.Name = *req.Name
		airplaneType.UpdatedAt = time.Now()
		if err := s.typeRepo.Update(ctx, airplaneType); err != nil {
			s.log.Error("Failed to update airplane type", zap.Error(err), zap.String("type_id", typeID))
			return nil, fmt.Errorf("update airplane type %s: %w", typeID, err)
		}
	}

	typeResp := response.AirplaneTypeToResponse(airplaneType)
	return &typeResp, nil
}

func (s *airplaneTypeService) DeleteAirplaneType(ctx context.Context, typeID string) error {
	id, err := uuid.Parse(typeID)
	if err != nil {
		return fmt.Errorf("invalid airplane type ID format %s: %w", typeID, err)
	}

	airplaneType, err := s.typeRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get airplane type %s: %w", typeID, err)
	}
	if airplaneType == nil {
		return fmt.Errorf("airplane type %s not found", typeID)
	}

	if err := s.typeRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete airplane type", zap.Error(err), zap.String("type_id", typeID))
		return fmt.Errorf("delete airplane type %s: %w", typeID, err)
	}

	s.log.Info("Airplane type deleted",
		zap.String("type_id", typeID),
		zap.String("name", airplaneType.Name),
	)

	return nil
}
