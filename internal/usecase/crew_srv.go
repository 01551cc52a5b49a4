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

type CrewService interface {
	GetCrews(ctx context.Context, req *request.PaginatedRequest, fullNameFilter *string) (*response.PaginatedResponse[response.CrewResponse], error)
	GetCrewByID(ctx context.Context, crewID string) (*response.CrewResponse, error)
	CreateCrew(ctx context.Context, req *request.CrewRequest) (*response.CrewResponse, error)
	UpdateCrew(ctx context.Context, crewID string, req *request.CrewUpdateRequest) (*response.CrewResponse, error)
	DeleteCrew(ctx context.Context, crewID string) error
}

type crewService struct {
	crewRepo repository.CrewRepository
	log      *zap.Logger
}

func NewCrewService(crewRepo repository.CrewRepository, log *zap.Logger) CrewService {
	return &crewService{
		crewRepo: crewRepo,
		log:      log.With(zap.String("service", "crew")),
	}
}

func (s *crewService) GetCrews(ctx context.Context, req *request.PaginatedRequest, fullNameFilter *string) (*response.PaginatedResponse[response.CrewResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	crews, err := s.crewRepo.FindAll(ctx, fullNameFilter, limit, offset)
	if err != nil {
		s.log.Error("Failed to get crews from repository",
			zap.Error(err),
			zap.Stringp("full_name_filter", fullNameFilter),
		)
		return nil, fmt.Errorf("get crews: %w", err)
	}

	total, err := s.crewRepo.CountAll(ctx, fullNameFilter)
	if err != nil {
		s.log.Error("Failed to count crews", zap.Error(err))
		return nil, fmt.Errorf("count crews: %w", err)
	}

	crewResponses := make([]response.CrewResponse, len(crews))
	for i, crew := range crews {
		crewResponses[i] = response.CrewToResponse(crew)
	}

	return response.NewPaginatedResponse(crewResponses, req.Page, limit, total), nil
}

func (s *crewService) GetCrewByID(ctx context.Context, crewID string) (*response.CrewResponse, error) {
	id, err := uuid.Parse(crewID)
	if err != nil {
		return nil, fmt.Errorf("invalid crew ID format %s: %w", crewID, err)
	}

	crew, err := s.crewRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get crew by ID", zap.Error(err), zap.String("crew_id", crewID))
		return nil, fmt.Errorf("get crew %s: %w", crewID, err)
	}
	if crew == nil {
		return nil, fmt.Errorf("crew %s not found", crewID)
	}

	crewResp := response.CrewToResponse(crew)
	return &crewResp, nil
}

func (s *crewService) CreateCrew(ctx context.Context, req *request.CrewRequest) (*response.CrewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create crew validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	crew := &entity.Crew{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.crewRepo.Create(ctx, crew); err != nil {
		s.log.Error("Failed to create crew",
			zap.Error(err),
			zap.String("full_name", crew.FullName()),
		)
		return nil, fmt.Errorf("create crew: %w", err)
	}

	s.log.Info("Crew created",
		zap.String("crew_id", crew.ID.String()),
		zap.String("full_name", crew.FullName()),
	)

	crewResp := response.CrewToResponse(crew)
	return &crewResp, nil
}

func (s *crewService) UpdateCrew(ctx context.Context, crewID string, req *request.CrewUpdateRequest) (*response.CrewResponse, error) {
	id, err := uuid.Parse(crewID)
	if err != nil {
		return nil, fmt.Errorf("invalid crew ID format %s: %w", crewID, err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	crew, err := s.crewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get crew %s: %w", crewID, err)
	}
	if crew == nil {
		return nil, fmt.Errorf("crew %s not found", crewID)
	}

	updated := false

	if req.FirstName != nil && *req.FirstName != crew.FirstName {
		crew.FirstName = *req.FirstName
		updated = true
	}

	if req.LastName != nil && *req.LastName != crew.LastName {
		crew.LastName = *req.LastName
		updated = true
	}

	if updated {
		crew.UpdatedAt = time.Now()
		if err := s.crewRepo.Update(ctx, crew); err != nil {
			s.log.Error("Failed to update crew", zap.Error(err), zap.String("crew_id", crewID))
			return nil, fmt.Errorf("update crew %s: %w", crewID, err)
		}
	}

	crewResp := response.CrewToResponse(crew)
	return &crewResp, nil
}

func (s *crewService) DeleteCrew(ctx context.Context, crewID string) error {
	id, err := uuid.Parse(crewID)
	if err != nil {
		return fmt.Errorf("invalid crew ID format %s: %w", crewID, err)
	}

	crew, err := s.crewRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get crew %s: %w", crewID, err)
	}
	if crew == nil {
		return fmt.Errorf("crew %s not found", crewID)
	}

	if err := s.crewRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete crew", zap.Error(err), zap.String("crew_id", crewID))
		return fmt.Errorf("delete crew %s: %w", crewID, err)
	}

	s.log.Info("Crew deleted",
		zap.String("crew_id", crewID),
		zap.String("full_name", crew.FullName()),
	)

	return nil
}
