package repository

import (
	"context"
	"fmt"

	"github.com/Zonda001/AirportAPI/internal/data/entity"
	"github.com/Zonda001/AirportAPI/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AirplaneTypeRepository interface {
	Create(ctx context.Context, airplaneType *entity.AirplaneType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AirplaneType, error)
	FindAll(ctx context.Context, name *string, limit, offset int) ([]*entity.AirplaneType, error)
	CountAll(ctx context.Context, name *string) (int64, error)
	Update(ctx context.Context, airplaneType *entity.AirplaneType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type airplaneTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAirplaneTypeRepository(db database.PgxIface, log *zap.Logger) AirplaneTypeRepository {
	return &airplaneTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "airplane_type")),
	}
}

func (r *airplaneTypeRepository) Create(ctx context.Context, airplaneType *entity.AirplaneType) error {
	query := `
		INSERT INTO airplane_types (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		airplaneType.ID,
		airplaneType.Name,
		airplaneType.CreatedAt,
		airplaneType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create airplane type",
			zap.Error(err),
			zap.String("name", airplaneType.Name),
		)
		return fmt.Errorf("create airplane type %s: %w", airplaneType.Name, err)
	}

	return nil
}

func (r *airplaneTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AirplaneType, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM airplane_types
		WHERE id = $1
	`

	var airplaneType entity.AirplaneType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&airplaneType.ID,
		&airplaneType.Name,
		&airplaneType.CreatedAt,
		&airplaneType.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find airplane type by ID",
			zap.Error(err),
			zap.String("airplane_type_id", id.String()),
		)
		return nil, fmt.Errorf("find airplane type by ID %s: %w", id.String(), err)
	}

	return &airplaneType, nil
}

func (r *airplaneTypeRepository) FindAll(ctx context.Context, name *string, limit, offset int) ([]*entity.AirplaneType, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM airplane_types
		WHERE ($1::text IS NULL OR name ILIKE '%' || $1 || '%')
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, name, limit, offset)
	if err != nil {
		r.log.Error("Failed to find airplane types",
			zap.Error(err),
			zap.Stringp("name", name),
		)
		return nil, fmt.Errorf("find airplane types: %w", err)
	}
	defer rows.Close()

	var airplaneTypes []*entity.AirplaneType
	for rows.Next() {
		var airplaneType entity.AirplaneType
		err := rows.Scan(
			&airplaneType.ID,
			&airplaneType.Name,
			&airplaneType.CreatedAt,
			&airplaneType.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan airplane type row", zap.Error(err))
			return nil, fmt.Errorf("scan airplane type row: %w", err)
		}
		airplaneTypes = append(airplaneTypes, &airplaneType)
	}

	return airplaneTypes, rows.Err()
}

func (r *airplaneTypeRepository) CountAll(ctx context.Context, name *string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM airplane_types
		WHERE ($1::text IS NULL OR name ILIKE '%' || $1 || '%')
	`

	var count int64
	err := r.db.QueryRow(ctx, query, name).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count airplane types", zap.Error(err))
		return 0, fmt.Errorf("count airplane types: %w", err)
	}

	return count, nil
}

func (r *airplaneTypeRepository) Update(ctx context.Context, airplaneType *entity.AirplaneType) error {
	query := `
		UPDATE airplane_types
		SET name = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		airplaneType.ID,
		airplaneType.Name,
		airplaneType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update airplane type",
			zap.Error(err),
			zap.String("airplane_type_id", airplaneType.ID.String()),
		)
		return fmt.Errorf("update airplane type %s: %w", airplaneType.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("airplane type %s: %w", airplaneType.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *airplaneTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM airplane_types WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete airplane type",
			zap.Error(err),
			zap.String("airplane_type_id", id.String()),
		)
		return fmt.Errorf("delete airplane type %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("airplane type %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
