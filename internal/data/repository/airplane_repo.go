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

type AirplaneRepository interface {
	Create(ctx context.Context, airplane *entity.Airplane) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Airplane, error)
	FindAll(ctx context.Context, name, typeName *string, limit, offset int) ([]*entity.AirplaneListItem, error)
	CountAll(ctx context.Context, name, typeName *string) (int64, error)
	Update(ctx context.Context, airplane *entity.Airplane) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type airplaneRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAirplaneRepository(db database.PgxIface, log *zap.Logger) AirplaneRepository {
	return &airplaneRepository{
		db:  db,
		log: log.With(zap.String("repository", "airplane")),
	}
}

func (r *airplaneRepository) Create(ctx context.Context, airplane *entity.Airplane) error {
	query := `
		INSERT INTO airplanes (id, name, rows, seats_in_rows, airplane_type_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		airplane.ID,
		airplane.Name,
		airplane.Rows,
		airplane.SeatsInRows,
		airplane.AirplaneTypeID,
		airplane.CreatedAt,
		airplane.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create airplane",
			zap.Error(err),
			zap.String("name", airplane.Name),
		)
		return fmt.Errorf("create airplane %s: %w", airplane.Name, err)
	}

	return nil
}

func (r *airplaneRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Airplane, error) {
	query := `
		SELECT id, name, rows, seats_in_rows, airplane_type_id, created_at, updated_at
		FROM airplanes
		WHERE id = $1
	`

	var airplane entity.Airplane
	err := r.db.QueryRow(ctx, query, id).Scan(
		&airplane.ID,
		&airplane.Name,
		&airplane.Rows,
		&airplane.SeatsInRows,
		&airplane.AirplaneTypeID,
		&airplane.CreatedAt,
		&airplane.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find airplane by ID",
			zap.Error(err),
			zap.String("airplane_id", id.String()),
		)
		return nil, fmt.Errorf("find airplane by ID %s: %w", id.String(), err)
	}

	return &airplane, nil
}

func (r *airplaneRepository) FindAll(ctx context.Context, name, typeName *string, limit, offset int) ([]*entity.AirplaneListItem, error) {
	query := `
		SELECT a.id, a.name, a.rows, a.seats_in_rows, a.airplane_type_id, a.created_at, a.updated_at,
		       at.name
		FROM airplanes a
		JOIN airplane_types at ON at.id = a.airplane_type_id
		WHERE ($1::text IS NULL OR a.name ILIKE '%' || $1 || '%')
		  AND ($2::text IS NULL OR at.name ILIKE '%' || $2 || '%')
		ORDER BY a.name
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, name, typeName, limit, offset)
	if err != nil {
		r.log.Error("Failed to find airplanes",
			zap.Error(err),
			zap.Stringp("name", name),
			zap.Stringp("airplane_type", typeName),
		)
		return nil, fmt.Errorf("find airplanes: %w", err)
	}
	defer rows.Close()

	var airplanes []*entity.AirplaneListItem
	for rows.Next() {
		var item entity.AirplaneListItem
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Rows,
			&item.SeatsInRows,
			&item.AirplaneTypeID,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.AirplaneTypeName,
		)
		if err != nil {
			r.log.Error("Failed to scan airplane row", zap.Error(err))
			return nil, fmt.Errorf("scan airplane row: %w", err)
		}
		airplanes = append(airplanes, &item)
	}

	return airplanes, rows.Err()
}

func (r *airplaneRepository) CountAll(ctx context.Context, name, typeName *string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM airplanes a
		JOIN airplane_types at ON at.id = a.airplane_type_id
		WHERE ($1::text IS NULL OR a.name ILIKE '%' || $1 || '%')
		  AND ($2::text IS NULL OR at.name ILIKE '%' || $2 || '%')
	`

	var count int64
	err := r.db.QueryRow(ctx, query, name, typeName).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count airplanes", zap.Error(err))
		return 0, fmt.Errorf("count airplanes: %w", err)
	}

	return count, nil
}

func (r *airplaneRepository) Update(ctx context.Context, airplane *entity.Airplane) error {
	query := `
		UPDATE airplanes
		SET name = $2, rows = $3, seats_in_rows = $4, airplane_type_id = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		airplane.ID,
		airplane.Name,
		airplane.Rows,
		airplane.SeatsInRows,
		airplane.AirplaneTypeID,
		airplane.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update airplane",
			zap.Error(err),
			zap.String("airplane_id", airplane.ID.String()),
		)
		return fmt.Errorf("update airplane %s: %w", airplane.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("airplane %s: %w", airplane.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *airplaneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM airplanes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete airplane",
			zap.Error(err),
			zap.String("airplane_id", id.String()),
		)
		return fmt.Errorf("delete airplane %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("airplane %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
