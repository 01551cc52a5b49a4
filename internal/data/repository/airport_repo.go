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

type AirportRepository interface {
	Create(ctx context.Context, airport *entity.Airport) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Airport, error)
	FindAll(ctx context.Context, name *string, limit, offset int) ([]*entity.Airport, error)
	CountAll(ctx context.Context, name *string) (int64, error)
	Update(ctx context.Context, airport *entity.Airport) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type airportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAirportRepository(db database.PgxIface, log *zap.Logger) AirportRepository {
	return &airportRepository{
		db:  db,
		log: log.With(zap.String("repository", "airport")),
	}
}

func (r *airportRepository) Create(ctx context.Context, airport *entity.Airport) error {
	query := `
		INSERT INTO airports (id, name, closest_big_city, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		airport.ID,
		airport.Name,
		airport.ClosestBigCity,
		airport.CreatedAt,
		airport.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("airport %s (%s): %w", airport.Name, airport.ClosestBigCity, ErrDuplicate)
		}
		r.log.Error("Failed to create airport",
			zap.Error(err),
			zap.String("name", airport.Name),
		)
		return fmt.Errorf("create airport %s: %w", airport.Name, err)
	}

	return nil
}

func (r *airportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Airport, error) {
	query := `
		SELECT id, name, closest_big_city, created_at, updated_at
		FROM airports
		WHERE id = $1
	`

	var airport entity.Airport
	err := r.db.QueryRow(ctx, query, id).Scan(
		&airport.ID,
		&airport.Name,
		&airport.ClosestBigCity,
		&airport.CreatedAt,
		&airport.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find airport by ID",
			zap.Error(err),
			zap.String("airport_id", id.String()),
		)
		return nil, fmt.Errorf("find airport by ID %s: %w", id.String(), err)
	}

	return &airport, nil
}

func (r *airportRepository) FindAll(ctx context.Context, name *string, limit, offset int) ([]*entity.Airport, error) {
	query := `
		SELECT id, name, closest_big_city, created_at, updated_at
		FROM airports
		WHERE ($1::text IS NULL OR name ILIKE '%' || $1 || '%')
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, name, limit, offset)
	if err != nil {
		r.log.Error("Failed to find airports",
			zap.Error(err),
			zap.Stringp("name", name),
		)
		return nil, fmt.Errorf("find airports: %w", err)
	}
	defer rows.Close()

	var airports []*entity.Airport
	for rows.Next() {
		var airport entity.Airport
		err := rows.Scan(
			&airport.ID,
			&airport.Name,
			&airport.ClosestBigCity,
			&airport.CreatedAt,
			&airport.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan airport row", zap.Error(err))
			return nil, fmt.Errorf("scan airport row: %w", err)
		}
		airports = append(airports, &airport)
	}

	return airports, rows.Err()
}

func (r *airportRepository) CountAll(ctx context.Context, name *string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM airports
		WHERE ($1::text IS NULL OR name ILIKE '%' || $1 || '%')
	`

	var count int64
	err := r.db.QueryRow(ctx, query, name).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count airports", zap.Error(err))
		return 0, fmt.Errorf("count airports: %w", err)
	}

	return count, nil
}

func (r *airportRepository) Update(ctx context.Context, airport *entity.Airport) error {
	query := `
		UPDATE airports
		SET name = $2, closest_big_city = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		airport.ID,
		airport.Name,
		airport.ClosestBigCity,
		airport.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("airport %s (%s): %w", airport.Name, airport.ClosestBigCity, ErrDuplicate)
		}
		r.log.Error("Failed to update airport",
			zap.Error(err),
			zap.String("airport_id", airport.ID.String()),
		)
		return fmt.Errorf("update airport %s: %w", airport.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("airport %s: %w", airport.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *airportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM airports WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete airport",
			zap.Error(err),
			zap.String("airport_id", id.String()),
		)
		return fmt.Errorf("delete airport %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("airport %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
