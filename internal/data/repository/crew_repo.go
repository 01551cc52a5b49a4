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

type CrewRepository interface {
	Create(ctx context.Context, crew *entity.Crew) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Crew, error)
	FindAll(ctx context.Context, fullName *string, limit, offset int) ([]*entity.Crew, error)
	CountAll(ctx context.Context, fullName *string) (int64, error)
	Update(ctx context.Context, crew *entity.Crew) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type crewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCrewRepository(db database.PgxIface, log *zap.Logger) CrewRepository {
	return &crewRepository{
		db:  db,
		log: log.With(zap.String("repository", "crew")),
	}
}

func (r *crewRepository) Create(ctx context.Context, crew *entity.Crew) error {
	query := `
		INSERT INTO crews (id, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		crew.ID,
		crew.FirstName,
		crew.LastName,
		crew.CreatedAt,
		crew.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("crew member %s: %w", crew.FullName(), ErrDuplicate)
		}
		r.log.Error("Failed to create crew member",
			zap.Error(err),
			zap.String("full_name", crew.FullName()),
		)
		return fmt.Errorf("create crew member %s: %w", crew.FullName(), err)
	}

	return nil
}

func (r *crewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Crew, error) {
	query := `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM crews
		WHERE id = $1
	`

	var crew entity.Crew
	err := r.db.QueryRow(ctx, query, id).Scan(
		&crew.ID,
		&crew.FirstName,
		&crew.LastName,
		&crew.CreatedAt,
		&crew.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find crew member by ID",
			zap.Error(err),
			zap.String("crew_id", id.String()),
		)
		return nil, fmt.Errorf("find crew member by ID %s: %w", id.String(), err)
	}

	return &crew, nil
}

// FindAll matches fullName case-insensitively against the concatenated
// "first last" name when the filter is present.
func (r *crewRepository) FindAll(ctx context.Context, fullName *string, limit, offset int) ([]*entity.Crew, error) {
	query := `
		SELECT id, first_name, last_name, created_at, updated_at
		FROM crews
		WHERE ($1::text IS NULL OR first_name || ' ' || last_name ILIKE '%' || $1 || '%')
		ORDER BY last_name, first_name
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, fullName, limit, offset)
	if err != nil {
		r.log.Error("Failed to find crew members",
			zap.Error(err),
			zap.Stringp("full_name", fullName),
		)
		return nil, fmt.Errorf("find crew members: %w", err)
	}
	defer rows.Close()

	var crews []*entity.Crew
	for rows.Next() {
		var crew entity.Crew
		err := rows.Scan(
			&crew.ID,
			&crew.FirstName,
			&crew.LastName,
			&crew.CreatedAt,
			&crew.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan crew row", zap.Error(err))
			return nil, fmt.Errorf("scan crew row: %w", err)
		}
		crews = append(crews, &crew)
	}

	return crews, rows.Err()
}

func (r *crewRepository) CountAll(ctx context.Context, fullName *string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM crews
		WHERE ($1::text IS NULL OR first_name || ' ' || last_name ILIKE '%' || $1 || '%')
	`

	var count int64
	err := r.db.QueryRow(ctx, query, fullName).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count crew members", zap.Error(err))
		return 0, fmt.Errorf("count crew members: %w", err)
	}

	return count, nil
}

func (r *crewRepository) Update(ctx context.Context, crew *entity.Crew) error {
	query := `
		UPDATE crews
		SET first_name = $2, last_name = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		crew.ID,
		crew.FirstName,
		crew.LastName,
		crew.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("crew member %s: %w", crew.FullName(), ErrDuplicate)
		}
		r.log.Error("Failed to update crew member",
			zap.Error(err),
			zap.String("crew_id", crew.ID.String()),
		)
		return fmt.Errorf("update crew member %s: %w", crew.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("crew member %s: %w", crew.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *crewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM crews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete crew member",
			zap.Error(err),
			zap.String("crew_id", id.String()),
		)
		return fmt.Errorf("delete crew member %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("crew member %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
