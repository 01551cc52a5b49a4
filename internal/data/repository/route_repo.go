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

type RouteRepository interface {
	Create(ctx context.Context, route *entity.Route) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error)
	FindAll(ctx context.Context, fromName, toName *string, limit, offset int) ([]*entity.RouteListItem, error)
	CountAll(ctx context.Context, fromName, toName *string) (int64, error)
	Update(ctx context.Context, route *entity.Route) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type routeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRouteRepository(db database.PgxIface, log *zap.Logger) RouteRepository {
	return &routeRepository{
		db:  db,
		log: log.With(zap.String("repository", "route")),
	}
}

func (r *routeRepository) Create(ctx context.Context, route *entity.Route) error {
	query := `
		INSERT INTO routes (id, source_id, destination_id, distance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		route.ID,
		route.SourceID,
		route.DestinationID,
		route.Distance,
		route.CreatedAt,
		route.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create route",
			zap.Error(err),
			zap.String("source_id", route.SourceID.String()),
			zap.String("destination_id", route.DestinationID.String()),
		)
		return fmt.Errorf("create route: %w", err)
	}

	return nil
}

func (r *routeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	query := `
		SELECT id, source_id, destination_id, distance, created_at, updated_at
		FROM routes
		WHERE id = $1
	`

	var route entity.Route
	err := r.db.QueryRow(ctx, query, id).Scan(
		&route.ID,
		&route.SourceID,
		&route.DestinationID,
		&route.Distance,
		&route.CreatedAt,
		&route.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find route by ID",
			zap.Error(err),
			zap.String("route_id", id.String()),
		)
		return nil, fmt.Errorf("find route by ID %s: %w", id.String(), err)
	}

	return &route, nil
}

// FindAll joins the airport names in so list responses need no extra
// lookups. Both name filters are applied together or not at all; the
// service enforces that pairing.
func (r *routeRepository) FindAll(ctx context.Context, fromName, toName *string, limit, offset int) ([]*entity.RouteListItem, error) {
	query := `
		SELECT rt.id, rt.source_id, rt.destination_id, rt.distance, rt.created_at, rt.updated_at,
		       src.name, dst.name
		FROM routes rt
		JOIN airports src ON src.id = rt.source_id
		JOIN airports dst ON dst.id = rt.destination_id
		WHERE ($1::text IS NULL OR src.name ILIKE '%' || $1 || '%')
		  AND ($2::text IS NULL OR dst.name ILIKE '%' || $2 || '%')
		ORDER BY src.name, dst.name
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, fromName, toName, limit, offset)
	if err != nil {
		r.log.Error("Failed to find routes",
			zap.Error(err),
			zap.Stringp("from", fromName),
			zap.Stringp("to", toName),
		)
		return nil, fmt.Errorf("find routes: %w", err)
	}
	defer rows.Close()

	var routes []*entity.RouteListItem
	for rows.Next() {
		var item entity.RouteListItem
		err := rows.Scan(
			&item.ID,
			&item.SourceID,
			&item.DestinationID,
			&item.Distance,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.SourceName,
			&item.DestinationName,
		)
		if err != nil {
			r.log.Error("Failed to scan route row", zap.Error(err))
			return nil, fmt.Errorf("scan route row: %w", err)
		}
		routes = append(routes, &item)
	}

	return routes, rows.Err()
}

func (r *routeRepository) CountAll(ctx context.Context, fromName, toName *string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM routes rt
		JOIN airports src ON src.id = rt.source_id
		JOIN airports dst ON dst.id = rt.destination_id
		WHERE ($1::text IS NULL OR src.name ILIKE '%' || $1 || '%')
		  AND ($2::text IS NULL OR dst.name ILIKE '%' || $2 || '%')
	`

	var count int64
	err := r.db.QueryRow(ctx, query, fromName, toName).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count routes", zap.Error(err))
		return 0, fmt.Errorf("count routes: %w", err)
	}

	return count, nil
}

func (r *routeRepository) Update(ctx context.Context, route *entity.Route) error {
	query := `
		UPDATE routes
		SET source_id = $2, destination_id = $3, distance = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		route.ID,
		route.SourceID,
		route.DestinationID,
		route.Distance,
		route.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update route",
			zap.Error(err),
			zap.String("route_id", route.ID.String()),
		)
		return fmt.Errorf("update route %s: %w", route.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("route %s: %w", route.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *routeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM routes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete route",
			zap.Error(err),
			zap.String("route_id", id.String()),
		)
		return fmt.Errorf("delete route %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("route %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
