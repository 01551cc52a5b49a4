package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Zonda001/AirportAPI/internal/data/entity"
	"github.com/Zonda001/AirportAPI/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// FlightFilter narrows flight listings. City filters are substring
// matches on the closest big city of the route endpoints; timestamps
// are exact-equality matches.
type FlightFilter struct {
	FromCity      *string
	ToCity        *string
	DepartureTime *time.Time
	ArrivalTime   *time.Time
}

type FlightRepository interface {
	Create(ctx context.Context, flight *entity.Flight, crewIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error)
	FindAll(ctx context.Context, filter FlightFilter, limit, offset int) ([]*entity.FlightListItem, error)
	CountAll(ctx context.Context, filter FlightFilter) (int64, error)
	FindCrew(ctx context.Context, flightID uuid.UUID) ([]*entity.Crew, error)
	Update(ctx context.Context, flight *entity.Flight, crewIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type flightRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFlightRepository(db database.PgxIface, log *zap.Logger) FlightRepository {
	return &flightRepository{
		db:  db,
		log: log.With(zap.String("repository", "flight")),
	}
}

// Create inserts the flight and its crew assignments in one transaction
// so a flight is never visible without its crew.
func (r *flightRepository) Create(ctx context.Context, flight *entity.Flight, crewIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin flight transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO flights (id, route_id, airplane_id, departure_time, arrival_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = tx.Exec(ctx, query,
		flight.ID,
		flight.RouteID,
		flight.AirplaneID,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.CreatedAt,
		flight.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create flight",
			zap.Error(err),
			zap.String("route_id", flight.RouteID.String()),
		)
		return fmt.Errorf("create flight: %w", err)
	}

	if err := insertFlightCrew(ctx, tx, flight.ID, crewIDs); err != nil {
		r.log.Error("Failed to assign flight crew",
			zap.Error(err),
			zap.String("flight_id", flight.ID.String()),
		)
		return fmt.Errorf("assign flight crew: %w", err)
	}

	return tx.Commit(ctx)
}

func insertFlightCrew(ctx context.Context, tx pgx.Tx, flightID uuid.UUID, crewIDs []uuid.UUID) error {
	for _, crewID := range crewIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO flight_crew (flight_id, crew_id) VALUES ($1, $2)`,
			flightID, crewID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *flightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error) {
	query := `
		SELECT id, route_id, airplane_id, departure_time, arrival_time, created_at, updated_at
		FROM flights
		WHERE id = $1
	`

	var flight entity.Flight
	err := r.db.QueryRow(ctx, query, id).Scan(
		&flight.ID,
		&flight.RouteID,
		&flight.AirplaneID,
		&flight.DepartureTime,
		&flight.ArrivalTime,
		&flight.CreatedAt,
		&flight.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find flight by ID",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return nil, fmt.Errorf("find flight by ID %s: %w", id.String(), err)
	}

	return &flight, nil
}

// FindAll lists upcoming flights only. Seat availability is computed by
// the query from current committed tickets, never persisted; a figure
// returned here may be stale relative to a booking committing right after.
func (r *flightRepository) FindAll(ctx context.Context, filter FlightFilter, limit, offset int) ([]*entity.FlightListItem, error) {
	query := `
		SELECT f.id, f.route_id, f.airplane_id, f.departure_time, f.arrival_time, f.created_at, f.updated_at,
		       src.name, dst.name, a.name,
		       a.rows * a.seats_in_rows - COUNT(t.id) AS available_tickets
		FROM flights f
		JOIN routes rt ON rt.id = f.route_id
		JOIN airports src ON src.id = rt.source_id
		JOIN airports dst ON dst.id = rt.destination_id
		JOIN airplanes a ON a.id = f.airplane_id
		LEFT JOIN tickets t ON t.flight_id = f.id
		WHERE f.departure_time > NOW()
		  AND ($1::text IS NULL OR src.closest_big_city ILIKE '%' || $1 || '%')
		  AND ($2::text IS NULL OR dst.closest_big_city ILIKE '%' || $2 || '%')
		  AND ($3::timestamptz IS NULL OR f.departure_time = $3)
		  AND ($4::timestamptz IS NULL OR f.arrival_time = $4)
		GROUP BY f.id, src.name, dst.name, a.name, a.rows, a.seats_in_rows
		ORDER BY f.departure_time
		LIMIT $5 OFFSET $6
	`

	rows, err := r.db.Query(ctx, query,
		filter.FromCity,
		filter.ToCity,
		filter.DepartureTime,
		filter.ArrivalTime,
		limit,
		offset,
	)
	if err != nil {
		r.log.Error("Failed to find flights",
			zap.Error(err),
			zap.Stringp("from", filter.FromCity),
			zap.Stringp("to", filter.ToCity),
		)
		return nil, fmt.Errorf("find flights: %w", err)
	}
	defer rows.Close()

	var flights []*entity.FlightListItem
	for rows.Next() {
		var item entity.FlightListItem
		err := rows.Scan(
			&item.ID,
			&item.RouteID,
			&item.AirplaneID,
			&item.DepartureTime,
			&item.ArrivalTime,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.SourceName,
			&item.DestinationName,
			&item.AirplaneName,
			&item.AvailableTickets,
		)
		if err != nil {
			r.log.Error("Failed to scan flight row", zap.Error(err))
			return nil, fmt.Errorf("scan flight row: %w", err)
		}
		flights = append(flights, &item)
	}

	return flights, rows.Err()
}

func (r *flightRepository) CountAll(ctx context.Context, filter FlightFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM flights f
		JOIN routes rt ON rt.id = f.route_id
		JOIN airports src ON src.id = rt.source_id
		JOIN airports dst ON dst.id = rt.destination_id
		WHERE f.departure_time > NOW()
		  AND ($1::text IS NULL OR src.closest_big_city ILIKE '%' || $1 || '%')
		  AND ($2::text IS NULL OR dst.closest_big_city ILIKE '%' || $2 || '%')
		  AND ($3::timestamptz IS NULL OR f.departure_time = $3)
		  AND ($4::timestamptz IS NULL OR f.arrival_time = $4)
	`

	var count int64
	err := r.db.QueryRow(ctx, query,
		filter.FromCity,
		filter.ToCity,
		filter.DepartureTime,
		filter.ArrivalTime,
	).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count flights", zap.Error(err))
		return 0, fmt.Errorf("count flights: %w", err)
	}

	return count, nil
}

func (r *flightRepository) FindCrew(ctx context.Context, flightID uuid.UUID) ([]*entity.Crew, error) {
	query := `
		SELECT c.id, c.first_name, c.last_name, c.created_at, c.updated_at
		FROM crews c
		JOIN flight_crew fc ON fc.crew_id = c.id
		WHERE fc.flight_id = $1
		ORDER BY c.last_name, c.first_name
	`

	rows, err := r.db.Query(ctx, query, flightID)
	if err != nil {
		r.log.Error("Failed to find flight crew",
			zap.Error(err),
			zap.String("flight_id", flightID.String()),
		)
		return nil, fmt.Errorf("find flight crew %s: %w", flightID.String(), err)
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

// Update replaces the flight fields and its crew set atomically.
func (r *flightRepository) Update(ctx context.Context, flight *entity.Flight, crewIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin flight transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE flights
		SET route_id = $2, airplane_id = $3, departure_time = $4, arrival_time = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query,
		flight.ID,
		flight.RouteID,
		flight.AirplaneID,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update flight",
			zap.Error(err),
			zap.String("flight_id", flight.ID.String()),
		)
		return fmt.Errorf("update flight %s: %w", flight.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("flight %s: %w", flight.ID.String(), ErrNotFound)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM flight_crew WHERE flight_id = $1`, flight.ID); err != nil {
		return fmt.Errorf("clear flight crew %s: %w", flight.ID.String(), err)
	}

	if err := insertFlightCrew(ctx, tx, flight.ID, crewIDs); err != nil {
		return fmt.Errorf("assign flight crew: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *flightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM flights WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete flight",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return fmt.Errorf("delete flight %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("flight %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
