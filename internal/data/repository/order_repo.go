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

type OrderRepository interface {
	CreateWithTickets(ctx context.Context, order *entity.Order, tickets []*entity.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindTicketsByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.TicketListItem, error)
	FindTakenSeats(ctx context.Context, flightID uuid.UUID) ([]entity.TakenSeat, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

// CreateWithTickets books all tickets in one transaction: either the
// order and every ticket are committed together, or nothing is. A seat
// already held by a committed ticket surfaces as ErrSeatTaken and
// aborts the whole order.
func (r *orderRepository) CreateWithTickets(ctx context.Context, order *entity.Order, tickets []*entity.Ticket) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO orders (id, user_id, created_at) VALUES ($1, $2, $3)`,
		order.ID, order.UserID, order.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("create order: %w", err)
	}

	for _, ticket := range tickets {
		_, err = tx.Exec(ctx,
			`INSERT INTO tickets (id, "row", seat, flight_id, order_id, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			ticket.ID, ticket.Row, ticket.Seat, ticket.FlightID, ticket.OrderID, ticket.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				r.log.Warn("Seat already taken",
					zap.String("flight_id", ticket.FlightID.String()),
					zap.Int("row", ticket.Row),
					zap.Int("seat", ticket.Seat),
				)
				return fmt.Errorf("flight %s row %d seat %d: %w",
					ticket.FlightID.String(), ticket.Row, ticket.Seat, ErrSeatTaken)
			}
			r.log.Error("Failed to create ticket",
				zap.Error(err),
				zap.String("flight_id", ticket.FlightID.String()),
			)
			return fmt.Errorf("create ticket: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `SELECT id, user_id, created_at FROM orders WHERE id = $1`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(&order.ID, &order.UserID, &order.CreatedAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return &order, nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find orders",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find orders for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.CreatedAt); err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	return orders, rows.Err()
}

func (r *orderRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count orders",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count orders for user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *orderRepository) FindTicketsByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.TicketListItem, error) {
	query := `
		SELECT t.id, t.row, t.seat, t.flight_id, t.order_id, t.created_at,
		       src.name, dst.name
		FROM tickets t
		JOIN flights f ON f.id = t.flight_id
		JOIN routes rt ON rt.id = f.route_id
		JOIN airports src ON src.id = rt.source_id
		JOIN airports dst ON dst.id = rt.destination_id
		WHERE t.order_id = $1
		ORDER BY t.row, t.seat
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to find order tickets",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("find tickets for order %s: %w", orderID.String(), err)
	}
	defer rows.Close()

	var tickets []*entity.TicketListItem
	for rows.Next() {
		var item entity.TicketListItem
		err := rows.Scan(
			&item.ID,
			&item.Row,
			&item.Seat,
			&item.FlightID,
			&item.OrderID,
			&item.CreatedAt,
			&item.SourceName,
			&item.DestinationName,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &item)
	}

	return tickets, rows.Err()
}

func (r *orderRepository) FindTakenSeats(ctx context.Context, flightID uuid.UUID) ([]entity.TakenSeat, error) {
	query := `SELECT "row", seat FROM tickets WHERE flight_id = $1 ORDER BY "row", seat`

	rows, err := r.db.Query(ctx, query, flightID)
	if err != nil {
		r.log.Error("Failed to find taken seats",
			zap.Error(err),
			zap.String("flight_id", flightID.String()),
		)
		return nil, fmt.Errorf("find taken seats for flight %s: %w", flightID.String(), err)
	}
	defer rows.Close()

	var seats []entity.TakenSeat
	for rows.Next() {
		var seat entity.TakenSeat
		if err := rows.Scan(&seat.Row, &seat.Seat); err != nil {
			r.log.Error("Failed to scan taken seat row", zap.Error(err))
			return nil, fmt.Errorf("scan taken seat row: %w", err)
		}
		seats = append(seats, seat)
	}

	return seats, rows.Err()
}

// Delete removes the order; its tickets go with it via ON DELETE CASCADE.
func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return fmt.Errorf("delete order %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
