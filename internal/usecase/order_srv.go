package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Zonda001/AirportAPI/internal/data/entity"
	"github.com/Zonda001/AirportAPI/internal/data/repository"
	"github.com/Zonda001/AirportAPI/internal/dto/request"
	"github.com/Zonda001/AirportAPI/internal/dto/response"
	"github.com/Zonda001/AirportAPI/internal/kafka"
	"github.com/Zonda001/AirportAPI/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	GetOrders(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	GetOrderByID(ctx context.Context, userID uuid.UUID, orderID string) (*response.OrderResponse, error)
	CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	DeleteOrder(ctx context.Context, userID uuid.UUID, orderID string) error
}

type orderService struct {
	repo     *repository.Repository
	producer *kafka.Producer
	log      *zap.Logger
}

func NewOrderService(repo *repository.Repository, producer *kafka.Producer, log *zap.Logger) OrderService {
	return &orderService{
		repo:     repo,
		producer: producer,
		log:      log.With(zap.String("service", "order")),
	}
}

func (s *orderService) GetOrders(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	orders, err := s.repo.Order.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get orders from repository",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("get orders: %w", err)
	}

	total, err := s.repo.Order.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count orders", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("count orders: %w", err)
	}

	orderResponses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		tickets, err := s.repo.Order.FindTicketsByOrderID(ctx, order.ID)
		if err != nil {
			s.log.Error("Failed to get tickets for order",
				zap.Error(err),
				zap.String("order_id", order.ID.String()),
			)
			return nil, fmt.Errorf("get tickets for order %s: %w", order.ID.String(), err)
		}
		orderResponses[i] = response.OrderToResponse(order, tickets)
	}

	return response.NewPaginatedResponse(orderResponses, req.Page, limit, total), nil
}

// GetOrderByID is owner-scoped: someone else's order looks the same as
// a missing one.
func (s *orderService) GetOrderByID(ctx context.Context, userID uuid.UUID, orderID string) (*response.OrderResponse, error) {
	order, err := s.findOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	tickets, err := s.repo.Order.FindTicketsByOrderID(ctx, order.ID)
	if err != nil {
		s.log.Error("Failed to get tickets for order",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
		return nil, fmt.Errorf("get tickets for order %s: %w", order.ID.String(), err)
	}

	orderResp := response.OrderToResponse(order, tickets)
	return &orderResp, nil
}

// CreateOrder validates every requested seat against the flight's
// airplane layout before booking; any rejected ticket aborts the whole
// order.
func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	order := &entity.Order{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID: userID,
	}

	// One airplane lookup per distinct flight in the order.
	airplanes := make(map[uuid.UUID]*entity.Airplane)

	tickets := make([]*entity.Ticket, 0, len(req.Tickets))
	for _, ticketReq := range req.Tickets {
		flightID, err := uuid.Parse(ticketReq.Flight)
		if err != nil {
			return nil, fmt.Errorf("invalid flight ID format %s: %w", ticketReq.Flight, err)
		}

		airplane, ok := airplanes[flightID]
		if !ok {
			flight, err := s.repo.Flight.FindByID(ctx, flightID)
			if err != nil {
				return nil, fmt.Errorf("check flight %s: %w", ticketReq.Flight, err)
			}
			if flight == nil {
				return nil, fmt.Errorf("flight %s not found", ticketReq.Flight)
			}

			airplane, err = s.repo.Airplane.FindByID(ctx, flight.AirplaneID)
			if err != nil || airplane == nil {
				return nil, fmt.Errorf("airplane %s not found", flight.AirplaneID.String())
			}
			airplanes[flightID] = airplane
		}

		if errs := entity.ValidateSeatAndRow(ticketReq.Seat, ticketReq.Row, airplane.SeatsInRows, airplane.Rows); len(errs) > 0 {
			return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
		}

		tickets = append(tickets, &entity.Ticket{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			Row:      ticketReq.Row,
			Seat:     ticketReq.Seat,
			FlightID: flightID,
			OrderID:  order.ID,
		})
	}

	if err := s.repo.Order.CreateWithTickets(ctx, order, tickets); err != nil {
		s.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("ticket_count", len(tickets)),
		)
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("ticket_count", len(tickets)),
	)

	s.publishOrderCreated(ctx, order, tickets)

	ticketItems, err := s.repo.Order.FindTicketsByOrderID(ctx, order.ID)
	if err != nil {
		s.log.Warn("Failed to load tickets after create",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
	}

	orderResp := response.OrderToResponse(order, ticketItems)
	return &orderResp, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, userID uuid.UUID, orderID string) error {
	order, err := s.findOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return err
	}

	if err := s.repo.Order.Delete(ctx, order.ID); err != nil {
		s.log.Error("Failed to delete order", zap.Error(err), zap.String("order_id", orderID))
		return fmt.Errorf("delete order %s: %w", orderID, err)
	}

	s.log.Info("Order deleted",
		zap.String("order_id", orderID),
		zap.String("user_id", userID.String()),
	)

	return nil
}

func (s *orderService) findOwnedOrder(ctx context.Context, userID uuid.UUID, orderID string) (*entity.Order, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID format %s: %w", orderID, err)
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get order by ID", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	if order == nil || order.UserID != userID {
		return nil, fmt.Errorf("order %s not found", orderID)
	}

	return order, nil
}

// publishOrderCreated never fails the booking; the event is best effort.
func (s *orderService) publishOrderCreated(ctx context.Context, order *entity.Order, tickets []*entity.Ticket) {
	if s.producer == nil {
		return
	}

	ticketEvents := make([]kafka.TicketEvent, len(tickets))
	for i, ticket := range tickets {
		ticketEvents[i] = kafka.TicketEvent{
			FlightID: ticket.FlightID.String(),
			Row:      ticket.Row,
			Seat:     ticket.Seat,
		}
	}

	event := kafka.OrderEvent{
		Type:      "order.created",
		OrderID:   order.ID.String(),
		UserID:    order.UserID.String(),
		Tickets:   ticketEvents,
		CreatedAt: order.CreatedAt,
	}

	if err := s.producer.Publish(ctx, order.ID.String(), event); err != nil {
		s.log.Warn("Failed to publish order event",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
	}
}
