package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Zonda001/AirportAPI/internal/data/entity"
	"github.com/Zonda001/AirportAPI/internal/data/repository"
	"github.com/Zonda001/AirportAPI/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestOrderService(repos *mockRepos) OrderService {
	return NewOrderService(repos.repository(), nil, zap.NewNop())
}

func testAirplane(rows, seatsInRows int) *entity.Airplane {
	return &entity.Airplane{
		Base:        entity.Base{ID: uuid.New()},
		Name:        "Boeing 737",
		Rows:        rows,
		SeatsInRows: seatsInRows,
	}
}

func TestCreateOrder_EmptyTickets(t *testing.T) {
	repos := newMockRepos()
	svc := newTestOrderService(repos)

	_, err := svc.CreateOrder(context.Background(), uuid.New(), &request.CreateOrderRequest{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	repos.order.AssertNotCalled(t, "CreateWithTickets")
}

func TestCreateOrder_FlightNotFound(t *testing.T) {
	repos := newMockRepos()
	svc := newTestOrderService(repos)

	flightID := uuid.New()
	repos.flight.On("FindByID", mock.Anything, flightID).Return(nil, nil).Once()

	req := &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{Row: 1, Seat: 1, Flight: flightID.String()},
		},
	}

	_, err := svc.CreateOrder(context.Background(), uuid.New(), req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "flight "+flightID.String()+" not found")
	repos.flight.AssertExpectations(t)
	repos.order.AssertNotCalled(t, "CreateWithTickets")
}

func TestCreateOrder_SeatOutOfBounds(t *testing.T) {
	airplane := testAirplane(20, 6)

	testCases := []struct {
		name        string
		row         int
		seat        int
		expectedErr string
	}{
		{
			name:        "seat beyond row width",
			row:         5,
			seat:        7,
			expectedErr: "seat must be in range [1, 6]",
		},
		{
			name:        "row beyond airplane",
			row:         21,
			seat:        3,
			expectedErr: "row must be in range [1, 20]",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repos := newMockRepos()
			svc := newTestOrderService(repos)

			flightID := uuid.New()
			flight := &entity.Flight{
				Base:       entity.Base{ID: flightID},
				AirplaneID: airplane.ID,
			}

			repos.flight.On("FindByID", mock.Anything, flightID).Return(flight, nil).Once()
			repos.airplane.On("FindByID", mock.Anything, airplane.ID).Return(airplane, nil).Once()

			req := &request.CreateOrderRequest{
				Tickets: []request.TicketRequest{
					{Row: tc.row, Seat: tc.seat, Flight: flightID.String()},
				},
			}

			_, err := svc.CreateOrder(context.Background(), uuid.New(), req)

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedErr)
			repos.order.AssertNotCalled(t, "CreateWithTickets")
		})
	}
}

// One bad ticket sinks the whole order, even when earlier tickets in
// the payload were fine.
func TestCreateOrder_BadTicketAbortsOrder(t *testing.T) {
	repos := newMockRepos()
	svc := newTestOrderService(repos)

	airplane := testAirplane(20, 6)
	flightID := uuid.New()
	flight := &entity.Flight{
		Base:       entity.Base{ID: flightID},
		AirplaneID: airplane.ID,
	}

	repos.flight.On("FindByID", mock.Anything, flightID).Return(flight, nil).Once()
	repos.airplane.On("FindByID", mock.Anything, airplane.ID).Return(airplane, nil).Once()

	req := &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{Row: 1, Seat: 1, Flight: flightID.String()},
			{Row: 1, Seat: 7, Flight: flightID.String()},
		},
	}

	_, err := svc.CreateOrder(context.Background(), uuid.New(), req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "seat must be in range [1, 6]")
	repos.order.AssertNotCalled(t, "CreateWithTickets")
	// The airplane is looked up once per distinct flight, not per ticket.
	repos.flight.AssertExpectations(t)
	repos.airplane.AssertExpectations(t)
}

func TestCreateOrder_SeatTaken(t *testing.T) {
	repos := newMockRepos()
	svc := newTestOrderService(repos)

	airplane := testAirplane(20, 6)
	flightID := uuid.New()
	flight := &entity.Flight{
		Base:       entity.Base{ID: flightID},
		AirplaneID: airplane.ID,
	}

	repos.flight.On("FindByID", mock.Anything, flightID).Return(flight, nil).Once()
	repos.airplane.On("FindByID", mock.Anything, airplane.ID).Return(airplane, nil).Once()
	repos.order.On("CreateWithTickets", mock.Anything, mock.Anything, mock.Anything).
		Return(repository.ErrSeatTaken).Once()

	req := &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{Row: 1, Seat: 1, Flight: flightID.String()},
		},
	}

	_, err := svc.CreateOrder(context.Background(), uuid.New(), req)

	assert.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrSeatTaken)
	repos.order.AssertExpectations(t)
}

func TestCreateOrder_Success(t *testing.T) {
	repos := newMockRepos()
	svc := newTestOrderService(repos)

	userID := uuid.New()
	airplane := testAirplane(20, 6)
	flightID := uuid.New()
	flight := &entity.Flight{
		Base:       entity.Base{ID: flightID},
		AirplaneID: airplane.ID,
	}

	repos.flight.On("FindByID", mock.Anything, flightID).Return(flight, nil).Once()
	repos.airplane.On("FindByID", mock.Anything, airplane.ID).Return(airplane, nil).Once()

	var createdTickets []*entity.Ticket
	repos.order.On("CreateWithTickets", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			createdTickets = args.Get(2).([]*entity.Ticket)
		}).
		Return(nil).Once()

	ticketItems := []*entity.TicketListItem{
		{
			Ticket:          entity.Ticket{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Row: 1, Seat: 1, FlightID: flightID},
			SourceName:      "Heathrow",
			DestinationName: "Schiphol",
		},
		{
			Ticket:          entity.Ticket{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Row: 1, Seat: 2, FlightID: flightID},
			SourceName:      "Heathrow",
			DestinationName: "Schiphol",
		},
	}
	repos.order.On("FindTicketsByOrderID", mock.Anything, mock.Anything).Return(ticketItems, nil).Once()

	req := &request.CreateOrderRequest{
		Tickets: []request.TicketRequest{
			{Row: 1, Seat: 1, Flight: flightID.String()},
			{Row: 1, Seat: 2, Flight: flightID.String()},
		},
	}

	resp, err := svc.CreateOrder(context.Background(), userID, req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Len(t, resp.Tickets, 2)
	assert.Equal(t, "Heathrow", resp.Tickets[0].Source)
	assert.Equal(t, "Schiphol", resp.Tickets[0].Destination)

	assert.Len(t, createdTickets, 2)
	for _, ticket := range createdTickets {
		assert.Equal(t, flightID, ticket.FlightID)
	}

	repos.flight.AssertExpectations(t)
	repos.airplane.AssertExpectations(t)
	repos.order.AssertExpectations(t)
}

func TestGetOrderByID_ForeignOrderLooksMissing(t *testing.T) {
	repos := newMockRepos()
	svc := newTestOrderService(repos)

	orderID := uuid.New()
	foreign := &entity.Order{
		BaseSimple: entity.BaseSimple{ID: orderID, CreatedAt: time.Now()},
		UserID:     uuid.New(),
	}

	repos.order.On("FindByID", mock.Anything, orderID).Return(foreign, nil).Once()

	_, err := svc.GetOrderByID(context.Background(), uuid.New(), orderID.String())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "order "+orderID.String()+" not found")
	repos.order.AssertNotCalled(t, "FindTicketsByOrderID")
}

func TestGetOrderByID_InvalidID(t *testing.T) {
	repos := newMockRepos()
	svc := newTestOrderService(repos)

	_, err := svc.GetOrderByID(context.Background(), uuid.New(), "not-a-uuid")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order ID format")
	repos.order.AssertNotCalled(t, "FindByID")
}

func TestDeleteOrder_ForeignOrderNotDeleted(t *testing.T) {
	repos := newMockRepos()
	svc := newTestOrderService(repos)

	orderID := uuid.New()
	foreign := &entity.Order{
		BaseSimple: entity.BaseSimple{ID: orderID},
		UserID:     uuid.New(),
	}

	repos.order.On("FindByID", mock.Anything, orderID).Return(foreign, nil).Once()

	err := svc.DeleteOrder(context.Background(), uuid.New(), orderID.String())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	repos.order.AssertNotCalled(t, "Delete")
}

func TestGetOrders_Success(t *testing.T) {
	repos := newMockRepos()
	svc := newTestOrderService(repos)

	userID := uuid.New()
	orders := []*entity.Order{
		{BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()}, UserID: userID},
		{BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()}, UserID: userID},
	}

	repos.order.On("FindByUserID", mock.Anything, userID, 10, 0).Return(orders, nil).Once()
	repos.order.On("CountByUserID", mock.Anything, userID).Return(int64(2), nil).Once()
	repos.order.On("FindTicketsByOrderID", mock.Anything, orders[0].ID).
		Return([]*entity.TicketListItem{}, nil).Once()
	repos.order.On("FindTicketsByOrderID", mock.Anything, orders[1].ID).
		Return([]*entity.TicketListItem{}, nil).Once()

	req := &request.PaginatedRequest{Page: 1, PageSize: 10}
	resp, err := svc.GetOrders(context.Background(), userID, req)

	assert.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(2), resp.Pagination.Total)
	repos.order.AssertExpectations(t)
}
