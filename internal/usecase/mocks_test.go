package usecase

import (
	"context"

	"github.com/Zonda001/AirportAPI/internal/data/entity"
	"github.com/Zonda001/AirportAPI/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockCrewRepository struct {
	mock.Mock
}

func (m *MockCrewRepository) Create(ctx context.Context, crew *entity.Crew) error {
	args := m.Called(ctx, crew)
	return args.Error(0)
}

func (m *MockCrewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Crew, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Crew), args.Error(1)
}

func (m *MockCrewRepository) FindAll(ctx context.Context, fullName *string, limit, offset int) ([]*entity.Crew, error) {
	args := m.Called(ctx, fullName, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Crew), args.Error(1)
}

func (m *MockCrewRepository) CountAll(ctx context.Context, fullName *string) (int64, error) {
	args := m.Called(ctx, fullName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCrewRepository) Update(ctx context.Context, crew *entity.Crew) error {
	args := m.Called(ctx, crew)
	return args.Error(0)
}

func (m *MockCrewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) Create(ctx context.Context, airport *entity.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockAirportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Airport), args.Error(1)
}

func (m *MockAirportRepository) FindAll(ctx context.Context, name *string, limit, offset int) ([]*entity.Airport, error) {
	args := m.Called(ctx, name, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Airport), args.Error(1)
}

func (m *MockAirportRepository) CountAll(ctx context.Context, name *string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAirportRepository) Update(ctx context.Context, airport *entity.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockAirportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) Create(ctx context.Context, route *entity.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *MockRouteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Route), args.Error(1)
}

func (m *MockRouteRepository) FindAll(ctx context.Context, fromName, toName *string, limit, offset int) ([]*entity.RouteListItem, error) {
	args := m.Called(ctx, fromName, toName, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.RouteListItem), args.Error(1)
}

func (m *MockRouteRepository) CountAll(ctx context.Context, fromName, toName *string) (int64, error) {
	args := m.Called(ctx, fromName, toName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRouteRepository) Update(ctx context.Context, route *entity.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *MockRouteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAirplaneTypeRepository struct {
	mock.Mock
}

func (m *MockAirplaneTypeRepository) Create(ctx context.Context, airplaneType *entity.AirplaneType) error {
	args := m.Called(ctx, airplaneType)
	return args.Error(0)
}

func (m *MockAirplaneTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AirplaneType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AirplaneType), args.Error(1)
}

func (m *MockAirplaneTypeRepository) FindAll(ctx context.Context, name *string, limit, offset int) ([]*entity.AirplaneType, error) {
	args := m.Called(ctx, name, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AirplaneType), args.Error(1)
}

func (m *MockAirplaneTypeRepository) CountAll(ctx context.Context, name *string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAirplaneTypeRepository) Update(ctx context.Context, airplaneType *entity.AirplaneType) error {
	args := m.Called(ctx, airplaneType)
	return args.Error(0)
}

func (m *MockAirplaneTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAirplaneRepository struct {
	mock.Mock
}

func (m *MockAirplaneRepository) Create(ctx context.Context, airplane *entity.Airplane) error {
	args := m.Called(ctx, airplane)
	return args.Error(0)
}

func (m *MockAirplaneRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Airplane, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Airplane), args.Error(1)
}

func (m *MockAirplaneRepository) FindAll(ctx context.Context, name, typeName *string, limit, offset int) ([]*entity.AirplaneListItem, error) {
	args := m.Called(ctx, name, typeName, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AirplaneListItem), args.Error(1)
}

func (m *MockAirplaneRepository) CountAll(ctx context.Context, name, typeName *string) (int64, error) {
	args := m.Called(ctx, name, typeName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAirplaneRepository) Update(ctx context.Context, airplane *entity.Airplane) error {
	args := m.Called(ctx, airplane)
	return args.Error(0)
}

func (m *MockAirplaneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *entity.Flight, crewIDs []uuid.UUID) error {
	args := m.Called(ctx, flight, crewIDs)
	return args.Error(0)
}

func (m *MockFlightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Flight), args.Error(1)
}

func (m *MockFlightRepository) FindAll(ctx context.Context, filter repository.FlightFilter, limit, offset int) ([]*entity.FlightListItem, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.FlightListItem), args.Error(1)
}

func (m *MockFlightRepository) CountAll(ctx context.Context, filter repository.FlightFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFlightRepository) FindCrew(ctx context.Context, flightID uuid.UUID) ([]*entity.Crew, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Crew), args.Error(1)
}

func (m *MockFlightRepository) Update(ctx context.Context, flight *entity.Flight, crewIDs []uuid.UUID) error {
	args := m.Called(ctx, flight, crewIDs)
	return args.Error(0)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateWithTickets(ctx context.Context, order *entity.Order, tickets []*entity.Ticket) error {
	args := m.Called(ctx, order, tickets)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindTicketsByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.TicketListItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.TicketListItem), args.Error(1)
}

func (m *MockOrderRepository) FindTakenSeats(ctx context.Context, flightID uuid.UUID) ([]entity.TakenSeat, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TakenSeat), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockRepos bundles one mock per repository so tests can wire only the
// ones they stub.
type mockRepos struct {
	user         *MockUserRepository
	crew         *MockCrewRepository
	airport      *MockAirportRepository
	route        *MockRouteRepository
	airplaneType *MockAirplaneTypeRepository
	airplane     *MockAirplaneRepository
	flight       *MockFlightRepository
	order        *MockOrderRepository
}

func newMockRepos() *mockRepos {
	return &mockRepos{
		user:         new(MockUserRepository),
		crew:         new(MockCrewRepository),
		airport:      new(MockAirportRepository),
		route:        new(MockRouteRepository),
		airplaneType: new(MockAirplaneTypeRepository),
		airplane:     new(MockAirplaneRepository),
		flight:       new(MockFlightRepository),
		order:        new(MockOrderRepository),
	}
}

func (m *mockRepos) repository() *repository.Repository {
	return &repository.Repository{
		User:         m.user,
		Crew:         m.crew,
		Airport:      m.airport,
		Route:        m.route,
		AirplaneType: m.airplaneType,
		Airplane:     m.airplane,
		Flight:       m.flight,
		Order:        m.order,
	}
}
