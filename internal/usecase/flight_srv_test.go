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

func newTestFlightService(repos *mockRepos) FlightService {
	return NewFlightService(repos.repository(), zap.NewNop())
}

func strPtr(s string) *string {
	return &s
}

func TestGetFlights_InvalidTimestampFilter(t *testing.T) {
	testCases := []struct {
		name        string
		filter      FlightListFilter
		expectedErr string
	}{
		{
			name:        "bad departure_time",
			filter:      FlightListFilter{DepartureTime: strPtr("2026-10-01 12:00")},
			expectedErr: "invalid departure_time format",
		},
		{
			name:        "bad arrival_time",
			filter:      FlightListFilter{ArrivalTime: strPtr("tomorrow")},
			expectedErr: "invalid arrival_time format",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repos := newMockRepos()
			svc := newTestFlightService(repos)

			req := &request.PaginatedRequest{Page: 1, PageSize: 10}
			_, err := svc.GetFlights(context.Background(), req, tc.filter)

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedErr)
			repos.flight.AssertNotCalled(t, "FindAll")
		})
	}
}

func TestGetFlights_Success(t *testing.T) {
	repos := newMockRepos()
	svc := newTestFlightService(repos)

	departure := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	expectedFilter := repository.FlightFilter{
		FromCity:      strPtr("London"),
		ToCity:        strPtr("Amsterdam"),
		DepartureTime: &departure,
	}

	flightID := uuid.New()
	items := []*entity.FlightListItem{
		{
			Flight: entity.Flight{
				Base:          entity.Base{ID: flightID},
				DepartureTime: departure,
				ArrivalTime:   departure.Add(time.Hour),
			},
			SourceName:       "Heathrow",
			DestinationName:  "Schiphol",
			AirplaneName:     "Boeing 737",
			AvailableTickets: 42,
		},
	}
	crews := []*entity.Crew{
		{Base: entity.Base{ID: uuid.New()}, FirstName: "Amelia", LastName: "Earhart"},
	}

	repos.flight.On("FindAll", mock.Anything, expectedFilter, 10, 0).Return(items, nil).Once()
	repos.flight.On("CountAll", mock.Anything, expectedFilter).Return(int64(1), nil).Once()
	repos.flight.On("FindCrew", mock.Anything, flightID).Return(crews, nil).Once()

	req := &request.PaginatedRequest{Page: 1, PageSize: 10}
	filter := FlightListFilter{
		FromCity:      strPtr("London"),
		ToCity:        strPtr("Amsterdam"),
		DepartureTime: strPtr("2026-10-01T12:00:00Z"),
	}

	resp, err := svc.GetFlights(context.Background(), req, filter)

	assert.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "Heathrow", resp.Data[0].Source)
	assert.Equal(t, "Schiphol", resp.Data[0].Destination)
	assert.Equal(t, "Boeing 737", resp.Data[0].Airplane)
	assert.Equal(t, 42, resp.Data[0].AvailableTickets)
	assert.Equal(t, []string{"Amelia Earhart"}, resp.Data[0].Crew)
	assert.Equal(t, int64(1), resp.Pagination.Total)
	repos.flight.AssertExpectations(t)
}

func TestCreateFlight_InvalidTimestamp(t *testing.T) {
	repos := newMockRepos()
	svc := newTestFlightService(repos)

	req := &request.FlightRequest{
		Route:         uuid.New().String(),
		Airplane:      uuid.New().String(),
		DepartureTime: "01-10-2026 12:00",
		ArrivalTime:   "2026-10-01T14:00:00Z",
	}

	_, err := svc.CreateFlight(context.Background(), req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid departure_time format")
	repos.flight.AssertNotCalled(t, "Create")
}

func TestCreateFlight_ArrivalValidation(t *testing.T) {
	testCases := []struct {
		name        string
		departure   string
		arrival     string
		expectedErr string
	}{
		{
			name:        "arrival equals departure",
			departure:   "2026-10-01T12:00:00Z",
			arrival:     "2026-10-01T12:00:00Z",
			expectedErr: "Arrival time cannot be the same as departure time",
		},
		{
			name:        "arrival before departure",
			departure:   "2026-10-01T12:00:00Z",
			arrival:     "2026-10-01T09:00:00Z",
			expectedErr: "The time and date of arrival cannot be earlier than departure",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repos := newMockRepos()
			svc := newTestFlightService(repos)

			req := &request.FlightRequest{
				Route:         uuid.New().String(),
				Airplane:      uuid.New().String(),
				DepartureTime: tc.departure,
				ArrivalTime:   tc.arrival,
			}

			_, err := svc.CreateFlight(context.Background(), req)

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedErr)
			repos.flight.AssertNotCalled(t, "Create")
		})
	}
}

func TestCreateFlight_RouteNotFound(t *testing.T) {
	repos := newMockRepos()
	svc := newTestFlightService(repos)

	routeID := uuid.New()
	repos.route.On("FindByID", mock.Anything, routeID).Return(nil, nil).Once()

	req := &request.FlightRequest{
		Route:         routeID.String(),
		Airplane:      uuid.New().String(),
		DepartureTime: "2026-10-01T12:00:00Z",
		ArrivalTime:   "2026-10-01T14:00:00Z",
	}

	_, err := svc.CreateFlight(context.Background(), req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "route "+routeID.String()+" not found")
	repos.flight.AssertNotCalled(t, "Create")
}

func TestCreateFlight_CrewNotFound(t *testing.T) {
	repos := newMockRepos()
	svc := newTestFlightService(repos)

	route := &entity.Route{Base: entity.Base{ID: uuid.New()}}
	airplane := testAirplane(20, 6)
	crewID := uuid.New()

	repos.route.On("FindByID", mock.Anything, route.ID).Return(route, nil).Once()
	repos.airplane.On("FindByID", mock.Anything, airplane.ID).Return(airplane, nil).Once()
	repos.crew.On("FindByID", mock.Anything, crewID).Return(nil, nil).Once()

	req := &request.FlightRequest{
		Route:         route.ID.String(),
		Airplane:      airplane.ID.String(),
		DepartureTime: "2026-10-01T12:00:00Z",
		ArrivalTime:   "2026-10-01T14:00:00Z",
		Crew:          []string{crewID.String()},
	}

	_, err := svc.CreateFlight(context.Background(), req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "crew "+crewID.String()+" not found")
	repos.flight.AssertNotCalled(t, "Create")
}

func TestCreateFlight_Success(t *testing.T) {
	repos := newMockRepos()
	svc := newTestFlightService(repos)

	source := &entity.Airport{Base: entity.Base{ID: uuid.New()}, Name: "Heathrow", ClosestBigCity: "London"}
	destination := &entity.Airport{Base: entity.Base{ID: uuid.New()}, Name: "Schiphol", ClosestBigCity: "Amsterdam"}
	route := &entity.Route{
		Base:          entity.Base{ID: uuid.New()},
		SourceID:      source.ID,
		DestinationID: destination.ID,
		Distance:      370,
	}
	airplaneType := &entity.AirplaneType{Base: entity.Base{ID: uuid.New()}, Name: "Narrow-body"}
	airplane := testAirplane(20, 6)
	airplane.AirplaneTypeID = airplaneType.ID
	crew := &entity.Crew{Base: entity.Base{ID: uuid.New()}, FirstName: "Amelia", LastName: "Earhart"}

	// Route and airplane are read again when the detail view is built.
	repos.route.On("FindByID", mock.Anything, route.ID).Return(route, nil)
	repos.airplane.On("FindByID", mock.Anything, airplane.ID).Return(airplane, nil)
	repos.crew.On("FindByID", mock.Anything, crew.ID).Return(crew, nil).Once()
	repos.airport.On("FindByID", mock.Anything, source.ID).Return(source, nil).Once()
	repos.airport.On("FindByID", mock.Anything, destination.ID).Return(destination, nil).Once()
	repos.airplaneType.On("FindByID", mock.Anything, airplaneType.ID).Return(airplaneType, nil).Once()
	repos.flight.On("Create", mock.Anything, mock.Anything, []uuid.UUID{crew.ID}).Return(nil).Once()
	repos.flight.On("FindCrew", mock.Anything, mock.Anything).Return([]*entity.Crew{crew}, nil).Once()
	repos.order.On("FindTakenSeats", mock.Anything, mock.Anything).
		Return([]entity.TakenSeat{{Row: 1, Seat: 1}}, nil).Once()

	req := &request.FlightRequest{
		Route:         route.ID.String(),
		Airplane:      airplane.ID.String(),
		DepartureTime: "2026-10-01T12:00:00Z",
		ArrivalTime:   "2026-10-01T14:00:00Z",
		Crew:          []string{crew.ID.String()},
	}

	resp, err := svc.CreateFlight(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "Heathrow", resp.Route.Source.Name)
	assert.Equal(t, "Schiphol", resp.Route.Destination.Name)
	assert.Equal(t, "Narrow-body", resp.Airplane.AirplaneType)
	assert.Equal(t, 120, resp.Airplane.NumOfSeats)
	assert.Len(t, resp.Crew, 1)
	assert.Equal(t, "Amelia Earhart", resp.Crew[0].FullName)
	assert.Len(t, resp.TakenPlaces, 1)
	assert.Equal(t, 1, resp.TakenPlaces[0].Row)
	assert.Equal(t, 1, resp.TakenPlaces[0].Seat)
	repos.flight.AssertExpectations(t)
}

// Omitting crew from the update payload keeps the current assignment.
func TestUpdateFlight_CrewOmittedKeepsAssignment(t *testing.T) {
	repos := newMockRepos()
	svc := newTestFlightService(repos)

	source := &entity.Airport{Base: entity.Base{ID: uuid.New()}, Name: "Heathrow"}
	destination := &entity.Airport{Base: entity.Base{ID: uuid.New()}, Name: "Schiphol"}
	route := &entity.Route{
		Base:          entity.Base{ID: uuid.New()},
		SourceID:      source.ID,
		DestinationID: destination.ID,
	}
	airplaneType := &entity.AirplaneType{Base: entity.Base{ID: uuid.New()}, Name: "Narrow-body"}
	airplane := testAirplane(20, 6)
	airplane.AirplaneTypeID = airplaneType.ID
	crew := &entity.Crew{Base: entity.Base{ID: uuid.New()}, FirstName: "Amelia", LastName: "Earhart"}

	flight := &entity.Flight{
		Base:          entity.Base{ID: uuid.New()},
		RouteID:       route.ID,
		AirplaneID:    airplane.ID,
		DepartureTime: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2026, 10, 1, 14, 0, 0, 0, time.UTC),
	}

	repos.flight.On("FindByID", mock.Anything, flight.ID).Return(flight, nil).Once()
	repos.route.On("FindByID", mock.Anything, route.ID).Return(route, nil)
	repos.airplane.On("FindByID", mock.Anything, airplane.ID).Return(airplane, nil)
	repos.airport.On("FindByID", mock.Anything, source.ID).Return(source, nil).Once()
	repos.airport.On("FindByID", mock.Anything, destination.ID).Return(destination, nil).Once()
	repos.airplaneType.On("FindByID", mock.Anything, airplaneType.ID).Return(airplaneType, nil).Once()
	repos.flight.On("FindCrew", mock.Anything, flight.ID).Return([]*entity.Crew{crew}, nil)
	repos.flight.On("Update", mock.Anything, mock.Anything, []uuid.UUID{crew.ID}).Return(nil).Once()
	repos.order.On("FindTakenSeats", mock.Anything, flight.ID).Return([]entity.TakenSeat{}, nil).Once()

	req := &request.FlightUpdateRequest{
		DepartureTime: strPtr("2026-10-01T13:00:00Z"),
		ArrivalTime:   strPtr("2026-10-01T15:00:00Z"),
	}

	resp, err := svc.UpdateFlight(context.Background(), flight.ID.String(), req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	repos.flight.AssertExpectations(t)
}

func TestDeleteFlight_NotFound(t *testing.T) {
	repos := newMockRepos()
	svc := newTestFlightService(repos)

	flightID := uuid.New()
	repos.flight.On("FindByID", mock.Anything, flightID).Return(nil, nil).Once()

	err := svc.DeleteFlight(context.Background(), flightID.String())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	repos.flight.AssertNotCalled(t, "Delete")
}
