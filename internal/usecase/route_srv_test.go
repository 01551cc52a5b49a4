package usecase

import (
	"context"
	"testing"

	"github.com/Zonda001/AirportAPI/internal/data/entity"
	"github.com/Zonda001/AirportAPI/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestRouteService(repos *mockRepos) RouteService {
	return NewRouteService(repos.repository(), zap.NewNop())
}

// A lone from or to filter is ignored; both must be present to narrow
// the listing.
func TestGetRoutes_SingleFilterIgnored(t *testing.T) {
	repos := newMockRepos()
	svc := newTestRouteService(repos)

	repos.route.On("FindAll", mock.Anything, (*string)(nil), (*string)(nil), 10, 0).
		Return([]*entity.RouteListItem{}, nil).Once()
	repos.route.On("CountAll", mock.Anything, (*string)(nil), (*string)(nil)).
		Return(int64(0), nil).Once()

	req := &request.PaginatedRequest{Page: 1, PageSize: 10}
	_, err := svc.GetRoutes(context.Background(), req, strPtr("Heathrow"), nil)

	assert.NoError(t, err)
	repos.route.AssertExpectations(t)
}

func TestGetRoutes_BothFiltersApplied(t *testing.T) {
	repos := newMockRepos()
	svc := newTestRouteService(repos)

	from := strPtr("Heathrow")
	to := strPtr("Schiphol")
	items := []*entity.RouteListItem{
		{
			Route:           entity.Route{Base: entity.Base{ID: uuid.New()}, Distance: 370},
			SourceName:      "Heathrow",
			DestinationName: "Schiphol",
		},
	}

	repos.route.On("FindAll", mock.Anything, from, to, 10, 0).Return(items, nil).Once()
	repos.route.On("CountAll", mock.Anything, from, to).Return(int64(1), nil).Once()

	req := &request.PaginatedRequest{Page: 1, PageSize: 10}
	resp, err := svc.GetRoutes(context.Background(), req, from, to)

	assert.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "Heathrow", resp.Data[0].Source)
	assert.Equal(t, "Schiphol", resp.Data[0].Destination)
	assert.Equal(t, 370, resp.Data[0].Distance)
	repos.route.AssertExpectations(t)
}

func TestCreateRoute_SelfLoopRejected(t *testing.T) {
	repos := newMockRepos()
	svc := newTestRouteService(repos)

	airportID := uuid.New().String()
	req := &request.RouteRequest{
		Source:      airportID,
		Destination: airportID,
		Distance:    100,
	}

	_, err := svc.CreateRoute(context.Background(), req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Destination cannot be the same as source")
	repos.route.AssertNotCalled(t, "Create")
}

func TestCreateRoute_AirportNotFound(t *testing.T) {
	repos := newMockRepos()
	svc := newTestRouteService(repos)

	sourceID := uuid.New()
	repos.airport.On("FindByID", mock.Anything, sourceID).Return(nil, nil).Once()

	req := &request.RouteRequest{
		Source:      sourceID.String(),
		Destination: uuid.New().String(),
		Distance:    100,
	}

	_, err := svc.CreateRoute(context.Background(), req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "airport "+sourceID.String()+" not found")
	repos.route.AssertNotCalled(t, "Create")
}

func TestCreateRoute_Success(t *testing.T) {
	repos := newMockRepos()
	svc := newTestRouteService(repos)

	source := &entity.Airport{Base: entity.Base{ID: uuid.New()}, Name: "Heathrow", ClosestBigCity: "London"}
	destination := &entity.Airport{Base: entity.Base{ID: uuid.New()}, Name: "Schiphol", ClosestBigCity: "Amsterdam"}

	repos.airport.On("FindByID", mock.Anything, source.ID).Return(source, nil)
	repos.airport.On("FindByID", mock.Anything, destination.ID).Return(destination, nil)
	repos.route.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	req := &request.RouteRequest{
		Source:      source.ID.String(),
		Destination: destination.ID.String(),
		Distance:    370,
	}

	resp, err := svc.CreateRoute(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "Heathrow", resp.Source.Name)
	assert.Equal(t, "Amsterdam", resp.Destination.ClosestBigCity)
	assert.Equal(t, 370, resp.Distance)
	repos.route.AssertExpectations(t)
}

// PATCH can flip one endpoint onto the other; the pair is re-checked
// after the field updates are applied.
func TestUpdateRoute_SelfLoopRejected(t *testing.T) {
	repos := newMockRepos()
	svc := newTestRouteService(repos)

	source := &entity.Airport{Base: entity.Base{ID: uuid.New()}, Name: "Heathrow"}
	route := &entity.Route{
		Base:          entity.Base{ID: uuid.New()},
		SourceID:      source.ID,
		DestinationID: uuid.New(),
		Distance:      370,
	}

	repos.route.On("FindByID", mock.Anything, route.ID).Return(route, nil).Once()
	repos.airport.On("FindByID", mock.Anything, source.ID).Return(source, nil).Once()

	sourceID := source.ID.String()
	req := &request.RouteUpdateRequest{Destination: &sourceID}

	_, err := svc.UpdateRoute(context.Background(), route.ID.String(), req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Destination cannot be the same as source")
	repos.route.AssertNotCalled(t, "Update")
}

func TestDeleteRoute_NotFound(t *testing.T) {
	repos := newMockRepos()
	svc := newTestRouteService(repos)

	routeID := uuid.New()
	repos.route.On("FindByID", mock.Anything, routeID).Return(nil, nil).Once()

	err := svc.DeleteRoute(context.Background(), routeID.String())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	repos.route.AssertNotCalled(t, "Delete")
}
