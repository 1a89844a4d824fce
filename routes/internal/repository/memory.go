package repository

import (
	"context"

	"github.com/meetupaws/flight_route_manager/routes/internal/model"
)

// MemoryRepository keeps routes in insertion order. It is only touched from
// the console loop, so it is not safe for concurrent use.
type MemoryRepository struct {
	routes []model.Route
}

func (r *MemoryRepository) Save(ctx context.Context, route model.Route) error {
	if _, err := r.Find(ctx, route.FlightID); err == nil {
		return ErrRouteExists
	}
	r.routes = append(r.routes, route)
	return nil
}

func (r *MemoryRepository) Find(ctx context.Context, flightID string) (model.Route, error) {
	for _, route := range r.routes {
		if route.FlightID == flightID {
			return route, nil
		}
	}
	return model.Route{}, ErrNoRoutesFound
}

func (r *MemoryRepository) List(ctx context.Context) ([]model.Route, error) {
	routes := make([]model.Route, len(r.routes))
	copy(routes, r.routes)
	return routes, nil
}

func (r *MemoryRepository) Flush(ctx context.Context) error {
	return nil
}

func NewMemoryRepository(routes ...model.Route) *MemoryRepository {
	return &MemoryRepository{
		routes: routes,
	}
}
