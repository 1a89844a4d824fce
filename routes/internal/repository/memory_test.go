package repository

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/meetupaws/flight_route_manager/routes/internal/model"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_SaveAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	routesToSave := []model.Route{
		{FlightID: "F2", Date: "2020-01-02", Time: "08:00", Origin: "SIN", Destination: "KUL", Capacity: 100},
		{FlightID: "F1", Date: "2020-01-01", Time: "09:00", Origin: "KUL", Destination: "SIN", Capacity: 80},
	}
	for _, r := range routesToSave {
		require.NoError(t, repo.Save(ctx, r))
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(routesToSave, got); diff != "" {
		t.Errorf("List() should keep insertion order (-want,+got)\n%s", diff)
	}

	found, err := repo.Find(ctx, "F1")
	require.NoError(t, err)
	require.Equal(t, routesToSave[1], found)
}

func TestMemoryRepository_RejectsDuplicateFlightID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(model.Route{FlightID: "F1"})

	err := repo.Save(ctx, model.Route{FlightID: "F1", Capacity: 5})
	require.ErrorIs(t, err, ErrRouteExists)

	routes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, routes, 1)
}

func TestMemoryRepository_FindMissing(t *testing.T) {
	_, err := NewMemoryRepository().Find(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNoRoutesFound)
}

func TestMemoryRepository_ListReturnsACopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(model.Route{FlightID: "F1"})

	routes, err := repo.List(ctx)
	require.NoError(t, err)
	routes[0].FlightID = "changed"

	found, err := repo.Find(ctx, "F1")
	require.NoError(t, err)
	require.Equal(t, "F1", found.FlightID)
}
