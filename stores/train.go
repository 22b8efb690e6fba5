package stores

import (
	"context"
	"sync"

	"github.com/Scoheart-Order/metro/api"
)

// TrainTripAPI is the slice of the metro service the trip store
// consumes. *api.MetroService satisfies it.
type TrainTripAPI interface {
	GetAllTrainTrips(ctx context.Context) ([]api.TrainTrip, error)
	GetTrainTripWithStopTimes(ctx context.Context, id int64) (*api.TrainTrip, error)
}

// TrainTrips caches the scheduled trips, with stop times hydrated per
// trip on demand.
type TrainTrips struct {
	apiSvc TrainTripAPI

	mu       sync.RWMutex
	trips    []api.TrainTrip
	byID     map[int64]*api.TrainTrip
	byRoute  map[int64][]api.TrainTrip
	hydrated map[int64]bool
}

// NewTrainTrips returns an empty trip store.
func NewTrainTrips(svc TrainTripAPI) *TrainTrips {
	return &TrainTrips{
		apiSvc:   svc,
		byID:     map[int64]*api.TrainTrip{},
		byRoute:  map[int64][]api.TrainTrip{},
		hydrated: map[int64]bool{},
	}
}

// Refresh reloads every trip. Hydrated stop times are discarded; they
// belong to the replaced generation.
func (t *TrainTrips) Refresh(ctx context.Context) error {
	trips, err := t.apiSvc.GetAllTrainTrips(ctx)
	if err != nil {
		return err
	}

	byID := make(map[int64]*api.TrainTrip, len(trips))
	byRoute := make(map[int64][]api.TrainTrip)
	for i := range trips {
		byID[trips[i].ID] = &trips[i]
		byRoute[trips[i].RouteID] = append(byRoute[trips[i].RouteID], trips[i])
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.trips = trips
	t.byID = byID
	t.byRoute = byRoute
	t.hydrated = map[int64]bool{}
	return nil
}

// All returns the cached trips in backend order.
func (t *TrainTrips) All() []api.TrainTrip {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]api.TrainTrip(nil), t.trips...)
}

// ByRoute returns the cached trips serving one route.
func (t *TrainTrips) ByRoute(routeID int64) []api.TrainTrip {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]api.TrainTrip(nil), t.byRoute[routeID]...)
}

// ByID looks up a cached trip.
func (t *TrainTrips) ByID(id int64) (api.TrainTrip, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if trip, ok := t.byID[id]; ok {
		return *trip, true
	}
	return api.TrainTrip{}, false
}

// WithStopTimes returns a trip with its stop times populated, fetching
// them from the backend the first time a trip is asked for.
func (t *TrainTrips) WithStopTimes(ctx context.Context, id int64) (api.TrainTrip, error) {
	t.mu.RLock()
	trip, ok := t.byID[id]
	done := ok && t.hydrated[id]
	if done {
		out := *trip
		t.mu.RUnlock()
		return out, nil
	}
	t.mu.RUnlock()

	full, err := t.apiSvc.GetTrainTripWithStopTimes(ctx, id)
	if err != nil {
		return api.TrainTrip{}, err
	}

	t.mu.Lock()
	if cached, ok := t.byID[full.ID]; ok {
		cached.StopTimes = full.StopTimes
		t.hydrated[full.ID] = true
	}
	t.mu.Unlock()
	return *full, nil
}
