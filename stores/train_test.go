package stores

import (
	"context"
	"testing"

	"github.com/Scoheart-Order/metro/api"
)

type fakeTrainTripAPI struct {
	trips     []api.TrainTrip
	stopTimes map[int64][]api.StopTime

	hydrations int
}

func (f *fakeTrainTripAPI) GetAllTrainTrips(context.Context) ([]api.TrainTrip, error) {
	return f.trips, nil
}

func (f *fakeTrainTripAPI) GetTrainTripWithStopTimes(_ context.Context, id int64) (*api.TrainTrip, error) {
	f.hydrations++
	for _, trip := range f.trips {
		if trip.ID == id {
			trip.StopTimes = f.stopTimes[id]
			return &trip, nil
		}
	}
	return nil, api.ErrNotFound
}

func sampleTrips() *fakeTrainTripAPI {
	return &fakeTrainTripAPI{
		trips: []api.TrainTrip{
			{ID: 1, RouteID: 100, TrainNumber: "G101", RunDate: "2026-09-01"},
			{ID: 2, RouteID: 100, TrainNumber: "G103", RunDate: "2026-09-01"},
			{ID: 3, RouteID: 102, TrainNumber: "G201", RunDate: "2026-09-01"},
		},
		stopTimes: map[int64][]api.StopTime{
			1: {
				{ID: 11, TrainTripID: 1, StopID: 1000, ArrivalTime: "08:00", DepartureTime: "08:02", StopSeq: 1},
				{ID: 12, TrainTripID: 1, StopID: 1001, ArrivalTime: "08:10", DepartureTime: "08:12", StopSeq: 2},
			},
		},
	}
}

func TestTrainTripsRefreshAndLookups(t *testing.T) {
	store := NewTrainTrips(sampleTrips())
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	if got := len(store.All()); got != 3 {
		t.Fatalf("expected 3 trips, got %d", got)
	}
	if got := store.ByRoute(100); len(got) != 2 {
		t.Fatalf("expected 2 trips on route 100, got %d", len(got))
	}
	trip, ok := store.ByID(3)
	if !ok || trip.TrainNumber != "G201" {
		t.Fatalf("expected G201, got %+v ok=%v", trip, ok)
	}
	if _, ok := store.ByID(99); ok {
		t.Fatal("unknown trip must miss")
	}
}

func TestWithStopTimesHydratesOnce(t *testing.T) {
	backend := sampleTrips()
	store := NewTrainTrips(backend)
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	full, err := store.WithStopTimes(context.Background(), 1)
	if err != nil || len(full.StopTimes) != 2 {
		t.Fatalf("expected 2 stop times, got %+v err=%v", full, err)
	}
	if _, err := store.WithStopTimes(context.Background(), 1); err != nil {
		t.Fatalf("cached read failed: %v", err)
	}
	if backend.hydrations != 1 {
		t.Fatalf("expected one hydration, got %d", backend.hydrations)
	}

	// The hydrated trip is visible through plain lookups too.
	trip, _ := store.ByID(1)
	if len(trip.StopTimes) != 2 {
		t.Fatalf("expected hydration mirrored into the cache, got %+v", trip)
	}
}
