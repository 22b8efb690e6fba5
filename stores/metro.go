package stores

import (
	"context"
	"sync"

	"github.com/Scoheart-Order/metro/api"
)

// TopologyAPI is the slice of the metro service the topology store
// consumes. *api.MetroService satisfies it.
type TopologyAPI interface {
	GetAllLines(ctx context.Context) ([]api.Line, error)
	GetAllStations(ctx context.Context) ([]api.Station, error)
	GetAllRoutes(ctx context.Context) ([]api.Route, error)
	GetStopsByRouteID(ctx context.Context, routeID int64) ([]api.Stop, error)
}

// Topology caches the network reference data: lines, stations, and
// routes, plus per-route stop sequences loaded on demand.
type Topology struct {
	apiSvc TopologyAPI

	mu           sync.RWMutex
	lines        []api.Line
	stations     []api.Station
	routes       []api.Route
	linesByID    map[int64]*api.Line
	linesByCode  map[string]*api.Line
	stationsByID map[int64]*api.Station
	routesByID   map[int64]*api.Route
	routesByLine map[int64][]api.Route
	stopsByRoute map[int64][]api.Stop
}

// NewTopology returns an empty topology store.
func NewTopology(svc TopologyAPI) *Topology {
	return &Topology{
		apiSvc:       svc,
		linesByID:    map[int64]*api.Line{},
		linesByCode:  map[string]*api.Line{},
		stationsByID: map[int64]*api.Station{},
		routesByID:   map[int64]*api.Route{},
		routesByLine: map[int64][]api.Route{},
		stopsByRoute: map[int64][]api.Stop{},
	}
}

// Refresh reloads lines, stations, and routes and rebuilds every index.
// On any failure the previous cache generation is kept untouched.
func (t *Topology) Refresh(ctx context.Context) error {
	lines, err := t.apiSvc.GetAllLines(ctx)
	if err != nil {
		return err
	}
	stations, err := t.apiSvc.GetAllStations(ctx)
	if err != nil {
		return err
	}
	routes, err := t.apiSvc.GetAllRoutes(ctx)
	if err != nil {
		return err
	}

	linesByID := make(map[int64]*api.Line, len(lines))
	linesByCode := make(map[string]*api.Line, len(lines))
	for i := range lines {
		linesByID[lines[i].ID] = &lines[i]
		linesByCode[lines[i].Code] = &lines[i]
	}
	stationsByID := make(map[int64]*api.Station, len(stations))
	for i := range stations {
		stationsByID[stations[i].ID] = &stations[i]
	}
	routesByID := make(map[int64]*api.Route, len(routes))
	routesByLine := make(map[int64][]api.Route)
	for i := range routes {
		routesByID[routes[i].ID] = &routes[i]
		routesByLine[routes[i].LineID] = append(routesByLine[routes[i].LineID], routes[i])
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = lines
	t.stations = stations
	t.routes = routes
	t.linesByID = linesByID
	t.linesByCode = linesByCode
	t.stationsByID = stationsByID
	t.routesByID = routesByID
	t.routesByLine = routesByLine
	// Stop sequences were loaded against the previous generation.
	t.stopsByRoute = map[int64][]api.Stop{}
	return nil
}

// Lines returns the cached lines in backend order.
func (t *Topology) Lines() []api.Line {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]api.Line(nil), t.lines...)
}

// Stations returns the cached stations in backend order.
func (t *Topology) Stations() []api.Station {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]api.Station(nil), t.stations...)
}

// Routes returns the cached routes in backend order.
func (t *Topology) Routes() []api.Route {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]api.Route(nil), t.routes...)
}

// LineByID looks up a cached line.
func (t *Topology) LineByID(id int64) (api.Line, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if l, ok := t.linesByID[id]; ok {
		return *l, true
	}
	return api.Line{}, false
}

// LineByCode looks up a cached line by its code, e.g. "L1".
func (t *Topology) LineByCode(code string) (api.Line, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if l, ok := t.linesByCode[code]; ok {
		return *l, true
	}
	return api.Line{}, false
}

// StationByID looks up a cached station.
func (t *Topology) StationByID(id int64) (api.Station, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if s, ok := t.stationsByID[id]; ok {
		return *s, true
	}
	return api.Station{}, false
}

// RouteByID looks up a cached route.
func (t *Topology) RouteByID(id int64) (api.Route, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if r, ok := t.routesByID[id]; ok {
		return *r, true
	}
	return api.Route{}, false
}

// RoutesByLine returns the cached routes of one line.
func (t *Topology) RoutesByLine(lineID int64) []api.Route {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]api.Route(nil), t.routesByLine[lineID]...)
}

// TransferStations filters the cached stations down to interchanges.
func (t *Topology) TransferStations() []api.Station {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []api.Station
	for _, s := range t.stations {
		if s.IsTransferStation {
			out = append(out, s)
		}
	}
	return out
}

// StopsForRoute returns the stop sequence of a route, loading it from
// the backend on first use and caching it until the next Refresh.
func (t *Topology) StopsForRoute(ctx context.Context, routeID int64) ([]api.Stop, error) {
	t.mu.RLock()
	stops, ok := t.stopsByRoute[routeID]
	t.mu.RUnlock()
	if ok {
		return append([]api.Stop(nil), stops...), nil
	}

	stops, err := t.apiSvc.GetStopsByRouteID(ctx, routeID)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.stopsByRoute[routeID] = stops
	t.mu.Unlock()
	return append([]api.Stop(nil), stops...), nil
}
