package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Line is one metro line.
type Line struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Code     string  `json:"code"`
	Color    string  `json:"color"`
	Operator string  `json:"operator"`
	Routes   []Route `json:"routes,omitempty"`
}

// Station is one metro station, possibly shared by several lines.
type Station struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Code              string  `json:"code"`
	Address           string  `json:"address"`
	IsTransferStation bool    `json:"isTransferStation"`
	LineIDs           []int64 `json:"lineIds,omitempty"`
	Lines             []Line  `json:"lines,omitempty"`
}

// Route is a directed service pattern on a line.
type Route struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	LineID         int64     `json:"lineId"`
	StartStationID int64     `json:"startStationId"`
	EndStationID   int64     `json:"endStationId"`
	Distance       float64   `json:"distance"`
	EstimatedTime  int       `json:"estimatedTime"`
	StationIDs     []int64   `json:"stationIds,omitempty"`
	Stations       []Station `json:"stations,omitempty"`
}

// Stop binds a station into a route at a sequence position.
type Stop struct {
	ID            int64  `json:"id"`
	RouteID       int64  `json:"routeId"`
	StationID     int64  `json:"stationId"`
	Seq           int    `json:"seq"`
	ArrivalTime   string `json:"arrivalTime,omitempty"`
	DepartureTime string `json:"departureTime,omitempty"`
	RouteName     string `json:"routeName,omitempty"`
	StationName   string `json:"stationName,omitempty"`
}

// TrainTrip is one scheduled run of a train over a route.
type TrainTrip struct {
	ID          int64   `json:"id"`
	RouteID     int64   `json:"routeId"`
	TrainNumber string  `json:"trainNumber"`
	RunDate     string  `json:"runDate"`
	StopTimeIDs []int64 `json:"stopTimeIds,omitempty"`
	RouteName   string  `json:"routeName,omitempty"`
	LineName    string  `json:"lineName,omitempty"`
	LineColor   string  `json:"lineColor,omitempty"`

	StopTimes []StopTime `json:"stopTimes,omitempty"`
}

// StopTime is the arrival/departure of a trip at one stop.
type StopTime struct {
	ID            int64  `json:"id"`
	TrainTripID   int64  `json:"trainTripId"`
	StopID        int64  `json:"stopId"`
	ArrivalTime   string `json:"arrivalTime"`
	DepartureTime string `json:"departureTime"`
	StopSeq       int    `json:"stopSeq"`
}

// MetroService covers the /metro topology endpoints: lines, stations,
// routes, stops, and train trips.
type MetroService struct {
	c *Client
}

// Lines ---------------------------------------------------------------

func (s *MetroService) GetAllLines(ctx context.Context) ([]Line, error) {
	var out []Line
	err := s.c.get(ctx, "/metro/lines", &out)
	return out, err
}

func (s *MetroService) GetLineByID(ctx context.Context, id int64) (*Line, error) {
	var out Line
	if err := s.c.get(ctx, fmt.Sprintf("/metro/lines/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MetroService) GetLineByCode(ctx context.Context, code string) (*Line, error) {
	var out Line
	if err := s.c.get(ctx, "/metro/lines/code/"+url.PathEscape(code), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLineWithRoutes fetches a line with its routes populated.
func (s *MetroService) GetLineWithRoutes(ctx context.Context, id int64) (*Line, error) {
	var out Line
	if err := s.c.get(ctx, fmt.Sprintf("/metro/lines/%d/routes", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MetroService) CreateLine(ctx context.Context, in Line) (*Line, error) {
	var out Line
	if err := s.c.post(ctx, "/metro/lines", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MetroService) UpdateLine(ctx context.Context, id int64, in Line) (*Line, error) {
	var out Line
	if err := s.c.put(ctx, fmt.Sprintf("/metro/lines/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MetroService) DeleteLine(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/metro/lines/%d", id), nil)
}

// Stations ------------------------------------------------------------

func (s *MetroService) GetAllStations(ctx context.Context) ([]Station, error) {
	var out []Station
	err := s.c.get(ctx, "/metro/stations", &out)
	return out, err
}

func (s *MetroService) GetStationByID(ctx context.Context, id int64) (*Station, error) {
	var out Station
	if err := s.c.get(ctx, fmt.Sprintf("/metro/stations/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MetroService) GetStationByCode(ctx context.Context, code string) (*Station, error) {
	var out Station
	if err := s.c.get(ctx, "/metro/stations/code/"+url.PathEscape(code), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MetroService) GetStationsByLineID(ctx context.Context, lineID int64) ([]Station, error) {
	var out []Station
	err := s.c.get(ctx, fmt.Sprintf("/metro/stations/line/%d", lineID), &out)
	return out, err
}

func (s *MetroService) GetStationsByRouteID(ctx context.Context, routeID int64) ([]Station, error) {
	var out []Station
	err := s.c.get(ctx, fmt.Sprintf("/metro/stations/route/%d", routeID), &out)
	return out, err
}

func (s *MetroService) GetAllTransferStations(ctx context.Context) ([]Station, error) {
	var out []Station
	err := s.c.get(ctx, "/metro/stations/transfer", &out)
	return out, err
}

func (s *MetroService) CreateStation(ctx context.Context, in Station) (*Station, error) {
	var out Station
	if err := s.c.post(ctx, "/metro/stations", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MetroService) UpdateStation(ctx context.Context, id int64, in Station) (*Station, error) {
	var out Station
	if err := s.c.put(ctx, fmt.Sprintf("/metro/stations/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MetroService) DeleteStation(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/metro/stations/%d", id), nil)
}

// Routes --------------------------------------------------------------

func (s *MetroService) GetAllRoutes(ctx context.Context) ([]Route, error) {
	var out []Route
	err := s.c.get(ctx, "/metro/routes", &out)
	return out, err
}

func (s *MetroService) GetRouteByID(ctx context.Context, id int64) (*Route, error) {
	var out Route
	if err := s.c.get(ctx, fmt.Sprintf("/metro/routes/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MetroService) GetRoutesByLineID(ctx context.Context, lineID int64) ([]Route, error) {
	var out []Route
	err := s.c.get(ctx, fmt.Sprintf("/metro/routes/line/%d", lineID), &out)
	return out, err
}

// GetRouteWithStations fetches a route with its station list populated.
func (s *MetroService) GetRouteWithStations(ctx context.Context, id int64) (*Route, error) {
	var out Route
	if err := s.c.get(ctx, fmt.Sprintf("/metro/routes/%d/stations", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindRoutesBetweenStations asks the backend for service patterns
// connecting two stations.
func (s *MetroService) FindRoutesBetweenStations(ctx context.Context, fromStationID, toStationID int64) ([]Route, error) {
	params := url.Values{}
	params.Set("fromStationId", strconv.FormatInt(fromStationID, 10))
	params.Set("toStationId", strconv.FormatInt(toStationID, 10))

	var out []Route
	err := s.c.get(ctx, queryPath("/metro/routes/path", params), &out)
	return out, err
}

func (s *MetroService) CreateRoute(ctx context.Context, in Route) (*Route, error) {
	var out Route
	if err := s.c.post(ctx, "/metro/routes", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MetroService) UpdateRoute(ctx context.Context, id int64, in Route) (*Route, error) {
	var out Route
	if err := s.c.put(ctx, fmt.Sprintf("/metro/routes/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MetroService) DeleteRoute(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/metro/routes/%d", id), nil)
}

// Stops ---------------------------------------------------------------

func (s *MetroService) GetAllStops(ctx context.Context) ([]Stop, error) {
	var out []Stop
	err := s.c.get(ctx, "/metro/stops", &out)
	return out, err
}

func (s *MetroService) GetStopByID(ctx context.Context, id int64) (*Stop, error) {
	var out Stop
	if err := s.c.get(ctx, fmt.Sprintf("/metro/stops/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MetroService) GetStopsByRouteID(ctx context.Context, routeID int64) ([]Stop, error) {
	var out []Stop
	err := s.c.get(ctx, fmt.Sprintf("/metro/stops/route/%d", routeID), &out)
	return out, err
}

func (s *MetroService) CreateStop(ctx context.Context, in Stop) (*Stop, error) {
	var out Stop
	if err := s.c.post(ctx, "/metro/stops", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MetroService) UpdateStop(ctx context.Context, id int64, in Stop) (*Stop, error) {
	var out Stop
	if err := s.c.put(ctx, fmt.Sprintf("/metro/stops/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MetroService) DeleteStop(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/metro/stops/%d", id), nil)
}

// StopSequence pairs a stop with its new position on the route.
type StopSequence struct {
	ID  int64 `json:"id"`
	Seq int   `json:"seq"`
}

// UpdateStopSequences reorders a route's stops in one call.
func (s *MetroService) UpdateStopSequences(ctx context.Context, routeID int64, seqs []StopSequence) error {
	body := struct {
		RouteID       int64          `json:"routeId"`
		StopSequences []StopSequence `json:"stopSequences"`
	}{RouteID: routeID, StopSequences: seqs}
	return s.c.put(ctx, "/metro/stops/sequences", body, nil)
}

// Train trips ---------------------------------------------------------

func (s *MetroService) GetAllTrainTrips(ctx context.Context) ([]TrainTrip, error) {
	var out []TrainTrip
	err := s.c.get(ctx, "/metro/train-trips", &out)
	return out, err
}

func (s *MetroService) GetTrainTripByID(ctx context.Context, id int64) (*TrainTrip, error) {
	var out TrainTrip
	if err := s.c.get(ctx, fmt.Sprintf("/metro/train-trips/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MetroService) GetTrainTripsByRouteID(ctx context.Context, routeID int64) ([]TrainTrip, error) {
	var out []TrainTrip
	err := s.c.get(ctx, fmt.Sprintf("/metro/train-trips/route/%d", routeID), &out)
	return out, err
}

// GetTrainTripWithStopTimes fetches a trip with its stop times populated.
func (s *MetroService) GetTrainTripWithStopTimes(ctx context.Context, id int64) (*TrainTrip, error) {
	var out TrainTrip
	if err := s.c.get(ctx, fmt.Sprintf("/metro/train-trips/%d/stop-times", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MetroService) CreateTrainTrip(ctx context.Context, in TrainTrip) (*TrainTrip, error) {
	var out TrainTrip
	if err := s.c.post(ctx, "/metro/train-trips", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MetroService) UpdateTrainTrip(ctx context.Context, id int64, in TrainTrip) (*TrainTrip, error) {
	var out TrainTrip
	if err := s.c.put(ctx, fmt.Sprintf("/metro/train-trips/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MetroService) DeleteTrainTrip(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/metro/train-trips/%d", id), nil)
}
