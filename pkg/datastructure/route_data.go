package datastructure

import (
	"github.com/lintang-b-s/osmroute/pkg"
)

const (
	ROUTE_ELEMENT_NODE = "node"
	ROUTE_ELEMENT_PATH = "path"
)

// RoutingRequest parsed routing query. From and To are openstreetmap node
// ids, DepTime is epoch milliseconds, Modes the transportation modes the
// client accepts on the route.
type RoutingRequest struct {
	depTime int64
	modes   pkg.ModeMask
	from    int64
	to      int64
}

func NewRoutingRequest(depTime int64, modes pkg.ModeMask, from, to int64) *RoutingRequest {
	return &RoutingRequest{
		depTime: depTime,
		modes:   modes,
		from:    from,
		to:      to,
	}
}

func (r *RoutingRequest) GetDepTime() int64 {
	return r.depTime
}

func (r *RoutingRequest) GetModes() pkg.ModeMask {
	return r.modes
}

func (r *RoutingRequest) GetFrom() int64 {
	return r.from
}

func (r *RoutingRequest) GetTo() int64 {
	return r.to
}

// RouteElement one leg of a journey. a node element marks a stop with a
// single coordinate, a path element carries the traversed geometry and the
// transportation mode used on it. Mode is nil for node elements so it stays
// off the wire.
type RouteElement struct {
	Type string       `json:"type"`
	Mode *int         `json:"mode,omitempty"`
	Name string       `json:"name"`
	Geom [][2]float32 `json:"geom"`
}

func NewNodeRouteElement(name string, lat, lon float32) RouteElement {
	return RouteElement{
		Type: ROUTE_ELEMENT_NODE,
		Name: name,
		Geom: [][2]float32{{lat, lon}},
	}
}

func NewPathRouteElement(mode pkg.TransportationMode, name string, geom [][2]float32) RouteElement {
	m := int(mode)
	return RouteElement{
		Type: ROUTE_ELEMENT_PATH,
		Mode: &m,
		Name: name,
		Geom: geom,
	}
}

type Journey struct {
	DepTime int64          `json:"depTime"`
	ArrTime int64          `json:"arrTime"`
	Route   []RouteElement `json:"route"`
}

func NewJourney(depTime, arrTime int64, route []RouteElement) Journey {
	return Journey{
		DepTime: depTime,
		ArrTime: arrTime,
		Route:   route,
	}
}

// RoutingResponse answer to a routing request. Time is the milliseconds
// spent computing and building the answer. Journeys is empty when source or
// destination could not be resolved or no route exists.
type RoutingResponse struct {
	Time     int64     `json:"time"`
	From     int64     `json:"from"`
	To       int64     `json:"to"`
	Journeys []Journey `json:"journeys"`
}

func NewRoutingResponse(time int64, from, to int64, journeys []Journey) *RoutingResponse {
	return &RoutingResponse{
		Time:     time,
		From:     from,
		To:       to,
		Journeys: journeys,
	}
}
