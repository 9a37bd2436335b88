package routing

import (
	"github.com/lintang-b-s/osmroute/pkg"
	da "github.com/lintang-b-s/osmroute/pkg/datastructure"
)

// WayModesLookup allowed transportation modes of a way, keyed by the
// internal way id carried on edges.
type WayModesLookup func(wayId int32) pkg.ModeMask

// TransportationModeModule excludes edges whose way does not admit any of
// the transportation modes requested by the client.
type TransportationModeModule struct {
	ModuleBase
	wayModes  WayModesLookup
	requested pkg.ModeMask
}

func NewTransportationModeModule(wayModes WayModesLookup, requested pkg.ModeMask) *TransportationModeModule {
	return &TransportationModeModule{
		wayModes:  wayModes,
		requested: requested,
	}
}

func (m *TransportationModeModule) ConsiderEdgeForRelaxation(edge *da.Edge, baseCost float64) (float64, bool) {
	if m.wayModes == nil || m.requested == 0 {
		return baseCost, true
	}
	if !m.wayModes(edge.GetWayId()).Intersects(m.requested) {
		return 0, false
	}
	return baseCost, true
}
