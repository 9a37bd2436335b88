package metrics

import (
	da "github.com/lintang-b-s/osmroute/pkg/datastructure"
	"github.com/lintang-b-s/osmroute/pkg/geo"
)

// Metric estimator for the cost between two nodes. implementations used as
// a* heuristics must be admissible (never over-estimate the true shortest
// path cost) and monotone, otherwise the search loses optimality.
type Metric interface {
	Distance(a, b *da.Node) float64
}

// AsTheCrowFliesMetric straight-line lower bound. great-circle distance
// divided by the fastest legal speed in the graph gives the travel time in
// seconds no route can beat.
type AsTheCrowFliesMetric struct {
	maxSpeedKmh float64
}

func NewAsTheCrowFliesMetric(maxSpeedKmh float64) *AsTheCrowFliesMetric {
	return &AsTheCrowFliesMetric{maxSpeedKmh: maxSpeedKmh}
}

func (m *AsTheCrowFliesMetric) Distance(a, b *da.Node) float64 {
	distKm := geo.CalculateHaversineDistance(a.GetLat(), a.GetLon(), b.GetLat(), b.GetLon())
	return distKm / m.maxSpeedKmh * 3600.0
}

// ZeroMetric estimates every distance as 0. degrades a* to plain dijkstra,
// useful as a baseline under test.
type ZeroMetric struct{}

func NewZeroMetric() *ZeroMetric {
	return &ZeroMetric{}
}

func (m *ZeroMetric) Distance(a, b *da.Node) float64 {
	return 0
}
