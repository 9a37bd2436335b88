package routing

import (
	da "github.com/lintang-b-s/osmroute/pkg/datastructure"
	"github.com/lintang-b-s/osmroute/pkg/metrics"
)

// AStarModule turns the engine into a*: the queue key of a node becomes its
// tentative cost plus the metric's estimate towards the destination. the
// metric must be monotone and admissible.
type AStarModule struct {
	ModuleBase
	metric metrics.Metric
}

func NewAStarModule(metric metrics.Metric) *AStarModule {
	return &AStarModule{metric: metric}
}

func (m *AStarModule) GetEstimatedDistance(node, destination *da.Node) (float64, bool) {
	return m.metric.Distance(node, destination), true
}
