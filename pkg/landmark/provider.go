package landmark

import (
	"math/rand"

	da "github.com/lintang-b-s/osmroute/pkg/datastructure"
	"github.com/lintang-b-s/osmroute/pkg/routing"
	"go.uber.org/zap"
)

// GreedyFarthestLandmarks picks landmarks by greedy farthest selection: the
// first landmark is drawn uniformly at random, every further one is the
// node of greatest settled cost in a multi-source one-to-all search seeded
// with all landmarks chosen so far. spreads landmarks towards the border of
// the network which gives the tightest ALT bounds in practice.
type GreedyFarthestLandmarks struct {
	graph       *da.Graph
	computation routing.ShortestPathComputation
	rng         *rand.Rand
	logger      *zap.Logger
}

func NewGreedyFarthestLandmarks(graph *da.Graph, seed int64, logger *zap.Logger) *GreedyFarthestLandmarks {
	return &GreedyFarthestLandmarks{
		graph:       graph,
		computation: routing.NewModuleDijkstra(graph),
		rng:         rand.New(rand.NewSource(seed)),
		logger:      logger,
	}
}

// GetLandmarks up to min(amount, number of nodes) landmark nodes. nodes
// unreachable from every already chosen landmark are never picked. ties on
// the farthest cost go to the lowest node id so a fixed seed reproduces the
// same set.
func (p *GreedyFarthestLandmarks) GetLandmarks(amount int) []*da.Node {
	nodes := p.graph.GetNodes()
	if len(nodes) == 0 || amount <= 0 {
		return []*da.Node{}
	}

	amountToUse := amount
	if amountToUse > len(nodes) {
		amountToUse = len(nodes)
	}

	landmarks := make([]*da.Node, 0, amountToUse)
	landmarks = append(landmarks, nodes[p.rng.Intn(len(nodes))])

	for i := 1; i < amountToUse; i++ {
		costs := p.computation.ComputeShortestPathCostsReachable(landmarks)

		var (
			farthest        *da.Node
			highestCost     = -1.0
			alreadyLandmark = make(map[int32]bool, len(landmarks))
		)
		for _, l := range landmarks {
			alreadyLandmark[l.GetID()] = true
		}

		for id, cost := range costs {
			if alreadyLandmark[id] {
				continue
			}
			node, ok := p.graph.GetNodeById(id)
			if !ok {
				continue
			}
			if cost > highestCost || (cost == highestCost && node.GetID() < farthest.GetID()) {
				highestCost = cost
				farthest = node
			}
		}

		if farthest == nil {
			// nothing else is reachable, stop early
			break
		}
		landmarks = append(landmarks, farthest)
	}

	return landmarks
}

// PreprocessALT selects k landmarks and fills their forward and backward
// cost tables.
func (p *GreedyFarthestLandmarks) PreprocessALT(k int) *Landmarks {
	p.logger.Info("computing landmarks....", zap.Int("k", k))

	lm := NewLandmarks()
	lm.landmarks = p.GetLandmarks(k)
	lm.buildTables(p.graph, p.logger)

	return lm
}
