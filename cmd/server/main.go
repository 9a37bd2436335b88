package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/lintang-b-s/osmroute/pkg/datastructure"
	"github.com/lintang-b-s/osmroute/pkg/http"
	"github.com/lintang-b-s/osmroute/pkg/http/usecases"
	"github.com/lintang-b-s/osmroute/pkg/landmark"
	"github.com/lintang-b-s/osmroute/pkg/logger"
	"github.com/lintang-b-s/osmroute/pkg/osmparser"
	"github.com/lintang-b-s/osmroute/pkg/routing"
	"github.com/lintang-b-s/osmroute/pkg/spatialindex"
	"github.com/lintang-b-s/osmroute/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	searchRadius = flag.Float64("search_radius", 0.4, "nearest node snapping radius in km")
	useRateLimit = flag.Bool("rate_limit", false, "rate limit incoming requests per client ip")
)

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	if err := util.ReadConfig(); err != nil {
		log.Warn("no config file found, using defaults", zap.Error(err))
	}

	parser := osmparser.NewOSMParser(log)
	graph, database, err := parser.Parse(viper.GetString("OSM_FILE"))
	if err != nil {
		log.Fatal("parsing openstreetmap file", zap.Error(err))
	}

	pruneToLargestScc(graph, log)

	landmarks := loadOrComputeLandmarks(graph, log)

	policy := routing.ParseAlgorithmPolicy(viper.GetString("ROUTING_ALGORITHM"))
	factory := routing.NewShortestPathComputationFactory(graph, policy,
		landmarks, database.GetWayModes)

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, log)

	routingService := usecases.NewRoutingService(log, factory, database, rtree, *searchRadius)

	api := http.NewServer(log)
	ctx, cancel := context.WithCancel(context.Background())
	if _, err := api.Use(ctx, log, *useRateLimit, routingService); err != nil {
		log.Fatal("starting http server", zap.Error(err))
	}

	sig := http.GracefulShutdown()
	log.Info("osmroute server stopped", zap.String("signal", sig.String()))
	cancel()
	time.Sleep(time.Second)
}

// pruneToLargestScc keeps only the largest strongly connected component,
// queries between the surviving nodes always have an answer in both
// directions.
func pruneToLargestScc(graph *datastructure.Graph, log *zap.Logger) {
	largest := largestSccSet(graph)
	removed := 0
	for _, node := range graph.GetNodes() {
		if _, keep := largest[node.GetID()]; !keep {
			graph.RemoveNode(node)
			removed++
		}
	}
	log.Info("pruned graph to largest strongly connected component",
		zap.Int("removed_nodes", removed), zap.Int("remaining_nodes", graph.NumberOfNodes()))
}

func largestSccSet(graph *datastructure.Graph) map[int32]struct{} {
	largest := datastructure.LargestScc(graph)
	set := make(map[int32]struct{}, len(largest))
	for _, node := range largest {
		set[node.GetID()] = struct{}{}
	}
	return set
}

func loadOrComputeLandmarks(graph *datastructure.Graph, log *zap.Logger) *landmark.Landmarks {
	landmarkFile := viper.GetString("LANDMARK_FILE")
	if _, err := os.Stat(landmarkFile); err == nil {
		landmarks, err := landmark.ReadLandmarks(landmarkFile)
		if err == nil {
			log.Info("loaded landmark tables", zap.String("file", landmarkFile))
			return landmarks
		}
		log.Warn("reading landmark tables, recomputing", zap.Error(err))
	}

	provider := landmark.NewGreedyFarthestLandmarks(graph, time.Now().UnixNano(), log)
	landmarks := provider.PreprocessALT(viper.GetInt("LANDMARK_COUNT"))
	if err := landmarks.WriteLandmarks(landmarkFile); err != nil {
		log.Warn("persisting landmark tables", zap.Error(err))
	}
	return landmarks
}
