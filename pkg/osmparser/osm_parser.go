package osmparser

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"

	"github.com/lintang-b-s/osmroute/pkg"
	"github.com/lintang-b-s/osmroute/pkg/db"
	da "github.com/lintang-b-s/osmroute/pkg/datastructure"
	"github.com/lintang-b-s/osmroute/pkg/geo"
	"go.uber.org/zap"
)

var acceptedHighway = map[string]struct{}{
	"motorway": {}, "trunk": {}, "primary": {}, "secondary": {},
	"tertiary": {}, "residential": {}, "service": {}, "unclassified": {},
	"motorway_link": {}, "trunk_link": {}, "primary_link": {},
	"secondary_link": {}, "tertiary_link": {}, "living_street": {}, "road": {},
}

type osmWay struct {
	osmId   int64
	nodeIds []int64
	speedMs float64 // meter/second
	modes   pkg.ModeMask
	oneway  bool
	name    string
}

type OSMParser struct {
	logger *zap.Logger

	usedNodes map[int64]struct{}
	coords    map[int64][2]float64
}

func NewOSMParser(logger *zap.Logger) *OSMParser {
	return &OSMParser{
		logger:    logger,
		usedNodes: make(map[int64]struct{}),
		coords:    make(map[int64][2]float64),
	}
}

// Parse streams the pbf file twice, first to collect the accepted ways and
// the node ids they reference, then to pick up the coordinates and names of
// exactly those nodes. yields the frozen road graph plus the metadata
// database feeding name resolution.
func (p *OSMParser) Parse(mapFile string) (*da.Graph, *db.InMemoryDatabase, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	database := db.NewInMemoryDatabase()

	ways, err := p.scanWays(f)
	if err != nil {
		return nil, nil, err
	}
	p.logger.Sugar().Infof("scanned %d openstreetmap ways", len(ways))

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, nil, err
	}
	if err := p.scanNodes(f, database); err != nil {
		return nil, nil, err
	}
	p.logger.Sugar().Infof("scanned %d openstreetmap nodes", len(p.coords))

	graph := p.buildGraph(ways, database)
	p.logger.Sugar().Infof("road graph built: %d nodes, %d edges",
		graph.NumberOfNodes(), graph.NumberOfEdges())

	return graph, database, nil
}

func (p *OSMParser) scanWays(f *os.File) ([]osmWay, error) {
	scanner := osmpbf.New(context.Background(), f, 0)
	defer scanner.Close()

	ways := make([]osmWay, 0)
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeWay {
			continue
		}
		way := o.(*osm.Way)
		if len(way.Nodes) < 2 || !acceptOsmWay(way) {
			continue
		}

		highway := pkg.GetHighwayType(way.Tags.Find("highway"))
		speedKmh := parseMaxSpeed(way.Tags.Find("maxspeed"))
		if speedKmh <= 0 {
			speedKmh = highway.DefaultSpeedKmh()
		} else {
			speedKmh *= pkg.NERF_MAXSPEED_OSM
		}

		nodeIds := make([]int64, 0, len(way.Nodes))
		for _, node := range way.Nodes {
			nodeIds = append(nodeIds, int64(node.ID))
			p.usedNodes[int64(node.ID)] = struct{}{}
		}

		ways = append(ways, osmWay{
			osmId:   int64(way.ID),
			nodeIds: nodeIds,
			speedMs: speedKmh / 3.6,
			modes:   highway.ModesFor(),
			oneway:  isOneway(way),
			name:    way.Tags.Find("name"),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ways, nil
}

func (p *OSMParser) scanNodes(f *os.File, database *db.InMemoryDatabase) error {
	scanner := osmpbf.New(context.Background(), f, 0)
	defer scanner.Close()

	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeNode {
			continue
		}
		node := o.(*osm.Node)
		if _, used := p.usedNodes[int64(node.ID)]; !used {
			continue
		}
		p.coords[int64(node.ID)] = [2]float64{node.Lat, node.Lon}
		if name := node.Tags.Find("name"); name != "" {
			database.SetNodeName(int64(node.ID), name)
		}
	}
	return scanner.Err()
}

// buildGraph assigns dense internal ids in first-seen order and inserts one
// edge per consecutive node pair of every way, plus the opposite direction
// for two-way roads.
func (p *OSMParser) buildGraph(ways []osmWay, database *db.InMemoryDatabase) *da.Graph {
	graph := da.NewGraph()
	nodeOf := make(map[int64]*da.Node, len(p.coords))
	nextNodeId := int32(0)

	internalNode := func(osmId int64) (*da.Node, bool) {
		if n, ok := nodeOf[osmId]; ok {
			return n, true
		}
		coord, ok := p.coords[osmId]
		if !ok {
			// way references a node missing from the extract
			return nil, false
		}
		n := da.NewRoadNode(nextNodeId, float32(coord[0]), float32(coord[1]))
		database.AddNodeMapping(osmId, nextNodeId)
		nextNodeId++
		nodeOf[osmId] = n
		graph.AddNode(n)
		return n, true
	}

	for wayIdx, way := range ways {
		wayId := int32(wayIdx)
		database.AddWayMapping(way.osmId, wayId, way.modes)
		if way.name != "" {
			database.SetWayName(way.osmId, way.name)
		}

		for i := 0; i+1 < len(way.nodeIds); i++ {
			from, okFrom := internalNode(way.nodeIds[i])
			to, okTo := internalNode(way.nodeIds[i+1])
			if !okFrom || !okTo {
				continue
			}

			distM := geo.CalculateHaversineDistance(from.GetLat(), from.GetLon(),
				to.GetLat(), to.GetLon()) * 1000.0
			cost := distM / way.speedMs

			graph.AddEdge(da.NewEdge(from, to, cost, wayId))
			if !way.oneway {
				graph.AddEdge(da.NewEdge(to, from, cost, wayId))
			}
		}
	}

	return graph
}

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	if highway == "" {
		return false
	}
	_, ok := acceptedHighway[highway]
	return ok
}

func isOneway(way *osm.Way) bool {
	switch way.Tags.Find("oneway") {
	case "yes", "1", "true":
		return true
	}
	return way.Tags.Find("junction") == "roundabout"
}

// parseMaxSpeed kmh value of a maxspeed tag, 0 when the tag is absent or
// not understood. mph values are converted.
func parseMaxSpeed(tag string) float64 {
	if tag == "" {
		return 0
	}
	factor := 1.0
	if strings.HasSuffix(tag, "mph") {
		factor = 1.609344
		tag = strings.TrimSpace(strings.TrimSuffix(tag, "mph"))
	}
	speed, err := strconv.ParseFloat(tag, 64)
	if err != nil {
		return 0
	}
	return speed * factor
}
