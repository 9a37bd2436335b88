package usecases

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/lintang-b-s/osmroute/pkg"
	"github.com/lintang-b-s/osmroute/pkg/db"
	da "github.com/lintang-b-s/osmroute/pkg/datastructure"
	"github.com/lintang-b-s/osmroute/pkg/geo"
	"github.com/lintang-b-s/osmroute/pkg/util"
	"go.uber.org/zap"
)

var ERRPATHNOTFOUND = fmt.Errorf("no path found")

// RoutingService turns routing requests into journeys. resolves endpoints
// through the database, runs the engine built by the factory and
// materializes the path into route elements.
type RoutingService struct {
	log          *zap.Logger
	factory      ComputationFactory
	database     db.RoutingDatabase
	spatialIndex SpatialIndex
	searchRadius float64
}

func NewRoutingService(log *zap.Logger, factory ComputationFactory, database db.RoutingDatabase,
	spatialIndex SpatialIndex, searchRadius float64) *RoutingService {
	return &RoutingService{
		log:          log,
		factory:      factory,
		database:     database,
		spatialIndex: spatialIndex,
		searchRadius: searchRadius,
	}
}

// Route answers one routing request. total, the response carries empty
// journeys when an endpoint does not resolve or no route exists. the
// reported time spans from entry to just before the response is built and
// includes the database lookups done for name resolution.
func (rs *RoutingService) Route(request *da.RoutingRequest) *da.RoutingResponse {
	startTime := time.Now()

	source, ok := rs.resolveNode(request.GetFrom())
	if !ok {
		return rs.emptyResponse(request, startTime)
	}
	destination, ok := rs.resolveNode(request.GetTo())
	if !ok {
		return rs.emptyResponse(request, startTime)
	}

	computation := rs.factory.CreateAlgorithm(request.GetModes())
	path, found := computation.ComputeShortestPath([]*da.Node{source}, destination)
	if !found {
		return rs.emptyResponse(request, startTime)
	}

	journey := rs.buildJourney(request, path)

	elapsed := time.Since(startTime).Milliseconds()
	return da.NewRoutingResponse(elapsed, request.GetFrom(), request.GetTo(),
		[]da.Journey{journey})
}

// ShortestPath coordinate based query: both endpoints are snapped to the
// nearest node of the road network, the geometry comes back as an encoded
// polyline. travel time in seconds, distance in km.
func (rs *RoutingService) ShortestPath(origLat, origLon, dstLat, dstLon float64) (float64, float64, string, error) {
	source, ok := rs.spatialIndex.NearestNode(origLat, origLon, rs.searchRadius)
	if !ok {
		return 0, 0, "", util.WrapErrorf(ERRPATHNOTFOUND, util.ErrNotFound,
			"no road near %f,%f", origLat, origLon)
	}
	destination, ok := rs.spatialIndex.NearestNode(dstLat, dstLon, rs.searchRadius)
	if !ok {
		return 0, 0, "", util.WrapErrorf(ERRPATHNOTFOUND, util.ErrNotFound,
			"no road near %f,%f", dstLat, dstLon)
	}

	computation := rs.factory.CreateAlgorithm(pkg.CAR.Mask())
	path, found := computation.ComputeShortestPath([]*da.Node{source}, destination)
	if !found {
		return 0, 0, "", util.WrapErrorf(ERRPATHNOTFOUND, util.ErrNotFound,
			"no path found from %f,%f to %f,%f", origLat, origLon, dstLat, dstLon)
	}

	coords := make([]geo.Coordinate, 0, path.Length()+1)
	coords = append(coords, path.GetSource().GetCoordinate())
	distKm := 0.0
	for _, e := range path.GetEdges() {
		coords = append(coords, e.GetDestination().GetCoordinate())
		distKm += geo.CalculateHaversineDistance(
			e.GetSource().GetLat(), e.GetSource().GetLon(),
			e.GetDestination().GetLat(), e.GetDestination().GetLon())
	}

	return path.GetTotalCost(), distKm, geo.PolylineFromCoords(coords), nil
}

func (rs *RoutingService) resolveNode(osmId int64) (*da.Node, bool) {
	internalId, ok := rs.database.GetInternalNodeByOsm(osmId)
	if !ok {
		return nil, false
	}
	return rs.factory.GetGraph().GetNodeById(internalId)
}

func (rs *RoutingService) emptyResponse(request *da.RoutingRequest, startTime time.Time) *da.RoutingResponse {
	elapsed := time.Since(startTime).Milliseconds()
	return da.NewRoutingResponse(elapsed, request.GetFrom(), request.GetTo(),
		[]da.Journey{})
}

func (rs *RoutingService) buildJourney(request *da.RoutingRequest, path *da.Path) da.Journey {
	depTime := request.GetDepTime()
	duration := int64(math.Ceil(path.GetTotalCost() * 1000.0))
	arrTime := depTime + duration

	route := make([]da.RouteElement, 0, 3)
	route = append(route, rs.buildNode(path.GetSource()))

	if path.Length() != 0 {
		route = append(route, rs.buildPath(path))
		route = append(route, rs.buildNode(path.GetDestination()))
	}

	return da.NewJourney(depTime, arrTime, route)
}

func (rs *RoutingService) buildNode(node *da.Node) da.RouteElement {
	name := ""
	if osmId, ok := rs.database.GetOsmNodeByInternal(node.GetID()); ok {
		if n, ok := rs.database.GetNodeName(osmId); ok {
			name = n
		}
	}
	return da.NewNodeRouteElement(name, float32(node.GetLat()), float32(node.GetLon()))
}

// buildPath the element name is the source node name followed by the name
// of every way whose id differs from the previous edge, so a road that
// continues over many edges is named once.
func (rs *RoutingService) buildPath(path *da.Path) da.RouteElement {
	nameParts := make([]string, 0)
	geom := make([][2]float32, 0, path.Length()+1)

	source := path.GetSource()
	geom = append(geom, [2]float32{float32(source.GetLat()), float32(source.GetLon())})
	if osmId, ok := rs.database.GetOsmNodeByInternal(source.GetID()); ok {
		if name, ok := rs.database.GetNodeName(osmId); ok {
			nameParts = append(nameParts, name)
		}
	}

	lastWayId := int32(-1)
	for _, edge := range path.GetEdges() {
		destination := edge.GetDestination()
		geom = append(geom, [2]float32{float32(destination.GetLat()), float32(destination.GetLon())})

		wayId := edge.GetWayId()
		if wayId != lastWayId {
			if osmWayId, ok := rs.database.GetOsmWayByInternal(wayId); ok {
				if name, ok := rs.database.GetWayName(osmWayId); ok {
					nameParts = append(nameParts, name)
				}
			}
		}
		lastWayId = wayId
	}

	// TODO split the path and insert node elements when the transportation
	// mode changes mid-route
	return da.NewPathRouteElement(pkg.CAR, strings.Join(nameParts, ", "), geom)
}
