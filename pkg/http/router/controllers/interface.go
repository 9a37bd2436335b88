package controllers

import (
	"github.com/lintang-b-s/osmroute/pkg/datastructure"
)

type RoutingService interface {
	Route(request *datastructure.RoutingRequest) *datastructure.RoutingResponse
	ShortestPath(origLat, origLon, dstLat, dstLon float64) (float64, float64, string, error)
}
