package geo

import (
	"github.com/golang/geo/s2"
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encode coordinates as a google encoded polyline string.
func PolylineFromCoords(coords []Coordinate) string {
	latLons := make([][]float64, len(coords))
	for i, c := range coords {
		latLons[i] = []float64{c.Lat, c.Lon}
	}
	return string(polyline.EncodeCoords(latLons))
}

// PointFromCoordinate coordinate as a point on the unit sphere.
func PointFromCoordinate(c Coordinate) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(c.Lat, c.Lon))
}

// AngleDistance distance between two coordinates computed on the sphere via
// s2, in km. slower than haversine but stable for near-antipodal points.
func AngleDistance(a, b Coordinate) float64 {
	pa := PointFromCoordinate(a)
	pb := PointFromCoordinate(b)
	return pa.Distance(pb).Radians() * earthRadiusKM
}
