package controllers

// routeRequest wire format of a routing request. From and To are
// openstreetmap node ids, DepTime epoch milliseconds, Modes the accepted
// transportation mode codes.
type routeRequest struct {
	DepTime int64 `json:"depTime" validate:"required,min=0"`
	Modes   []int `json:"modes" validate:"dive,min=0,max=3"`
	From    int64 `json:"from" validate:"required"`
	To      int64 `json:"to" validate:"required"`
}

type shortestPathRequest struct {
	OriginLat      float64 `json:"origin_lat" validate:"required,min=-90,max=90"`
	OriginLon      float64 `json:"origin_lon" validate:"required,min=-180,max=180"`
	DestinationLat float64 `json:"destination_lat" validate:"required,min=-90,max=90"`
	DestinationLon float64 `json:"destination_lon" validate:"required,min=-180,max=180"`
}

type shortestPathResponse struct {
	Eta  float64 `json:"eta"`
	Path string  `json:"path"`
	Dist float64 `json:"distance"`
}

func NewShortestPathResponse(eta, dist float64, path string) shortestPathResponse {
	return shortestPathResponse{
		Eta:  eta,
		Path: path,
		Dist: dist,
	}
}
