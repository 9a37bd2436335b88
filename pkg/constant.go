package pkg

// enum of transportation modes accepted in routing requests. the codes are
// part of the wire format, do not reorder.
type TransportationMode uint8

const (
	CAR TransportationMode = iota
	BIKE
	FOOT
	TRAM
)

// ModeMask bitmask over TransportationMode, one bit per mode.
type ModeMask uint8

func (m TransportationMode) Mask() ModeMask {
	return ModeMask(1 << m)
}

func (m ModeMask) Contains(mode TransportationMode) bool {
	return m&mode.Mask() != 0
}

func (m ModeMask) Intersects(other ModeMask) bool {
	return m&other != 0
}

const (
	INF_WEIGHT float64 = 1e15

	// fastest legal speed assumed anywhere in the graph, used by the
	// as-the-crow-flies lower bound. must not be smaller than the real
	// maximum or the heuristic stops being admissible.
	MAX_ROAD_SPEED_KMH = 130.0

	NERF_MAXSPEED_OSM = 0.9
)

const (
	DEBUG = false
)

type OsmHighwayType uint8

// enum buat osm highway buat routing: https://wiki.openstreetmap.org/wiki/OSM_tags_for_routing/Telenav
const (
	MOTORWAY       OsmHighwayType = 0
	TRUNK          OsmHighwayType = 1
	PRIMARY        OsmHighwayType = 2
	SECONDARY      OsmHighwayType = 3
	TERTIARY       OsmHighwayType = 4
	RESIDENTIAL    OsmHighwayType = 5
	SERVICE        OsmHighwayType = 6
	UNCLASSIFIED   OsmHighwayType = 7
	MOTORWAY_LINK  OsmHighwayType = 8
	TRUNK_LINK     OsmHighwayType = 9
	PRIMARY_LINK   OsmHighwayType = 10
	SECONDARY_LINK OsmHighwayType = 11
	TERTIARY_LINK  OsmHighwayType = 12
	LIVING_STREET  OsmHighwayType = 13
	ROAD           OsmHighwayType = 14
	UNKNOWN        OsmHighwayType = 15
)

func GetHighwayType(roadType string) OsmHighwayType {
	switch roadType {
	case "motorway":
		return MOTORWAY
	case "trunk":
		return TRUNK
	case "primary":
		return PRIMARY
	case "secondary":
		return SECONDARY
	case "tertiary":
		return TERTIARY
	case "residential":
		return RESIDENTIAL
	case "service":
		return SERVICE
	case "unclassified":
		return UNCLASSIFIED
	case "motorway_link":
		return MOTORWAY_LINK
	case "trunk_link":
		return TRUNK_LINK
	case "primary_link":
		return PRIMARY_LINK
	case "secondary_link":
		return SECONDARY_LINK
	case "tertiary_link":
		return TERTIARY_LINK
	case "living_street":
		return LIVING_STREET
	case "road":
		return ROAD
	default:
		return UNKNOWN
	}
}

// DefaultSpeedKmh default travel speed for a highway type when the way has
// no maxspeed tag.
func (h OsmHighwayType) DefaultSpeedKmh() float64 {
	switch h {
	case MOTORWAY:
		return 100
	case TRUNK:
		return 80
	case PRIMARY:
		return 60
	case SECONDARY:
		return 50
	case TERTIARY:
		return 40
	case RESIDENTIAL:
		return 30
	case SERVICE:
		return 15
	case UNCLASSIFIED:
		return 30
	case MOTORWAY_LINK:
		return 60
	case TRUNK_LINK:
		return 50
	case PRIMARY_LINK:
		return 40
	case SECONDARY_LINK:
		return 35
	case TERTIARY_LINK:
		return 30
	case LIVING_STREET:
		return 10
	case ROAD:
		return 30
	default:
		return 20
	}
}

// ModesFor allowed transportation modes for a highway type. cars are kept
// off footpath-class roads by the parser before this is consulted.
func (h OsmHighwayType) ModesFor() ModeMask {
	switch h {
	case MOTORWAY, MOTORWAY_LINK, TRUNK, TRUNK_LINK:
		return CAR.Mask()
	case LIVING_STREET:
		return CAR.Mask() | BIKE.Mask() | FOOT.Mask()
	case RESIDENTIAL, SERVICE, UNCLASSIFIED, ROAD:
		return CAR.Mask() | BIKE.Mask() | FOOT.Mask()
	default:
		return CAR.Mask() | BIKE.Mask()
	}
}
