package db

import (
	"sync"

	"github.com/lintang-b-s/osmroute/pkg"
)

// RoutingDatabase metadata lookups the routing server needs: mapping
// between openstreetmap ids and the dense internal ids of the graph, plus
// the display names of nodes and ways. implementations must be safe for
// concurrent reads, writes happen only during ingestion.
type RoutingDatabase interface {
	GetInternalNodeByOsm(osmId int64) (int32, bool)
	GetOsmNodeByInternal(id int32) (int64, bool)
	GetOsmWayByInternal(wayId int32) (int64, bool)
	GetNodeName(osmId int64) (string, bool)
	GetWayName(osmId int64) (string, bool)
	GetWayModes(wayId int32) pkg.ModeMask
}

// InMemoryDatabase routing database backed by plain maps, populated by the
// osm parser during ingestion and frozen afterwards.
type InMemoryDatabase struct {
	mu sync.RWMutex

	internalByOsmNode map[int64]int32
	osmNodeByInternal map[int32]int64
	osmWayByInternal  map[int32]int64
	nodeNames         map[int64]string
	wayNames          map[int64]string
	wayModes          map[int32]pkg.ModeMask
}

func NewInMemoryDatabase() *InMemoryDatabase {
	return &InMemoryDatabase{
		internalByOsmNode: make(map[int64]int32),
		osmNodeByInternal: make(map[int32]int64),
		osmWayByInternal:  make(map[int32]int64),
		nodeNames:         make(map[int64]string),
		wayNames:          make(map[int64]string),
		wayModes:          make(map[int32]pkg.ModeMask),
	}
}

func (d *InMemoryDatabase) AddNodeMapping(osmId int64, internalId int32) {
	d.mu.Lock()
	d.internalByOsmNode[osmId] = internalId
	d.osmNodeByInternal[internalId] = osmId
	d.mu.Unlock()
}

func (d *InMemoryDatabase) AddWayMapping(osmId int64, internalId int32, modes pkg.ModeMask) {
	d.mu.Lock()
	d.osmWayByInternal[internalId] = osmId
	d.wayModes[internalId] = modes
	d.mu.Unlock()
}

func (d *InMemoryDatabase) SetNodeName(osmId int64, name string) {
	d.mu.Lock()
	d.nodeNames[osmId] = name
	d.mu.Unlock()
}

func (d *InMemoryDatabase) SetWayName(osmId int64, name string) {
	d.mu.Lock()
	d.wayNames[osmId] = name
	d.mu.Unlock()
}

func (d *InMemoryDatabase) GetInternalNodeByOsm(osmId int64) (int32, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	id, ok := d.internalByOsmNode[osmId]
	return id, ok
}

func (d *InMemoryDatabase) GetOsmNodeByInternal(id int32) (int64, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	osmId, ok := d.osmNodeByInternal[id]
	return osmId, ok
}

func (d *InMemoryDatabase) GetOsmWayByInternal(wayId int32) (int64, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	osmId, ok := d.osmWayByInternal[wayId]
	return osmId, ok
}

func (d *InMemoryDatabase) GetNodeName(osmId int64) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	name, ok := d.nodeNames[osmId]
	return name, ok
}

func (d *InMemoryDatabase) GetWayName(osmId int64) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	name, ok := d.wayNames[osmId]
	return name, ok
}

func (d *InMemoryDatabase) GetWayModes(wayId int32) pkg.ModeMask {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.wayModes[wayId]
}
