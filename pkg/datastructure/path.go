package datastructure

// Path ordered sequence of edges whose destinations chain. an empty path
// with cost 0 represents a query where source equals destination.
type Path struct {
	source    *Node
	edges     []*Edge
	totalCost float64
}

// NewEmptyPath path of length 0 and cost 0 whose source and destination
// are both the given node.
func NewEmptyPath(source *Node) *Path {
	return &Path{
		source: source,
		edges:  make([]*Edge, 0),
	}
}

func NewPath(source *Node, edges []*Edge) *Path {
	p := NewEmptyPath(source)
	for _, e := range edges {
		p.AddEdge(e)
	}
	return p
}

func (p *Path) AddEdge(e *Edge) {
	p.edges = append(p.edges, e)
	p.totalCost += e.GetCost()
}

func (p *Path) GetSource() *Node {
	if len(p.edges) != 0 {
		return p.edges[0].GetSource()
	}
	return p.source
}

func (p *Path) GetDestination() *Node {
	if len(p.edges) != 0 {
		return p.edges[len(p.edges)-1].GetDestination()
	}
	return p.source
}

func (p *Path) GetTotalCost() float64 {
	return p.totalCost
}

func (p *Path) Length() int {
	return len(p.edges)
}

func (p *Path) GetEdges() []*Edge {
	return p.edges
}
