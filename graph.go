package navigator

// RouteGraph is an undirected adjacency structure over route IDs. Two routes
// are adjacent when at least one stop name appears in both stop listings.
// Neighbor lists keep first-seen insertion order, so traversal order is
// stable for the lifetime of the graph.
type RouteGraph struct {
	order    []RouteID
	adjacent map[RouteID][]RouteID
	member   map[RouteID]map[RouteID]struct{}
}

// BuildRouteGraph derives the adjacency graph from a stop-route index. Every
// pair of routes in one stop's route list becomes mutually adjacent. A route
// is trivially adjacent to itself; the path finder's visited set keeps that
// from acting as a productive self-loop.
func BuildRouteGraph(idx StopRouteIndex) *RouteGraph {
	g := &RouteGraph{
		adjacent: map[RouteID][]RouteID{},
		member:   map[RouteID]map[RouteID]struct{}{},
	}
	for _, routes := range idx {
		for _, r := range routes {
			for _, other := range routes {
				g.addEdge(r, other)
			}
		}
	}
	return g
}

func (g *RouteGraph) addEdge(from, to RouteID) {
	set, ok := g.member[from]
	if !ok {
		set = map[RouteID]struct{}{}
		g.member[from] = set
		g.order = append(g.order, from)
	}
	if _, dup := set[to]; dup {
		return
	}
	set[to] = struct{}{}
	g.adjacent[from] = append(g.adjacent[from], to)
}

// Neighbors returns the routes adjacent to r, including r itself.
func (g *RouteGraph) Neighbors(r RouteID) []RouteID { return g.adjacent[r] }

// Contains reports whether r appears as a vertex in the graph.
func (g *RouteGraph) Contains(r RouteID) bool {
	_, ok := g.member[r]
	return ok
}

// Routes returns every vertex in first-seen order.
func (g *RouteGraph) Routes() []RouteID { return g.order }
