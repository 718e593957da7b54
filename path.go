package navigator

import "slices"

// FindPath returns the shortest sequence of routes connecting the two named
// stops, hopping between routes at shared stops.
//
// When both stops resolve to identical route lists that list is the answer
// (same stop, or a transfer point served by the same routes) and no search
// runs. Otherwise the search origin is the first route in the start stop's
// list and the target is the first route in the end stop's list, matching
// the index's insertion order.
//
// An unknown stop name yields a *LookupError for the side that failed to
// resolve; an exhausted search yields a *PathNotFoundError.
func FindPath(from, to StopName, g *RouteGraph, idx StopRouteIndex) ([]RouteID, error) {
	startRoutes := idx.Routes(from)
	endRoutes := idx.Routes(to)
	if len(startRoutes) == 0 {
		return nil, &LookupError{Kind: "stop", Name: string(from)}
	}
	if len(endRoutes) == 0 {
		return nil, &LookupError{Kind: "stop", Name: string(to)}
	}
	if slices.Equal(startRoutes, endRoutes) {
		return slices.Clone(startRoutes), nil
	}

	origin, target := startRoutes[0], endRoutes[0]

	parent := map[RouteID]RouteID{}
	visited := map[RouteID]struct{}{origin: {}}
	queue := []RouteID{origin}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == target {
			return reconstruct(parent, origin, target), nil
		}
		for _, next := range g.Neighbors(current) {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			parent[next] = current
			queue = append(queue, next)
		}
	}
	return nil, &PathNotFoundError{From: from, To: to}
}

func reconstruct(parent map[RouteID]RouteID, origin, target RouteID) []RouteID {
	path := []RouteID{target}
	for current := target; current != origin; {
		current = parent[current]
		path = append(path, current)
	}
	slices.Reverse(path)
	return path
}
