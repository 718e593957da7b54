package navigator

// RouteCount pairs a route with its stop count.
type RouteCount struct {
	Route RouteID
	Stops int
}

// Stats summarizes network structure: the extremal routes by stop count and
// every stop served by two or more routes.
type Stats struct {
	MostStops     RouteCount
	LeastStops    RouteCount
	TransferStops StopRouteIndex
}

// ComputeStats reports the routes with the most and fewest stops and the
// transfer-stop listing. Ties go to the first route encountered. An empty
// network yields a degenerate Stats with zero-value extremes and an empty
// transfer listing.
func ComputeStats(n *Network) Stats {
	var s Stats
	for i, r := range n.Routes {
		count := len(n.StopsByRoute[r.ID])
		if i == 0 || count > s.MostStops.Stops {
			s.MostStops = RouteCount{Route: r.ID, Stops: count}
		}
		if i == 0 || count < s.LeastStops.Stops {
			s.LeastStops = RouteCount{Route: r.ID, Stops: count}
		}
	}
	s.TransferStops = BuildStopRouteIndex(n.Routes, n.StopsByRoute).TransferStops()
	return s
}
