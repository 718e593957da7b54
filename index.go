package navigator

// StopRouteIndex maps a stop name to the routes serving a stop with that
// name, in the order routes were processed.
type StopRouteIndex map[StopName][]RouteID

// BuildStopRouteIndex builds the index from a route list and each route's
// stop listing. Routes are processed in slice order, so a stop's route list
// reflects fetch order. Routes with empty stop listings contribute nothing.
func BuildStopRouteIndex(routes []Route, stopsByRoute map[RouteID][]Stop) StopRouteIndex {
	idx := StopRouteIndex{}
	for _, r := range routes {
		for _, s := range stopsByRoute[r.ID] {
			idx[s.Name] = append(idx[s.Name], r.ID)
		}
	}
	return idx
}

// Routes returns the routes serving the named stop, or nil when the name is
// unknown.
func (idx StopRouteIndex) Routes(name StopName) []RouteID { return idx[name] }

// TransferStops filters the index down to stops served by two or more
// routes.
func (idx StopRouteIndex) TransferStops() StopRouteIndex {
	out := StopRouteIndex{}
	for name, routes := range idx {
		if len(routes) >= 2 {
			out[name] = routes
		}
	}
	return out
}
