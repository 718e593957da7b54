package navigator

// RouteID identifies a route in the MBTA API (e.g. "Red", "Green-B"). It is
// the key used for stop listings and for graph vertices.
type RouteID string

// StopName is a stop's display name. Stop IDs are only unique within one
// route's stop listing, so name equality is the cross-route matching key.
type StopName string

// RouteType is the GTFS route type code used by the filter[type] parameter.
type RouteType int

const (
	RouteTypeLightRail    RouteType = 0
	RouteTypeHeavyRail    RouteType = 1
	RouteTypeCommuterRail RouteType = 2
	RouteTypeBus          RouteType = 3
	RouteTypeFerry        RouteType = 4
)

func (t RouteType) String() string {
	switch t {
	case RouteTypeLightRail:
		return "light_rail"
	case RouteTypeHeavyRail:
		return "heavy_rail"
	case RouteTypeCommuterRail:
		return "commuter_rail"
	case RouteTypeBus:
		return "bus"
	case RouteTypeFerry:
		return "ferry"
	default:
		return "unknown"
	}
}

// Route represents a transit route. Immutable once fetched.
type Route struct {
	ID          RouteID
	LongName    string
	Description string
	Type        RouteType
}

// Stop represents a single entry in one route's stop listing.
type Stop struct {
	ID      string
	Name    StopName
	Address string
}
