package navigator

import "fmt"

// testStops builds a stop list from names; IDs are synthetic and per-list,
// mirroring the API's per-route stop identifiers.
func testStops(names ...StopName) []Stop {
	stops := make([]Stop, 0, len(names))
	for i, name := range names {
		stops = append(stops, Stop{ID: fmt.Sprintf("place-%d", i), Name: name})
	}
	return stops
}

func testNetwork(routes []RouteID, stopsByRoute map[RouteID][]Stop) *Network {
	n := &Network{StopsByRoute: stopsByRoute}
	for _, id := range routes {
		n.Routes = append(n.Routes, Route{ID: id, LongName: string(id) + " Line"})
	}
	return n
}

// scenarioNetwork is the two-route fixture used throughout: Red serves
// StopX and StopY, Blue serves StopY and StopZ, so StopY is the transfer.
func scenarioNetwork() *Network {
	return testNetwork(
		[]RouteID{"Red", "Blue"},
		map[RouteID][]Stop{
			"Red":  testStops("StopX", "StopY"),
			"Blue": testStops("StopY", "StopZ"),
		},
	)
}

// clusterNetwork has two clusters with no shared stop between them:
// Red-Blue joined at StopY, Green-Orange joined at StopQ.
func clusterNetwork() *Network {
	return testNetwork(
		[]RouteID{"Red", "Blue", "Green", "Orange"},
		map[RouteID][]Stop{
			"Red":    testStops("StopX", "StopY"),
			"Blue":   testStops("StopY", "StopZ"),
			"Green":  testStops("StopP", "StopQ"),
			"Orange": testStops("StopQ", "StopR"),
		},
	)
}

// chainNetwork is a four-route chain A-B-C-D with an extra direct transfer
// between A and D, so the shortest A-to-D path has a single hop.
func chainNetwork() *Network {
	return testNetwork(
		[]RouteID{"A", "B", "C", "D"},
		map[RouteID][]Stop{
			"A": testStops("SA", "Sab", "Sad"),
			"B": testStops("Sab", "Sbc"),
			"C": testStops("Sbc", "Scd"),
			"D": testStops("Scd", "Sad", "SD"),
		},
	)
}
