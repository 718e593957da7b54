package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	navigator "github.com/transit-toolkit/mbta-navigator"
)

const banner = "\n--------------------------------------------\n"

func printRoutes(n *navigator.Network, filter string) {
	fmt.Printf("All MBTA routes for types %s:%s", filter, banner)
	for _, r := range n.Routes {
		fmt.Printf("ID: %s, NAME: %s\n", r.ID, r.LongName)
	}
}

func printStopsForRoute(n *navigator.Network, name string) {
	route, err := n.FindRoute(name)
	if err != nil {
		fmt.Printf("\nUnknown route name: %s\n", name)
		return
	}
	fmt.Printf("\nAll stops for route %s:\n", route.ID)
	for _, stop := range n.StopsByRoute[route.ID] {
		fmt.Printf("ID: %s, NAME: %s, ADDRESS: %s\n", stop.ID, stop.Name, stop.Address)
	}
}

func printStats(n *navigator.Network) {
	if len(n.Routes) == 0 {
		fmt.Println("\nNo routes fetched, nothing to report")
		return
	}
	stats := navigator.ComputeStats(n)
	fmt.Printf("\nRoute with most stops is %s with %d stops\n", stats.MostStops.Route, stats.MostStops.Stops)
	fmt.Printf("Route with fewest stops is %s with %d stops\n", stats.LeastStops.Route, stats.LeastStops.Stops)

	fmt.Printf("\nStops connecting two or more routes%s", banner)
	names := make([]navigator.StopName, 0, len(stats.TransferStops))
	for name := range stats.TransferStops {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Printf("%s connects %v\n", name, stats.TransferStops[name])
	}
}

func printPath(n *navigator.Network, spec string) error {
	from, to, ok := strings.Cut(spec, "-")
	if !ok || from == "" || to == "" {
		return fmt.Errorf("invalid path format %q, want \"<Stop1>-<Stop2>\"", spec)
	}

	idx := n.Index()
	graph := navigator.BuildRouteGraph(idx)

	path, err := navigator.FindPath(navigator.StopName(from), navigator.StopName(to), graph, idx)
	if err != nil {
		var lookupErr *navigator.LookupError
		var notFound *navigator.PathNotFoundError
		if errors.As(err, &lookupErr) || errors.As(err, &notFound) {
			fmt.Printf("\n%s\n", err)
			return nil
		}
		return err
	}
	fmt.Printf("\n%s to %s -> %v\n", from, to, path)
	return nil
}
