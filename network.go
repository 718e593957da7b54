package navigator

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DefaultTypeFilter selects light rail (0) and heavy rail (1).
const DefaultTypeFilter = "0,1"

const stopFetchWorkers = 4

// TransitClient fetches routes and stops from a transit REST API.
type TransitClient interface {
	Routes(ctx context.Context, typeFilter string) ([]Route, error)
	Stops(ctx context.Context, route RouteID) ([]Stop, error)
}

// Network is a request-scoped snapshot of routes and their stop listings.
// Route order is preserved as fetched and drives index insertion order.
type Network struct {
	Routes       []Route
	StopsByRoute map[RouteID][]Stop
}

// LoadNetwork fetches every route matching typeFilter and each route's stop
// listing. Stop fetches fan out concurrently with a bounded worker count;
// the snapshot is assembled only once every fetch has completed, and a
// single failure aborts the whole load naming the route whose fetch failed.
func LoadNetwork(ctx context.Context, client TransitClient, typeFilter string) (*Network, error) {
	if typeFilter == "" {
		typeFilter = DefaultTypeFilter
	}
	routes, err := client.Routes(ctx, typeFilter)
	if err != nil {
		return nil, fmt.Errorf("fetch routes: %w", err)
	}

	stops := make([][]Stop, len(routes))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(stopFetchWorkers)
	for i, r := range routes {
		i, r := i, r
		grp.Go(func() error {
			list, err := client.Stops(ctx, r.ID)
			if err != nil {
				return fmt.Errorf("fetch stops for route %s: %w", r.ID, err)
			}
			stops[i] = list
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	byRoute := make(map[RouteID][]Stop, len(routes))
	for i, r := range routes {
		byRoute[r.ID] = stops[i]
	}
	return &Network{Routes: routes, StopsByRoute: byRoute}, nil
}

// FindRoute matches id against the snapshot's routes ignoring case, so user
// input like "red" resolves to the API's "Red".
func (n *Network) FindRoute(id string) (Route, error) {
	for _, r := range n.Routes {
		if strings.EqualFold(string(r.ID), id) {
			return r, nil
		}
	}
	return Route{}, &LookupError{Kind: "route", Name: id}
}

// Index builds the stop-route index for the snapshot.
func (n *Network) Index() StopRouteIndex {
	return BuildStopRouteIndex(n.Routes, n.StopsByRoute)
}
