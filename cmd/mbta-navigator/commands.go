package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	navigator "github.com/transit-toolkit/mbta-navigator"
	"github.com/transit-toolkit/mbta-navigator/config"
	"github.com/transit-toolkit/mbta-navigator/mbta"
)

var (
	stopsRoute string
	typeFilter string
	showStats  bool
	pathSpec   string

	logger *zap.SugaredLogger

	rootCmd = &cobra.Command{
		Use:   "mbta-navigator",
		Short: "Explore MBTA routes, stops, transfer points and route-to-route paths",
		Long: `mbta-navigator queries the MBTA v3 API for routes and stops and answers
derived questions about the network: which stops connect multiple routes,
which route has the most or fewest stops, and which sequence of routes
links two named stops.`,
		SilenceUsage: true,
		RunE:         run,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&stopsRoute, "stops", "s", "", "print all stops for the given route name")
	rootCmd.Flags().StringVarP(&typeFilter, "filter", "f", "", `route type filter, e.g. "0,1" for light and heavy rail`)
	rootCmd.Flags().BoolVar(&showStats, "stats", false, "print most/fewest-stop routes and transfer stops")
	rootCmd.Flags().StringVarP(&pathSpec, "path", "p", "", `route path between two stops, format "<Stop1>-<Stop2>"`)
}

func run(cmd *cobra.Command, args []string) error {
	logger = navigator.NewLogger()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	filter := cfg.API.RouteTypes
	if typeFilter != "" {
		filter = typeFilter
	}

	client := mbta.New(cfg.API.BaseURL, cfg.API.Timeout())

	logger.Debugw("loading network", "base_url", cfg.API.BaseURL, "filter", filter)
	network, err := navigator.LoadNetwork(cmd.Context(), client, filter)
	if err != nil {
		logger.Errorw("network load failed", "error", err)
		return err
	}

	printRoutes(network, filter)

	// A lookup miss on one operation must not keep the others from running.
	if stopsRoute != "" {
		printStopsForRoute(network, strings.ToUpper(stopsRoute))
	}
	if showStats {
		printStats(network)
	}
	if pathSpec != "" {
		if err := printPath(network, pathSpec); err != nil {
			return err
		}
	}
	return nil
}
