package mbta

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	navigator "github.com/transit-toolkit/mbta-navigator"
)

// DefaultBaseURL is the public MBTA v3 API endpoint.
const DefaultBaseURL = "https://api-v3.mbta.com"

// Client talks to the MBTA v3 API. The endpoint is explicit construction
// state, never a process-wide global.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ navigator.TransitClient = (*Client)(nil)

// New returns a client for the API at baseURL. An empty baseURL selects the
// public MBTA endpoint.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type document struct {
	Data []resource `json:"data"`
}

type resource struct {
	ID         string          `json:"id"`
	Attributes json.RawMessage `json:"attributes"`
}

type routeAttributes struct {
	LongName    string `json:"long_name"`
	Description string `json:"description"`
	Type        int    `json:"type"`
}

type stopAttributes struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Routes fetches every route whose GTFS type code appears in typeFilter, a
// comma-separated list such as "0,1".
func (c *Client) Routes(ctx context.Context, typeFilter string) ([]navigator.Route, error) {
	params := url.Values{}
	params.Set("filter[type]", typeFilter)

	doc, err := c.get(ctx, "/routes", params)
	if err != nil {
		return nil, err
	}

	routes := make([]navigator.Route, 0, len(doc.Data))
	for _, res := range doc.Data {
		var attrs routeAttributes
		if err := json.Unmarshal(res.Attributes, &attrs); err != nil {
			return nil, fmt.Errorf("decoding route %s: %w", res.ID, err)
		}
		routes = append(routes, navigator.Route{
			ID:          navigator.RouteID(res.ID),
			LongName:    attrs.LongName,
			Description: attrs.Description,
			Type:        navigator.RouteType(attrs.Type),
		})
	}
	return routes, nil
}

// Stops fetches the stop listing for one route. Stop IDs in the result are
// only meaningful within this listing; cross-route matching must use names.
func (c *Client) Stops(ctx context.Context, route navigator.RouteID) ([]navigator.Stop, error) {
	params := url.Values{}
	params.Set("route", string(route))

	doc, err := c.get(ctx, "/stops", params)
	if err != nil {
		return nil, err
	}

	stops := make([]navigator.Stop, 0, len(doc.Data))
	for _, res := range doc.Data {
		var attrs stopAttributes
		if err := json.Unmarshal(res.Attributes, &attrs); err != nil {
			return nil, fmt.Errorf("decoding stop %s: %w", res.ID, err)
		}
		stops = append(stops, navigator.Stop{
			ID:      res.ID,
			Name:    navigator.StopName(attrs.Name),
			Address: attrs.Address,
		})
	}
	return stops, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*document, error) {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &navigator.NetworkError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &navigator.NetworkError{URL: reqURL, Status: resp.StatusCode}
	}

	var doc document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &doc, nil
}
