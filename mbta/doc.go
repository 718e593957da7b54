// Package mbta implements the client for the MBTA v3 REST API used to fetch
// routes and stop listings. Responses arrive in the JSON:API envelope
// ({"data": [{"id": ..., "attributes": {...}}]}).
package mbta
