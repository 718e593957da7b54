package navigator

import "fmt"

// NetworkError reports a failed call against the transit API: a transport
// failure or a non-2xx status. It is fatal to the current command.
type NetworkError struct {
	URL    string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transit api: GET %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("transit api: GET %s: status %d", e.URL, e.Status)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// LookupError reports a route or stop name absent from the fetched data. It
// is reported to the user but does not abort unrelated operations in the
// same invocation.
type LookupError struct {
	Kind string // "route" or "stop"
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s: %s", e.Kind, e.Name)
}

// PathNotFoundError reports that the graph search exhausted every reachable
// route without connecting the two stops.
type PathNotFoundError struct {
	From StopName
	To   StopName
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("no route path from %s to %s", e.From, e.To)
}
