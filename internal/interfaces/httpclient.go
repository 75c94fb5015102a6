package interfaces

import "net/http"

// HTTPClient issues outbound HTTP requests. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
