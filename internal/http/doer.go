package http

import "net/http"

// Doer describes the ability to execute an HTTP request.
// *http.Client satisfies this.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
