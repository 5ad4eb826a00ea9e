package proxy

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// FetchFunc defines the function interface a route uses to call its upstream
// api. params holds the request parameters without apiKey and auth_token.
// The returned string becomes the response body.
type FetchFunc func(ctx context.Context, params map[string]string) (string, error)

// HeaderFunc returns headers that override the router defaults on success.
type HeaderFunc func() map[string]string

// Route binds a Variant to the fetch behaviour used when a request resolves
// to it.
//
// Headers is optional. Binary marks the body returned by Fetch as base64
// encoded.
type Route struct {
	Variant Variant
	Fetch   FetchFunc
	Headers HeaderFunc
	Binary  bool
}

// NewRoute returns a Route for the specified variant and fetch function.
func NewRoute(variant Variant, fetch FetchFunc) (*Route, error) {
	if _, err := ParseVariant(string(variant)); err != nil {
		return nil, errors.Wrapf(err, "failed creating route for '%s'", variant)
	}

	if fetch == nil {
		return nil, fmt.Errorf("no fetch function for route '%s'", variant)
	}

	return &Route{Variant: variant, Fetch: fetch}, nil
}

// WithHeaders sets the header override function and returns the route.
func (route *Route) WithHeaders(headers HeaderFunc) *Route {
	route.Headers = headers
	return route
}

// WithBinary marks the route's body as base64 encoded and returns the route.
func (route *Route) WithBinary() *Route {
	route.Binary = true
	return route
}

// String returns a string representation of this route.
func (route *Route) String() string {
	if route.Binary {
		return fmt.Sprintf("%s (binary)", route.Variant)
	}

	return route.Variant.String()
}

// Follow calls the route's fetch function with the params of rctx. Any
// failure is wrapped as an UpstreamError.
func (route *Route) Follow(rctx *RouteContext) (string, error) {
	body, err := route.Fetch(rctx.Context, rctx.Params)
	if err != nil {
		return "", Upstream(route.Variant, err)
	}

	return body, nil
}
