package proxy

import (
	"fmt"

	"github.com/pkg/errors"
)

// Registry maps every Variant to its Route. It is built once at start up and
// only read afterwards.
//
// Example:
//
//	registry := &proxy.Registry{}
//	registry.AddRouteIfNoError(proxy.NewRoute(proxy.AddressSearch, search))
//	registry.AddRouteIfNoError(proxy.NewRoute(proxy.OpenPlanning, planning))
//	registry.AddRouteIfNoError(proxy.NewRoute(proxy.OpenStreetView, image))
//
//	if !registry.Valid() {
//		return registry.BuildErrors()
//	}
type Registry struct {
	routes map[Variant]*Route
	errors []error
}

// NewRegistry returns a registry holding routes. An error is returned unless
// every known variant is registered exactly once.
func NewRegistry(routes ...*Route) (*Registry, error) {
	registry := &Registry{}
	for _, route := range routes {
		registry.AddRoute(route)
	}

	if !registry.Valid() {
		return nil, registry.BuildErrors()
	}

	return registry, nil
}

// AddRoute registers route. Registering the same variant twice is a build
// error.
func (registry *Registry) AddRoute(route *Route) {
	if route == nil {
		registry.AddBuildError(errors.New("nil route"))
		return
	}

	if registry.routes == nil {
		registry.routes = make(map[Variant]*Route)
	}

	if _, ok := registry.routes[route.Variant]; ok {
		registry.AddBuildError(fmt.Errorf("route '%s' registered twice", route.Variant))
		return
	}

	registry.routes[route.Variant] = route
}

// AddBuildError appends an error to the list of registry errors.
func (registry *Registry) AddBuildError(err error) {
	registry.errors = append(registry.errors, err)
}

// AddRouteIfNoError registers the provided route if no error is present.
// Otherwise it adds the error to the build errors.
func (registry *Registry) AddRouteIfNoError(route *Route, err error) {
	if err != nil {
		registry.AddBuildError(err)
	} else {
		registry.AddRoute(route)
	}
}

// missing returns the variants that have no route.
func (registry *Registry) missing() []Variant {
	var out []Variant
	for _, v := range Variants() {
		if _, ok := registry.routes[v]; !ok {
			out = append(out, v)
		}
	}

	return out
}

// Valid returns true if every variant is registered and no build errors were
// recorded.
func (registry *Registry) Valid() bool {
	return len(registry.errors) == 0 && len(registry.missing()) == 0
}

// BuildErrors returns a single error that encapsulates all the errors found
// during registry construction, including unregistered variants.
func (registry *Registry) BuildErrors() error {
	topError := errors.New("failed building registry")

	for _, err := range registry.errors {
		topError = errors.Wrap(topError, err.Error())
	}

	for _, v := range registry.missing() {
		topError = errors.Wrapf(topError, "no route for '%s'", v)
	}

	return topError
}

// Lookup resolves apiKey to its route. A NotFound error is returned for an
// empty or unknown apiKey.
func (registry *Registry) Lookup(apiKey string) (*Route, error) {
	variant, err := ParseVariant(apiKey)
	if err != nil {
		return nil, err
	}

	route, ok := registry.routes[variant]
	if !ok {
		return nil, NotFound(apiKey)
	}

	return route, nil
}

// Len returns the number of registered routes.
func (registry *Registry) Len() int {
	return len(registry.routes)
}
