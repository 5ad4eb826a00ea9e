package upstream

import (
	"github.com/prognoshealth/geoproxy/proxy"
)

// Options configures the upstream endpoints and credentials. Empty urls use
// the public defaults.
type Options struct {
	UserAgent         string
	NominatimURL      string
	StreetViewURL     string
	StreetViewKey     string
	OpenPlanningURL   string
	OpenPlanningToken string
}

// NewRegistry returns a proxy.Registry with a route for every variant, all
// sharing one Client.
func NewRegistry(opts Options) (*proxy.Registry, error) {
	client := NewClient(opts.UserAgent)

	registry := &proxy.Registry{}
	registry.AddRouteIfNoError((&Nominatim{Client: client, BaseURL: opts.NominatimURL}).Route())
	registry.AddRouteIfNoError((&StreetView{Client: client, BaseURL: opts.StreetViewURL, APIKey: opts.StreetViewKey}).Route())
	registry.AddRouteIfNoError((&OpenPlanning{Client: client, BaseURL: opts.OpenPlanningURL, Token: opts.OpenPlanningToken}).Route())

	if !registry.Valid() {
		return nil, registry.BuildErrors()
	}

	return registry, nil
}
