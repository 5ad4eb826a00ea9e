package upstream

import (
	"context"
	"net/url"
	"strings"

	"github.com/prognoshealth/geoproxy/proxy"
)

const (
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"

	// CountryCode limits every address search to Australia.
	CountryCode  = "au"
	DefaultLimit = "3"
)

// Nominatim forwards address searches to the OpenStreetMap geocoder.
type Nominatim struct {
	Client  *Client
	BaseURL string
}

// Query builds the search query for params: q, limit and polygonGeojson.
func (n *Nominatim) Query(params map[string]string) (url.Values, error) {
	if err := required(params, "q"); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("q", params["q"])
	q.Set("format", "json")
	q.Set("countrycodes", CountryCode)
	q.Set("limit", valueOr(params, "limit", DefaultLimit))
	q.Set("polygon_geojson", valueOr(params, "polygonGeojson", "0"))

	return q, nil
}

// Fetch runs the search and returns the upstream json as text.
func (n *Nominatim) Fetch(ctx context.Context, params map[string]string) (string, error) {
	q, err := n.Query(params)
	if err != nil {
		return "", err
	}

	base := strings.TrimSuffix(or(n.BaseURL, DefaultNominatimURL), "/")

	return n.Client.GetJSON(ctx, base+"/search", q)
}

// Route returns the ADDRESS_SEARCH route.
func (n *Nominatim) Route() (*proxy.Route, error) {
	return proxy.NewRoute(proxy.AddressSearch, n.Fetch)
}
