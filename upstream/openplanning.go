package upstream

import (
	"context"
	"net/url"

	"github.com/prognoshealth/geoproxy/proxy"
)

const DefaultOpenPlanningURL = "https://api.planningalerts.org.au/applications.js"

// BoundingBoxParams are the corners of the search area, passed through to
// PlanningAlerts unchanged.
var BoundingBoxParams = []string{"bottom_left_lat", "bottom_left_lng", "top_right_lat", "top_right_lng"}

// OpenPlanning searches planning applications inside a bounding box.
type OpenPlanning struct {
	Client  *Client
	BaseURL string
	Token   string
}

// Query builds the application search query. Every param is forwarded and the
// server token is set last so callers cannot replace it.
func (p *OpenPlanning) Query(params map[string]string) (url.Values, error) {
	if err := required(params, BoundingBoxParams...); err != nil {
		return nil, err
	}

	q := url.Values{}
	copyParams(q, params, "key")
	q.Set("key", p.Token)

	return q, nil
}

// Fetch runs the search and returns the upstream json as text.
func (p *OpenPlanning) Fetch(ctx context.Context, params map[string]string) (string, error) {
	q, err := p.Query(params)
	if err != nil {
		return "", err
	}

	return p.Client.GetJSON(ctx, or(p.BaseURL, DefaultOpenPlanningURL), q)
}

// Route returns the OPEN_PLANNING route.
func (p *OpenPlanning) Route() (*proxy.Route, error) {
	return proxy.NewRoute(proxy.OpenPlanning, p.Fetch)
}
