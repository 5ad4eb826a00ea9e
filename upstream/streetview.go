package upstream

import (
	"context"
	"encoding/base64"
	"mime"
	"net/url"
	"strings"

	"github.com/prognoshealth/geoproxy/proxy"
)

const (
	DefaultStreetViewURL = "https://maps.googleapis.com/maps/api/streetview"
	DefaultImageSize     = "600x400"
)

// streetViewOptional are forwarded to the imagery api when present.
var streetViewOptional = []string{"heading", "pitch", "fov", "radius", "source"}

// StreetView fetches the street level image of an address and returns it as
// a data uri.
type StreetView struct {
	Client  *Client
	BaseURL string
	APIKey  string
}

// Query builds the imagery query for params. address is required.
func (s *StreetView) Query(params map[string]string) (url.Values, error) {
	if err := required(params, "address"); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("location", params["address"])
	q.Set("size", valueOr(params, "size", DefaultImageSize))
	for _, name := range streetViewOptional {
		if v := params[name]; v != "" {
			q.Set(name, v)
		}
	}
	q.Set("key", s.APIKey)

	return q, nil
}

// Fetch downloads the image and encodes it as data:<type>;base64,<data>.
func (s *StreetView) Fetch(ctx context.Context, params map[string]string) (string, error) {
	q, err := s.Query(params)
	if err != nil {
		return "", err
	}

	resp, err := s.Client.Get(ctx, or(s.BaseURL, DefaultStreetViewURL), q)
	if err != nil {
		return "", err
	}

	return DataURI(resp.ContentType, resp.Body), nil
}

// Headers overrides the response content type.
func (s *StreetView) Headers() map[string]string {
	return map[string]string{"Content-Type": proxy.ContentTypeJPEG}
}

// Route returns the binary OPEN_STREET_VIEW route.
func (s *StreetView) Route() (*proxy.Route, error) {
	route, err := proxy.NewRoute(proxy.OpenStreetView, s.Fetch)
	if err != nil {
		return nil, err
	}

	return route.WithHeaders(s.Headers).WithBinary(), nil
}

// DataURI encodes data as a base64 data uri. Content types that are not
// images fall back to image/jpeg.
func DataURI(contentType string, data []byte) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		mediaType = proxy.ContentTypeJPEG
	}

	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
