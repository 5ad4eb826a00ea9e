package upstream

import (
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prognoshealth/geoproxy/proxy"
)

func request(query map[string]string) events.APIGatewayV2HTTPRequest {
	return events.APIGatewayV2HTTPRequest{
		RawPath:               "/",
		Headers:               map[string]string{"authorization": "secret"},
		QueryStringParameters: query,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{Method: "GET"},
		},
	}
}

func TestNewRegistry(t *testing.T) {
	registry, err := NewRegistry(Options{})

	require.NoError(t, err)
	assert.True(t, registry.Valid())
	assert.Equal(t, len(proxy.Variants()), registry.Len())
}

func TestRegistry_endToEnd(t *testing.T) {
	search := newRecorder(t, 200, "application/json", []byte(`[{"place_id": 42}]`))
	image := newRecorder(t, 200, "image/jpeg", []byte("jpeg-bytes"))
	planning := newRecorder(t, 200, "application/json", []byte(`{"application": {"id": 7}}`))

	registry, err := NewRegistry(Options{
		UserAgent:         "geoproxy-test",
		NominatimURL:      search.URL(),
		StreetViewURL:     image.URL(),
		StreetViewKey:     "gkey",
		OpenPlanningURL:   planning.URL(),
		OpenPlanningToken: "ptoken",
	})
	require.NoError(t, err)

	router := proxy.NewRouter(registry, proxy.NewAuthenticator("secret"), proxy.NewFormatter(""), nil)
	ctx := context.Background()

	response, err := router.Route(ctx, request(map[string]string{"apiKey": "ADDRESS_SEARCH", "q": "Sydney"}))
	require.NoError(t, err)
	assert.Equal(t, 200, response.StatusCode)
	assert.Equal(t, `[{"place_id":42}]`, response.Body)
	assert.Equal(t, "au", search.query.Get("countrycodes"))
	assert.Equal(t, "3", search.query.Get("limit"))

	response, err = router.Route(ctx, request(map[string]string{"apiKey": "OPEN_STREET_VIEW", "address": "Bondi"}))
	require.NoError(t, err)
	assert.Equal(t, 200, response.StatusCode)
	assert.True(t, response.IsBase64Encoded)
	assert.Equal(t, "image/jpeg", response.Headers["Content-Type"])
	assert.True(t, strings.HasPrefix(response.Body, "data:"))
	assert.Equal(t, "gkey", image.query.Get("key"))

	response, err = router.Route(ctx, request(map[string]string{
		"apiKey":          "OPEN_PLANNING",
		"bottom_left_lat": "-33.9",
		"bottom_left_lng": "151.1",
		"top_right_lat":   "-33.8",
		"top_right_lng":   "151.3",
	}))
	require.NoError(t, err)
	assert.Equal(t, 200, response.StatusCode)
	assert.Equal(t, `{"application":{"id":7}}`, response.Body)
	assert.Equal(t, "-33.9", planning.query.Get("bottom_left_lat"))
	assert.Equal(t, "151.1", planning.query.Get("bottom_left_lng"))
	assert.Equal(t, "-33.8", planning.query.Get("top_right_lat"))
	assert.Equal(t, "151.3", planning.query.Get("top_right_lng"))
	assert.Equal(t, "ptoken", planning.query.Get("key"))
	assert.Empty(t, planning.query.Get("apiKey"))
}

func TestRegistry_endToEnd_upstreamDown(t *testing.T) {
	search := newRecorder(t, 502, "text/plain", []byte("bad gateway"))

	registry, err := NewRegistry(Options{NominatimURL: search.URL()})
	require.NoError(t, err)

	router := proxy.NewRouter(registry, proxy.NewAuthenticator("secret"), nil, nil)

	response, err := router.Route(context.Background(), request(map[string]string{"apiKey": "ADDRESS_SEARCH", "q": "Sydney"}))

	require.NoError(t, err)
	assert.Equal(t, 500, response.StatusCode)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, response.Body)
	assert.NotContains(t, response.Body, "bad gateway")
	assert.False(t, response.IsBase64Encoded)
}

func TestRegistry_endToEnd_upstreamUnreachable(t *testing.T) {
	rec := newRecorder(t, 200, "application/json", nil)
	base := rec.URL()
	rec.server.Close()

	registry, err := NewRegistry(Options{
		NominatimURL:      base,
		StreetViewURL:     base,
		StreetViewKey:     "google-key-xyz",
		OpenPlanningURL:   base,
		OpenPlanningToken: "planning-token-xyz",
	})
	require.NoError(t, err)

	router := proxy.NewRouter(registry, proxy.NewAuthenticator("secret"), nil, nil)

	queries := []map[string]string{
		{"apiKey": "ADDRESS_SEARCH", "q": "Sydney"},
		{"apiKey": "OPEN_STREET_VIEW", "address": "Bondi"},
		{
			"apiKey":          "OPEN_PLANNING",
			"bottom_left_lat": "-33.9",
			"bottom_left_lng": "151.1",
			"top_right_lat":   "-33.8",
			"top_right_lng":   "151.3",
		},
	}

	for _, query := range queries {
		t.Run(query["apiKey"], func(t *testing.T) {
			response, err := router.Route(context.Background(), request(query))

			require.NoError(t, err)
			assert.Equal(t, 500, response.StatusCode)
			assert.JSONEq(t, `{"message":"Internal Server Error"}`, response.Body)
			assert.NotContains(t, response.Body, "planning-token-xyz")
			assert.NotContains(t, response.Body, "google-key-xyz")
			assert.NotContains(t, response.Body, "key=")
		})
	}
}
