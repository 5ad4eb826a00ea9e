package proxy

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
)

const testSecret = "s3cret"

func testFetch(body string) FetchFunc {
	return func(ctx context.Context, params map[string]string) (string, error) {
		return body, nil
	}
}

func testRequest(method HttpMethod, query map[string]string) events.APIGatewayV2HTTPRequest {
	return events.APIGatewayV2HTTPRequest{
		RawPath: "/",
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method: method.String(),
			},
		},
		Headers:               map[string]string{},
		QueryStringParameters: query,
	}
}

func authorizedRequest(apiKey string) events.APIGatewayV2HTTPRequest {
	request := testRequest(GET, map[string]string{APIKeyParam: apiKey})
	request.Headers["authorization"] = testSecret
	return request
}

// testRegistry registers every variant with a fetch returning a fixed body.
func testRegistry() *Registry {
	registry := &Registry{}
	registry.AddRouteIfNoError(NewRoute(AddressSearch, testFetch(`[{"place_id":1}]`)))
	registry.AddRouteIfNoError(NewRoute(OpenPlanning, testFetch(`{"applications":[]}`)))

	image, err := NewRoute(OpenStreetView, testFetch("data:image/jpeg;base64,AAAA"))
	if err != nil {
		log.Fatal(err)
	}
	registry.AddRoute(image.WithHeaders(func() map[string]string {
		return map[string]string{"Content-Type": ContentTypeJPEG}
	}).WithBinary())

	return registry
}

func testRouter(registry *Registry) *Router {
	return NewRouter(registry, NewAuthenticator(testSecret), NewFormatter(""), nil)
}

func dummy(v interface{}, category string) interface{} {
	file := fmt.Sprintf("testdata/%s.json", category)

	content, err := os.ReadFile(file)
	if err != nil {
		log.Fatal(err)
	}

	err = json.Unmarshal(content, v)
	if err != nil {
		log.Fatal(err)
	}

	return v
}

func dummyAPIGatewayV2HTTPRequest(category string) events.APIGatewayV2HTTPRequest {
	return *dummy(&events.APIGatewayV2HTTPRequest{}, category).(*events.APIGatewayV2HTTPRequest)
}
