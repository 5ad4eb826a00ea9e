package proxy

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeJPEG = "image/jpeg"
	AnyOrigin       = "*"
)

// Formatter turns fetch results and errors into response envelopes. It is the
// only place an events.APIGatewayProxyResponse is built.
type Formatter struct {
	Origin string
}

// NewFormatter returns a Formatter that allows origin. An empty origin allows
// any origin.
func NewFormatter(origin string) *Formatter {
	if origin == "" {
		origin = AnyOrigin
	}

	return &Formatter{Origin: origin}
}

func (f *Formatter) headers() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin": f.Origin,
		"Content-Type":                ContentTypeJSON,
	}
}

// Success returns the 200 envelope for body fetched through route. Route
// headers override the defaults.
func (f *Formatter) Success(route *Route, body string) events.APIGatewayProxyResponse {
	headers := f.headers()

	if route.Headers != nil {
		for k, v := range route.Headers() {
			headers[k] = v
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode:      http.StatusOK,
		Headers:         headers,
		Body:            body,
		IsBase64Encoded: route.Binary,
	}
}

type messageBody struct {
	Message string `json:"message"`
}

// Failure returns the envelope for err. The status comes from the error
// chain and defaults to 500; the body is {"message": ...}.
func (f *Formatter) Failure(err error) events.APIGatewayProxyResponse {
	b, merr := json.Marshal(messageBody{Message: Message(err)})
	if merr != nil {
		b = []byte(`{"message":"Internal Server Error"}`)
	}

	return events.APIGatewayProxyResponse{
		StatusCode:      StatusCode(err),
		Headers:         f.headers(),
		Body:            string(b),
		IsBase64Encoded: false,
	}
}
