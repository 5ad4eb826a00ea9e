package proxy

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// NewAPIGatewayRequest converts r into the api gateway v2 event the lambda
// receives for the same call. Header names are lower cased and repeated
// values comma joined, as api gateway does. The body is always base64 encoded.
func NewAPIGatewayRequest(r *http.Request) (events.APIGatewayV2HTTPRequest, error) {
	headers := make(map[string]string, len(r.Header))
	for k, v := range r.Header {
		headers[strings.ToLower(k)] = strings.Join(v, ",")
	}

	query := map[string]string{}
	for k, v := range r.URL.Query() {
		query[k] = strings.Join(v, ",")
	}

	var body []byte
	if r.Body != nil {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			return events.APIGatewayV2HTTPRequest{}, errors.Wrap(err, "failed reading request body")
		}
		body = b
	}

	return events.APIGatewayV2HTTPRequest{
		RawPath:               r.URL.Path,
		RawQueryString:        r.URL.RawQuery,
		Headers:               headers,
		QueryStringParameters: query,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method:   r.Method,
				Path:     r.URL.Path,
				SourceIP: r.RemoteAddr,
			},
		},
		Body:            base64.StdEncoding.EncodeToString(body),
		IsBase64Encoded: true,
	}, nil
}

// WriteAPIGatewayResponse writes the envelope to w. Base64 bodies are decoded
// first; a body flagged binary that is not valid base64 (such as a data uri)
// is written unchanged.
func WriteAPIGatewayResponse(w http.ResponseWriter, response events.APIGatewayProxyResponse) error {
	for k, v := range response.Headers {
		w.Header().Set(k, v)
	}

	body := []byte(response.Body)
	if response.IsBase64Encoded {
		if b, err := base64.StdEncoding.DecodeString(response.Body); err == nil {
			body = b
		}
	}

	w.WriteHeader(response.StatusCode)
	_, err := w.Write(body)

	return err
}

// HTTPHandler serves router over net/http so the lambda can run locally.
func HTTPHandler(router *Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request, err := NewAPIGatewayRequest(r)
		if err != nil {
			_ = WriteAPIGatewayResponse(w, router.Formatter.Failure(err))
			return
		}

		response, _ := router.Route(r.Context(), request)

		if err := WriteAPIGatewayResponse(w, response); err != nil {
			router.Log.Warnw("failed writing response", "error", err)
		}
	})
}
