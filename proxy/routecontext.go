package proxy

import (
	"context"
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// Reserved query parameters consumed by the router itself. They are never
// forwarded upstream.
const (
	APIKeyParam    = "apiKey"
	AuthTokenParam = "auth_token"
	AuthHeader     = "Authorization"
)

// RouteContext contains all the request information needed to authenticate,
// resolve and follow a route.
type RouteContext struct {
	Context context.Context
	Request events.APIGatewayV2HTTPRequest
	Params  map[string]string
}

// NewRouteContext returns the RouteContext for request. Params stays empty
// until ExtractParams is called.
func NewRouteContext(ctx context.Context, request events.APIGatewayV2HTTPRequest) *RouteContext {
	return &RouteContext{
		Context: ctx,
		Request: request,
		Params:  map[string]string{},
	}
}

// ExtractParams fills Params with the query string parameters and, for form
// posts, the form values. Query parameters win on collisions. apiKey and
// auth_token are never included.
func (ctx *RouteContext) ExtractParams() error {
	params := map[string]string{}

	if err := ctx.extractParamsFromFormPost(params); err != nil {
		return errors.Wrap(err, "failed extracting form params")
	}

	for k, v := range ctx.Request.QueryStringParameters {
		params[k] = v
	}

	delete(params, APIKeyParam)
	delete(params, AuthTokenParam)

	ctx.Params = params
	return nil
}

// Header returns the value of the named request header. Api gateway v2 lower
// cases header names, so the lookup ignores case.
func (ctx *RouteContext) Header(name string) string {
	if v, ok := ctx.Request.Headers[name]; ok {
		return v
	}

	for k, v := range ctx.Request.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}

	return ""
}

// Credential returns the Authorization header when set, otherwise the
// auth_token query parameter.
func (ctx *RouteContext) Credential() string {
	if h := ctx.Header(AuthHeader); h != "" {
		return h
	}

	return ctx.Request.QueryStringParameters[AuthTokenParam]
}

// APIKey returns the raw apiKey query parameter.
func (ctx *RouteContext) APIKey() string {
	return ctx.Request.QueryStringParameters[APIKeyParam]
}

// Method returns the request's http method.
func (ctx *RouteContext) Method() (HttpMethod, bool) {
	return ParseHttpMethod(ctx.Request.RequestContext.HTTP.Method)
}

// Body returns a string representation of the request body
func (ctx *RouteContext) Body() (string, error) {
	if ctx.Request.IsBase64Encoded {
		b, err := base64.StdEncoding.DecodeString(ctx.Request.Body)
		if err != nil {
			return "", errors.Wrapf(err, "unable to decode request body for %s %s", ctx.Request.RequestContext.HTTP.Method, ctx.Request.RawPath)
		}

		return string(b), nil
	}

	return ctx.Request.Body, nil
}

// extractParamsFromFormPost adds the key/value pairs of an url encoded form
// post body to params. Other requests are left alone.
func (ctx *RouteContext) extractParamsFromFormPost(params map[string]string) error {
	if m, _ := ctx.Method(); m != POST {
		return nil
	}

	if !strings.HasPrefix(ctx.Header("Content-Type"), "application/x-www-form-urlencoded") {
		return nil
	}

	body, err := ctx.Body()
	if err != nil {
		return err
	}

	if body == "" {
		return nil
	}

	values, err := url.ParseQuery(body)
	if err != nil {
		return errors.Wrap(err, "unable to decode form body")
	}

	for k, v := range values {
		params[k] = v[0]
	}

	return nil
}
