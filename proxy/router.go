package proxy

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/prognoshealth/geoproxy/lambdautils"
)

// Router routes an incoming events.APIGatewayV2HTTPRequest to the upstream
// named by its apiKey parameter and returns the
// events.APIGatewayProxyResponse.
//
// Every request goes through the same steps: authenticate, resolve the
// variant, fetch, format. The first failing step decides the response and
// nothing is retried.
//
// Example:
//
//	func handler(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error) {
//		return router.Route(ctx, request)
//	}
//
//	func main() {
//		registry, err := proxy.NewRegistry(routes...)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		router = proxy.NewRouter(registry, proxy.NewAuthenticator(secret), proxy.NewFormatter("*"), logger)
//		lambda.Start(handler)
//	}
type Router struct {
	Registry  *Registry
	Auth      *Authenticator
	Formatter *Formatter
	Log       *zap.SugaredLogger
}

// NewRouter returns a Router. A nil logger disables logging.
func NewRouter(registry *Registry, auth *Authenticator, formatter *Formatter, log *zap.SugaredLogger) *Router {
	if formatter == nil {
		formatter = NewFormatter(AnyOrigin)
	}

	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Router{
		Registry:  registry,
		Auth:      auth,
		Formatter: formatter,
		Log:       log,
	}
}

// resolve authenticates the request and looks up its route.
func (router *Router) resolve(rctx *RouteContext) (*Route, error) {
	if err := router.Auth.Authenticate(rctx.Credential()); err != nil {
		return nil, err
	}

	if router.Registry == nil {
		return nil, NotFound(rctx.APIKey())
	}

	return router.Registry.Lookup(rctx.APIKey())
}

// dispatch follows route with the request params and waits for the body.
func (router *Router) dispatch(rctx *RouteContext, route *Route) (string, error) {
	if err := rctx.ExtractParams(); err != nil {
		return "", &StatusError{Status: http.StatusBadRequest, Message: "Invalid Request Parameters", Err: err}
	}

	return route.Follow(rctx)
}

// Route handles a single request. The returned error is always nil: failures
// are converted into their response envelope so the lambda runtime never sees
// them.
func (router *Router) Route(ctx context.Context, request events.APIGatewayV2HTTPRequest) (response events.APIGatewayProxyResponse, err error) {
	log := lambdautils.RequestLogger(ctx, router.Log)
	rctx := NewRouteContext(ctx, request)

	defer func() {
		if r := recover(); r != nil {
			log.Errorw("panic while routing request", "api_key", rctx.APIKey(), "panic", r)
			response, err = router.Formatter.Failure(errors.New(InternalMessage)), nil
		}
	}()

	route, rerr := router.resolve(rctx)
	if rerr != nil {
		response = router.Formatter.Failure(rerr)
		log.Infow("request rejected", "api_key", rctx.APIKey(), "status", response.StatusCode)
		return response, nil
	}

	body, ferr := router.dispatch(rctx, route)
	if ferr != nil {
		response = router.Formatter.Failure(ferr)
		log.Errorw("upstream request failed", "variant", route.Variant, "status", response.StatusCode, "error", ferr)
		return response, nil
	}

	response = router.Formatter.Success(route, body)
	log.Infow("request completed", "variant", route.Variant, "status", response.StatusCode, "binary", response.IsBase64Encoded)

	return response, nil
}
