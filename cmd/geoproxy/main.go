// Command geoproxy is the lambda entry point of the geodata proxy. With
// LOCAL=true it serves the same router over http instead.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/prognoshealth/geoproxy/config"
	"github.com/prognoshealth/geoproxy/lambdautils"
	"github.com/prognoshealth/geoproxy/proxy"
	"github.com/prognoshealth/geoproxy/upstream"
)

// newRouter builds the router and its registry from cfg.
func newRouter(cfg *config.Config, log *zap.SugaredLogger) (*proxy.Router, error) {
	registry, err := upstream.NewRegistry(upstream.Options{
		UserAgent:         cfg.UserAgent,
		NominatimURL:      cfg.NominatimURL,
		StreetViewURL:     cfg.StreetViewURL,
		StreetViewKey:     cfg.StreetViewAPIKey,
		OpenPlanningURL:   cfg.OpenPlanningURL,
		OpenPlanningToken: cfg.OpenPlanningAPIToken,
	})
	if err != nil {
		return nil, err
	}

	return proxy.NewRouter(
		registry,
		proxy.NewAuthenticator(cfg.AuthToken),
		proxy.NewFormatter(cfg.CORSOrigin),
		log,
	), nil
}

func serveLocal(router *proxy.Router, addr string, log *zap.SugaredLogger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           proxy.HTTPHandler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Errorw("failed shutting down http server", "error", err)
		}
	}()

	log.Infow("http server listening", "address", addr)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed loading config: %v\n", err)
		os.Exit(1)
	}

	log, err := lambdautils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	router, err := newRouter(cfg, log)
	if err != nil {
		log.Fatalw("failed building router", "error", err)
	}

	if cfg.Local {
		if err := serveLocal(router, cfg.LocalAddress, log); err != nil {
			log.Fatalw("http server stopped", "error", err)
		}
		return
	}

	lambda.Start(func(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error) {
		return router.Route(ctx, request)
	})
}
