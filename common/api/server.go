package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

type RouteFactory func(router *gin.Engine)

type RouterOption struct {
	RecoveryDisabled bool
	LoggerForced     bool
	OriginsAllowed   []string
}

// MustServe serves API until `ctx` is done, and exits the process on failure.
func MustServe(ctx context.Context, endpoint string, factory RouteFactory, option ...RouterOption) {
	if err := Serve(ctx, endpoint, factory, option...); err != nil {
		logrus.WithError(err).Fatal("Failed to serve API")
	}
}

// Serve serves API on `endpoint` until `ctx` is done, then shuts down gracefully.
func Serve(ctx context.Context, endpoint string, factory RouteFactory, option ...RouterOption) error {
	server := http.Server{
		Addr:    endpoint,
		Handler: NewRouter(factory, option...),
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("endpoint", endpoint).Info("API server started")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.WithMessage(err, "Failed to listen and serve")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.WithMessage(err, "Failed to shutdown API server")
	}

	logrus.Info("API server stopped")

	return nil
}

// NewRouter creates a gin engine with recovery, CORS and optional request logging.
func NewRouter(factory RouteFactory, option ...RouterOption) *gin.Engine {
	var opt RouterOption
	if len(option) > 0 {
		opt = option[0]
	}

	router := gin.New()

	if !opt.RecoveryDisabled {
		router.Use(gin.Recovery())
	}

	router.Use(newCorsMiddleware(opt.OriginsAllowed))

	if opt.LoggerForced || logrus.IsLevelEnabled(logrus.DebugLevel) {
		router.Use(gin.Logger())
	}

	factory(router)

	return router
}

func newCorsMiddleware(origins []string) gin.HandlerFunc {
	conf := cors.DefaultConfig()
	conf.AllowMethods = append(conf.AllowMethods, "OPTIONS")
	conf.AllowHeaders = append(conf.AllowHeaders, "*")
	conf.AllowCredentials = len(origins) > 0

	if len(origins) == 0 {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = origins
	}

	return cors.New(conf)
}
