package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Enabled bool   `envconfig:"ENABLED" default:"true"`
	Host    string `envconfig:"HOST" default:"0.0.0.0"`
	Port    int    `envconfig:"PORT" default:"8088"`
}

// Server exposes /metrics on its own port
type Server struct {
	srv    *http.Server
	logger *logrus.Logger
}

// StartMetricsServer registers the service metrics and serves them in the background.
// Returns nil when metrics are disabled.
func StartMetricsServer(cfg Config, services []string, logger *logrus.Logger) *Server {
	if !cfg.Enabled {
		logger.Info("metrics server disabled")
		return nil
	}

	RegisterMetrics(services, logger)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	s := &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}

	go func() {
		logger.Infof("metrics server listening on %s", s.srv.Addr)
		err := s.srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("metrics server failed: %v", err)
		}
	}()
	return s
}

func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
