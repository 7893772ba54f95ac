package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vultisig/openassets/internal/api"
	"github.com/vultisig/openassets/internal/graceful"
	"github.com/vultisig/openassets/internal/logging"
	"github.com/vultisig/openassets/internal/metrics"
	"github.com/vultisig/openassets/internal/network"
	"github.com/vultisig/openassets/internal/openassets"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := newConfig()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	logger := logging.NewLogger(cfg.LogFormat)

	net, err := network.Parse(cfg.Network)
	if err != nil {
		logger.Fatalf("invalid NETWORK: %v", err)
	}

	metricsServer := metrics.StartMetricsServer(
		cfg.Metrics,
		[]string{metrics.ServiceHTTP, metrics.ServiceConverter},
		logger,
	)
	defer func() {
		if metricsServer != nil {
			if err := metricsServer.Stop(ctx); err != nil {
				logger.Errorf("failed to stop metrics server: %v", err)
			}
		}
	}()

	converter, err := openassets.NewConverter(net, logger, metrics.NewConverterMetrics())
	if err != nil {
		logger.Fatalf("failed to initialize converter: %v", err)
	}

	srv := api.NewServer(cfg.Server, converter, logger)

	graceful.CancelOnSignal(ctx, cancel, logger)

	err = srv.Start(ctx)
	if err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
