package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/vultisig/openassets/internal/api"
	"github.com/vultisig/openassets/internal/logging"
	"github.com/vultisig/openassets/internal/metrics"
)

type config struct {
	LogFormat logging.LogFormat `envconfig:"LOG_FORMAT" default:"text"`
	Network   string            `envconfig:"NETWORK" default:"mainnet"`
	Server    api.Config
	Metrics   metrics.Config
}

func newConfig() (config, error) {
	var cfg config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return config{}, errors.Wrap(err, "failed to process env var")
	}
	return cfg, nil
}
