package openassets

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vultisig/openassets/internal/network"
	"github.com/vultisig/openassets/internal/openassets/address"
)

const (
	DirectionToAsset = "to_asset"
	DirectionToBase  = "to_base"

	ResultOK                 = "ok"
	ResultMalformed          = "malformed"
	ResultUnsupportedPayload = "unsupported_payload"
	ResultNetworkMismatch    = "network_mismatch"
	ResultError              = "error"
)

// Metrics records conversion outcomes.
type Metrics interface {
	RecordConversion(direction, result string)
}

// Conversion holds both views of one address.
type Conversion struct {
	Network network.Network
	Kind    address.Kind
	Base    btcutil.Address
	Asset   address.AssetAddress
}

// Converter converts address text on a single network.
type Converter struct {
	net     network.Network
	logger  *logrus.Logger
	metrics Metrics
}

func NewConverter(net network.Network, logger *logrus.Logger, metrics Metrics) (*Converter, error) {
	if !net.Valid() {
		return nil, errors.Wrapf(network.ErrUnsupportedNetwork, "%s", net)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Converter{
		net:     net,
		logger:  logger,
		metrics: metrics,
	}, nil
}

func (c *Converter) Network() network.Network {
	return c.net
}

// ToAsset converts Bitcoin address text to its asset address.
func (c *Converter) ToAsset(baseText string) (Conversion, error) {
	base, err := address.ParseBaseAddress(baseText, c.net)
	if err != nil {
		return Conversion{}, c.fail(DirectionToAsset, baseText, err)
	}

	asset, err := address.FromBaseAddressOnNet(base, c.net)
	if err != nil {
		return Conversion{}, c.fail(DirectionToAsset, baseText, err)
	}

	c.record(DirectionToAsset, ResultOK)
	return Conversion{
		Network: c.net,
		Kind:    asset.Kind(),
		Base:    base,
		Asset:   asset,
	}, nil
}

// ToBase converts asset address text to the Bitcoin address of the given kind.
func (c *Converter) ToBase(assetText string, kind address.Kind) (Conversion, error) {
	asset, err := address.Decode(assetText, c.net, kind)
	if err != nil {
		return Conversion{}, c.fail(DirectionToBase, assetText, err)
	}

	base, err := asset.ToBaseAddress()
	if err != nil {
		return Conversion{}, c.fail(DirectionToBase, assetText, err)
	}

	c.record(DirectionToBase, ResultOK)
	return Conversion{
		Network: c.net,
		Kind:    kind,
		Base:    base,
		Asset:   asset,
	}, nil
}

func (c *Converter) fail(direction, input string, err error) error {
	result := Classify(err)
	c.logger.WithFields(logrus.Fields{
		"direction": direction,
		"network":   c.net.String(),
		"input":     input,
		"result":    result,
	}).WithError(err).Debug("openassets: conversion rejected")
	c.record(direction, result)
	return err
}

func (c *Converter) record(direction, result string) {
	if c.metrics != nil {
		c.metrics.RecordConversion(direction, result)
	}
}

// Classify maps a conversion error to a result label.
func Classify(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, address.ErrUnsupportedPayload):
		return ResultUnsupportedPayload
	case errors.Is(err, address.ErrNetworkMismatch):
		return ResultNetworkMismatch
	case errors.Is(err, address.ErrMalformedAddress):
		return ResultMalformed
	default:
		return ResultError
	}
}
