package api

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/btcsuite/btcd/txscript"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vultisig/openassets/internal/metrics"
	"github.com/vultisig/openassets/internal/openassets"
	"github.com/vultisig/openassets/internal/openassets/address"
)

type Config struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"8080"`
}

type Server struct {
	cfg       Config
	converter *openassets.Converter
	logger    *logrus.Logger
	echo      *echo.Echo
}

type addressResponse struct {
	Network      string `json:"network"`
	Kind         string `json:"kind"`
	BaseAddress  string `json:"base_address"`
	AssetAddress string `json:"asset_address"`
	ScriptPubKey string `json:"script_pubkey"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewServer(cfg Config, converter *openassets.Converter, logger *logrus.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(metrics.HTTPMiddleware())

	s := &Server{
		cfg:       cfg,
		converter: converter,
		logger:    logger,
		echo:      e,
	}

	e.GET("/healthz", s.health)
	v1 := e.Group("/v1")
	v1.GET("/asset-address/:address", s.assetAddress)
	v1.GET("/base-address/:address", s.baseAddress)
	return s
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until ctx is cancelled, then shuts down.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("api server listening on %s (network %s)", addr, s.converter.Network())
		err := s.echo.Start(addr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := s.echo.Shutdown(shutdownCtx)
	if err != nil {
		return errors.Wrap(err, "failed to shutdown api server")
	}
	return nil
}

func (s *Server) health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (s *Server) assetAddress(c echo.Context) error {
	conv, err := s.converter.ToAsset(c.Param("address"))
	if err != nil {
		return s.writeError(c, err)
	}
	return s.writeConversion(c, conv)
}

func (s *Server) baseAddress(c echo.Context) error {
	kind, err := address.ParseKind(c.QueryParam("kind"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	conv, err := s.converter.ToBase(c.Param("address"), kind)
	if err != nil {
		return s.writeError(c, err)
	}
	return s.writeConversion(c, conv)
}

func (s *Server) writeConversion(c echo.Context, conv openassets.Conversion) error {
	script, err := txscript.PayToAddrScript(conv.Base)
	if err != nil {
		s.logger.WithError(err).Error("api: failed to build script")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to build script"})
	}
	return c.JSON(http.StatusOK, addressResponse{
		Network:      conv.Network.String(),
		Kind:         conv.Kind.String(),
		BaseAddress:  conv.Base.EncodeAddress(),
		AssetAddress: conv.Asset.String(),
		ScriptPubKey: hex.EncodeToString(script),
	})
}

func (s *Server) writeError(c echo.Context, err error) error {
	switch openassets.Classify(err) {
	case openassets.ResultMalformed, openassets.ResultUnsupportedPayload, openassets.ResultNetworkMismatch:
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		s.logger.WithError(err).Error("api: conversion failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
