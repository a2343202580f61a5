// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the optional gRPC side of the server: the standard
// grpc.health.v1 service, so orchestrators can check the API without HTTP.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/resto-reviews/internal/logger"
	"github.com/MKhiriev/resto-reviews/internal/service"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "resto-reviews"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler returns a handler whose health status is NOT_SERVING until
// [Handler.SetServing] is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.SetServing(false)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to srv.
func (h *Handler) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, h.health)
}

// SetServing switches the reported health status.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
	h.logger.Debug().Str("func", "*Handler.SetServing").Str("status", status.String()).Msg("health status changed")
}

// Watch checks storage health right away and then every interval until ctx
// is done, reporting SERVING only while the check passes.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	serving := false
	for {
		err := h.services.AppInfoService.CheckHealth(ctx)
		if ctx.Err() != nil {
			return
		}
		if ok := err == nil; ok != serving {
			serving = ok
			h.SetServing(serving)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Shutdown reports NOT_SERVING for good and ignores later status changes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
