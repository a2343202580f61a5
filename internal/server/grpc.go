// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/resto-reviews/internal/config"
	myGRPC "github.com/MKhiriev/resto-reviews/internal/handler/grpc"
	"github.com/MKhiriev/resto-reviews/internal/logger"
)

// healthWatchInterval is how often the reported gRPC health status is
// refreshed from a storage check.
const healthWatchInterval = 5 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	// watchCtx bounds the health watcher started by serve.
	watchCtx  context.Context
	stopWatch context.CancelFunc

	address  string
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer()
	handler.Register(srv)
	watchCtx, stopWatch := context.WithCancel(context.Background())

	return &grpcServer{
		handler:   handler,
		watchCtx:  watchCtx,
		stopWatch: stopWatch,
		address:   cfg.GRPCAddress,
		server:    srv,
		logger:    logger,
	}
}

func (g *grpcServer) listen() error {
	if g.listener != nil {
		return nil
	}
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("error listening gRPC address %s: %w", g.address, err)
	}
	g.listener = listener
	return nil
}

func (g *grpcServer) serve() error {
	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("gRPC server listening")
	go g.handler.Watch(g.watchCtx, healthWatchInterval)

	if err := g.server.Serve(g.listener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// shutdown stops accepting RPCs and waits for running ones unless ctx
// expires first.
func (g *grpcServer) shutdown(ctx context.Context) {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.stopWatch()
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.server.Stop()
	}
}
