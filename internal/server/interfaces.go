// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts down
	// gracefully.
	RunServer()

	// Run serves until ctx is done or a transport fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops every transport.
	Shutdown()
}

// transport is one listening server.
type transport interface {
	// listen binds the configured address.
	listen() error
	// serve blocks until the transport stops. A graceful stop is not an error.
	serve() error
	shutdown(ctx context.Context)
}
