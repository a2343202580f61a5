// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means the server config names no transport address.
var errNoHandlersAreCreated = errors.New("no transport address configured: set SERVER_ADDRESS or SERVER_GRPC_ADDRESS")
