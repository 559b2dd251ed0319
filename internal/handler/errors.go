// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means the server config names neither an HTTP nor
// a gRPC address, so neither the triage API nor its health endpoint would be
// reachable. Startup fails on it.
var errNoHandlersAreCreated = errors.New("no transport configured: set SERVER_ADDRESS or SERVER_GRPC_ADDRESS")
