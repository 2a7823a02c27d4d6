// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServerAddress is returned when the configuration carries no HTTP
// address to bind the gateway to.
var errNoServerAddress = errors.New("no http server address configured")
