// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the device-side sync runtime.
//
// It wires the gateway adapter, the local caches, and the version snapshot
// into a sync orchestrator that downloads exactly the content that changed,
// plus a background job that runs the cycle on an interval.
package client
