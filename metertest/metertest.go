// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metertest provides testing helpers for cost estimation and
// admission.
package metertest

import (
	"testing"

	"go.uber.org/goleak"
)

// NoLeak calls [goleak.VerifyTestMain], failing the package's tests if any
// goroutine outlives them.
func NoLeak(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreCurrent())
}
