// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

package admission

import (
	"github.com/google/go-cmp/cmp"

	"github.com/ava-labs/weightmeter/cmputils"
)

// CmpOpt returns a configuration for [cmp.Diff] to compare [Receipt] instances
// in tests.
func CmpOpt() cmp.Option {
	return cmputils.IfIn[Receipt](cmputils.Uint256s())
}
