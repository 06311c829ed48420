// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

package weight

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ava-labs/weightmeter/cmputils"
)

// CmpOpt returns a configuration for [cmp.Diff] to compare [Model] instances in
// tests. Nil and empty term slices within a [Formula] are considered equal.
func CmpOpt() cmp.Option {
	return cmp.Options{
		cmp.AllowUnexported(Model{}),
		cmputils.IfIn[Formula](cmpopts.EquateEmpty()),
	}
}
