// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

package cmputils

import (
	"github.com/google/go-cmp/cmp"
	"github.com/holiman/uint256"
)

// Uint256s returns a [cmp.Comparer] for [uint256.Int] pointers. A nil pointer is
// not equal to zero.
func Uint256s() cmp.Option {
	return ComparerWithNilCheck(func(a, b *uint256.Int) bool {
		return a.Eq(b)
	})
}
