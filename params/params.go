// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package params declares calibrated chain parameters that are consumed, but
// not derived, by cost estimation. Values are produced by benchmarking on
// reference hardware.
package params

import (
	"github.com/ava-labs/weightmeter/weight"
)

// Weight is measured in picoseconds of execution time on reference hardware.
const (
	WeightPerNanos  = 1_000
	WeightPerMicros = 1_000 * WeightPerNanos
	WeightPerMillis = 1_000 * WeightPerMicros
	WeightPerSecond = 1_000 * WeightPerMillis
)

// DBReadWeight and DBWriteWeight are the weights of a single storage read and
// write, respectively, against a RocksDB-backed store.
const (
	DBReadWeight  = 25 * WeightPerMicros
	DBWriteWeight = 100 * WeightPerMicros
)

// RocksDBWeight returns the [weight.DBWeight] of a RocksDB-backed store.
func RocksDBWeight() weight.DBWeight {
	return weight.DBWeight{
		Read:  DBReadWeight,
		Write: DBWriteWeight,
	}
}

// MaximumBlockWeight is the weight of a block that takes two seconds to
// execute.
const MaximumBlockWeight = 2 * WeightPerSecond

// NormalDispatchRatioPercent is the share of [MaximumBlockWeight] available to
// user-submitted operations; the remainder is reserved for operational ones.
const NormalDispatchRatioPercent = 75

// MaximumNormalBlockWeight is the budget of user-submitted operations in a
// single block.
const MaximumNormalBlockWeight = MaximumBlockWeight / 100 * NormalDispatchRatioPercent

// FeePerWeight is the fee, in the smallest currency denomination, charged per
// unit of weight.
const FeePerWeight = 1
