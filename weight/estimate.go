// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package weight

import (
	"fmt"
	"math"

	"github.com/ava-labs/avalanchego/vms/components/gas"

	"github.com/ava-labs/weightmeter/intmath"
)

// An Estimate is the resource cost of a single operation instance. It is a
// transient value, consumed by admission and fee logic.
type Estimate struct {
	Compute       uint64
	Reads, Writes uint32
}

// Add returns the field-wise, saturating sum of the estimates. It allows a
// caller to compose the cost of a batch of operations.
func (e Estimate) Add(o Estimate) Estimate {
	return Estimate{
		Compute: intmath.SaturatingAdd(e.Compute, o.Compute),
		Reads:   intmath.SaturatingAdd(e.Reads, o.Reads),
		Writes:  intmath.SaturatingAdd(e.Writes, o.Writes),
	}
}

// Weight folds storage accesses into compute, returning
// `Compute + db.Read*Reads + db.Write*Writes` with saturation.
func (e Estimate) Weight(db DBWeight) uint64 {
	return intmath.SaturatingAdd(e.Compute, db.ReadsWrites(e.Reads, e.Writes))
}

// IsSaturated returns whether any field is at the maximum value of its type,
// which is the case if computing it overflowed.
func (e Estimate) IsSaturated() bool {
	return e.Compute == math.MaxUint64 ||
		e.Reads == math.MaxUint32 ||
		e.Writes == math.MaxUint32
}

// Dimensions returns the estimate as [gas.Dimensions]. The bandwidth dimension
// is not estimated and is therefore zero.
func (e Estimate) Dimensions() gas.Dimensions {
	var d gas.Dimensions
	d[gas.Compute] = e.Compute
	d[gas.DBRead] = uint64(e.Reads)
	d[gas.DBWrite] = uint64(e.Writes)
	return d
}

// String returns a human-readable representation of the estimate. It is not
// intended for parsing and its format MAY change.
func (e Estimate) String() string {
	return fmt.Sprintf("{compute: %d, reads: %d, writes: %d}", e.Compute, e.Reads, e.Writes)
}

// DBWeight is the compute-equivalent cost of a single storage access, priced
// outside of any [Model].
type DBWeight struct {
	Read, Write uint64
}

// Reads returns the cost of `n` storage reads.
func (db DBWeight) Reads(n uint32) uint64 {
	return intmath.SaturatingMul(db.Read, uint64(n))
}

// Writes returns the cost of `n` storage writes.
func (db DBWeight) Writes(n uint32) uint64 {
	return intmath.SaturatingMul(db.Write, uint64(n))
}

// ReadsWrites returns the cost of `r` reads and `w` writes.
func (db DBWeight) ReadsWrites(r, w uint32) uint64 {
	return intmath.SaturatingAdd(db.Reads(r), db.Writes(w))
}

// Dimensions returns the weights to pass to [gas.Dimensions.ToGas] such that
// the result is equal to [Estimate.Weight], in the absence of overflow.
func (db DBWeight) Dimensions() gas.Dimensions {
	var d gas.Dimensions
	d[gas.Compute] = 1
	d[gas.DBRead] = db.Read
	d[gas.DBWrite] = db.Write
	return d
}
