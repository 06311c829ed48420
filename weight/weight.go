// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package weight estimates the resources consumed by an operation before it is
// executed.
//
// Every operation [Kind] has a [Formula]: a fixed base cost plus a linear
// combination of runtime parameters (e.g. the number of items in a list
// argument), along with the number of storage reads and writes it performs.
// Formulae are registered with a [Builder], which is then frozen into an
// immutable [Model] that can be shared by any number of concurrent readers.
//
// All arithmetic saturates. An estimate that would overflow is clamped to the
// maximum representable value, which will then fail any budget check, instead
// of wrapping around to a deceptively small cost.
package weight

import (
	"errors"
	"slices"
)

// A Kind identifies a distinguishable unit of work, e.g. "announce".
type Kind string

// A Param identifies a runtime-supplied scalar, e.g. the number of existing
// announcements, that is multiplied by a [Term] coefficient.
type Param string

// Params are the parameter values of a single operation. Entries not referenced
// by the operation's [Formula] are ignored.
type Params map[Param]uint64

// A Term is a single coefficient in a [Formula]'s linear combination.
type Term struct {
	Coefficient uint64
	Param       Param
}

// A Formula defines the cost of a single operation [Kind].
//
// Coefficients MUST already account for any sub-operations; a formula is
// evaluated in time proportional to its number of terms and never recurses.
type Formula struct {
	// Base is the compute cost independent of any parameter.
	Base uint64
	// Terms are added, in order, to Base.
	Terms []Term

	// Reads and Writes are the fixed number of storage accesses.
	Reads, Writes uint32
	// ReadTerms and WriteTerms, if non-empty, are added to Reads and Writes,
	// respectively, under the same rules as Terms are added to Base.
	ReadTerms, WriteTerms []Term
}

func (f Formula) clone() Formula {
	f.Terms = slices.Clone(f.Terms)
	f.ReadTerms = slices.Clone(f.ReadTerms)
	f.WriteTerms = slices.Clone(f.WriteTerms)
	return f
}

// allTerms returns every term in the formula, regardless of which resource it
// contributes to.
func (f Formula) allTerms() []Term {
	return slices.Concat(f.Terms, f.ReadTerms, f.WriteTerms)
}

// Contract violations. These are never transient and MUST NOT be retried; they
// indicate a bug in the caller or in the registered configuration.
var (
	ErrUnknownOperationKind   = errors.New("unknown operation kind")
	ErrMissingParameter       = errors.New("missing parameter")
	ErrDuplicateOperationKind = errors.New("duplicate operation kind")
	ErrInvalidFormula         = errors.New("invalid formula")
	ErrFrozen                 = errors.New("builder already built")
)
