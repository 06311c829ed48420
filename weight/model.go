// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package weight

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ava-labs/avalanchego/utils/set"

	"github.com/ava-labs/weightmeter/intmath"
)

// A Model maps an operation [Kind] and its [Params] to an [Estimate]. It is
// immutable and therefore safe for concurrent use. The zero value is a valid,
// empty Model but a Model is typically constructed with a [Builder].
type Model struct {
	formulae map[Kind]Formula
}

// Estimate returns the resources that the operation will consume. Every
// [Param] referenced by the kind's [Formula] MUST be present in `ps`.
//
// The returned error, if non-nil, wraps either [ErrUnknownOperationKind] or
// [ErrMissingParameter]. Overflow is not an error; see [Estimate.IsSaturated].
func (m *Model) Estimate(k Kind, ps Params) (Estimate, error) {
	f, ok := m.formulae[k]
	if !ok {
		return Estimate{}, fmt.Errorf("%w: %q", ErrUnknownOperationKind, k)
	}

	compute, err := evaluate(f.Base, f.Terms, ps)
	if err != nil {
		return Estimate{}, fmt.Errorf("%q compute: %w", k, err)
	}
	reads, err := evaluate(uint64(f.Reads), f.ReadTerms, ps)
	if err != nil {
		return Estimate{}, fmt.Errorf("%q reads: %w", k, err)
	}
	writes, err := evaluate(uint64(f.Writes), f.WriteTerms, ps)
	if err != nil {
		return Estimate{}, fmt.Errorf("%q writes: %w", k, err)
	}

	return Estimate{
		Compute: compute,
		Reads:   intmath.Saturate[uint32](reads),
		Writes:  intmath.Saturate[uint32](writes),
	}, nil
}

// evaluate returns `base + sum(t.Coefficient * ps[t.Param])`, saturating at
// every step and summing in the order of `terms`.
func evaluate(base uint64, terms []Term, ps Params) (uint64, error) {
	acc := base
	for _, t := range terms {
		v, ok := ps[t.Param]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMissingParameter, t.Param)
		}
		acc = intmath.SaturatingMulAdd(acc, t.Coefficient, v)
	}
	return acc, nil
}

// Kinds returns all registered operation kinds in lexical order.
func (m *Model) Kinds() []Kind {
	return slices.Sorted(maps.Keys(m.formulae))
}

// Formula returns a copy of the formula registered for the kind.
func (m *Model) Formula(k Kind) (Formula, bool) {
	f, ok := m.formulae[k]
	if !ok {
		return Formula{}, false
	}
	return f.clone(), true
}

// Params returns the set of parameters that MUST be passed to
// [Model.Estimate] for the kind.
func (m *Model) Params(k Kind) (set.Set[Param], bool) {
	f, ok := m.formulae[k]
	if !ok {
		return nil, false
	}
	terms := f.allTerms()
	s := set.NewSet[Param](len(terms))
	for _, t := range terms {
		s.Add(t.Param)
	}
	return s, true
}
