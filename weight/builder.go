// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package weight

import (
	"fmt"
	"maps"
)

// A Builder collects [Formula] registrations during initialisation. It is not
// thread safe. Once [Builder.Build] returns, the Builder is spent and all
// further registrations are rejected with [ErrFrozen].
//
// The first failed registration is remembered and returned by
// [Builder.Build], so a dropped [Builder.Register] error can not silently
// produce a Model missing a kind.
type Builder struct {
	formulae map[Kind]Formula
	built    bool
	err      error
}

// NewBuilder returns an empty [Builder].
func NewBuilder() *Builder {
	return &Builder{
		formulae: make(map[Kind]Formula),
	}
}

// Register adds the formula for the operation kind. Registering the same kind
// twice returns [ErrDuplicateOperationKind]. Any error also causes
// [Builder.Build] to fail. The formula is copied so later modification of its slices by the
// caller has no effect.
func (b *Builder) Register(k Kind, f Formula) error {
	if b.built {
		return fmt.Errorf("%w: registering %q", ErrFrozen, k)
	}
	if err := b.register(k, f); err != nil {
		if b.err == nil {
			b.err = err
		}
		return err
	}
	return nil
}

func (b *Builder) register(k Kind, f Formula) error {
	if k == "" {
		return fmt.Errorf("%w: empty operation kind", ErrInvalidFormula)
	}
	if _, ok := b.formulae[k]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateOperationKind, k)
	}
	for i, t := range f.allTerms() {
		if t.Param == "" {
			return fmt.Errorf("%w: %q term %d has empty parameter", ErrInvalidFormula, k, i)
		}
	}
	b.formulae[k] = f.clone()
	return nil
}

// MustRegister is equivalent to [Builder.Register] except that it panics on
// error. It is intended for static tables known at compile time.
func (b *Builder) MustRegister(k Kind, f Formula) {
	if err := b.Register(k, f); err != nil {
		panic(err)
	}
}

// Build freezes the registered formulae into a [Model], or returns the first
// registration error if any. The Builder MUST NOT be used afterwards; it is not
// possible to observe a partially-registered Model.
func (b *Builder) Build() (*Model, error) {
	if b.built {
		return nil, fmt.Errorf("%w: Build() called twice", ErrFrozen)
	}
	b.built = true
	if b.err != nil {
		b.formulae = nil
		return nil, fmt.Errorf("building model: %w", b.err)
	}
	m := &Model{
		formulae: maps.Clone(b.formulae),
	}
	b.formulae = nil
	return m, nil
}
