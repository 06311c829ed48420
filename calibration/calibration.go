// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package calibration decodes cost tables produced by external benchmarking
// tooling and registers them with a [weight.Builder].
//
// A table is a YAML document of the form:
//
//	operations:
//	  - kind: remove_announcement
//	    base: 38214000
//	    terms:
//	      - {param: a, coefficient: 628000}
//	      - {param: p, coefficient: 7000}
//	    reads: 2
//	    writes: 2
package calibration

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ava-labs/weightmeter/weight"
)

// A Table is a set of calibrated operation costs.
type Table struct {
	Operations []Operation `yaml:"operations"`
}

// An Operation is the calibrated cost of a single [weight.Kind].
type Operation struct {
	Kind       string `yaml:"kind"`
	Base       uint64 `yaml:"base"`
	Terms      []Term `yaml:"terms,omitempty"`
	Reads      uint32 `yaml:"reads"`
	Writes     uint32 `yaml:"writes"`
	ReadTerms  []Term `yaml:"readTerms,omitempty"`
	WriteTerms []Term `yaml:"writeTerms,omitempty"`
}

// A Term is the calibrated coefficient of a single parameter.
type Term struct {
	Param       string `yaml:"param"`
	Coefficient uint64 `yaml:"coefficient"`
}

var errEmptyTable = errors.New("empty calibration table")

// Load reads and parses the table at `path`.
func Load(path string) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading calibration table: %w", err)
	}
	return Parse(b)
}

// Parse parses a YAML table. Unknown fields are rejected to surface typos that
// would otherwise silently drop a cost.
func Parse(b []byte) (*Table, error) {
	if len(b) == 0 {
		return nil, errEmptyTable
	}
	t := new(Table)
	if err := yaml.UnmarshalWithOptions(b, t, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("parsing calibration table: %w", err)
	}
	if len(t.Operations) == 0 {
		return nil, errEmptyTable
	}
	return t, nil
}

// Bytes marshals the table as YAML such that [Parse] is its inverse.
func (t *Table) Bytes() ([]byte, error) {
	return yaml.Marshal(t)
}

// Register registers every operation in the table with the builder, stopping
// at the first error.
func (t *Table) Register(b *weight.Builder) error {
	for i, op := range t.Operations {
		if err := b.Register(weight.Kind(op.Kind), op.Formula()); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
	}
	return nil
}

// Model returns a [weight.Model] containing only the table's operations.
func (t *Table) Model() (*weight.Model, error) {
	b := weight.NewBuilder()
	if err := t.Register(b); err != nil {
		return nil, err
	}
	return b.Build()
}

// Formula converts the operation into a [weight.Formula].
func (op Operation) Formula() weight.Formula {
	return weight.Formula{
		Base:       op.Base,
		Terms:      toWeightTerms(op.Terms),
		Reads:      op.Reads,
		Writes:     op.Writes,
		ReadTerms:  toWeightTerms(op.ReadTerms),
		WriteTerms: toWeightTerms(op.WriteTerms),
	}
}

func toWeightTerms(ts []Term) []weight.Term {
	if len(ts) == 0 {
		return nil
	}
	out := make([]weight.Term, len(ts))
	for i, t := range ts {
		out[i] = weight.Term{
			Coefficient: t.Coefficient,
			Param:       weight.Param(t.Param),
		}
	}
	return out
}

func fromWeightTerms(ts []weight.Term) []Term {
	if len(ts) == 0 {
		return nil
	}
	out := make([]Term, len(ts))
	for i, t := range ts {
		out[i] = Term{
			Param:       string(t.Param),
			Coefficient: t.Coefficient,
		}
	}
	return out
}

// FromModel returns the table of every operation in the model, ordered by
// [weight.Model.Kinds]. It allows a compiled-in table to be exported for
// review or for use by tooling.
func FromModel(m *weight.Model) *Table {
	t := new(Table)
	for _, k := range m.Kinds() {
		f, _ := m.Formula(k)
		t.Operations = append(t.Operations, Operation{
			Kind:       string(k),
			Base:       f.Base,
			Terms:      fromWeightTerms(f.Terms),
			Reads:      f.Reads,
			Writes:     f.Writes,
			ReadTerms:  fromWeightTerms(f.ReadTerms),
			WriteTerms: fromWeightTerms(f.WriteTerms),
		})
	}
	return t
}
