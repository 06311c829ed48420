// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package weight

import (
	"math"
	"testing"

	"github.com/ava-labs/avalanchego/utils/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	removeAnnouncement Kind = "remove_announcement"
	anonymous          Kind = "anonymous"
	parameterised      Kind = "parameterised"
)

func newTestModel(tb testing.TB) *Model {
	tb.Helper()
	b := NewBuilder()
	b.MustRegister(removeAnnouncement, Formula{
		Base: 38_214_000,
		Terms: []Term{
			{Coefficient: 628_000, Param: "a"},
			{Coefficient: 7_000, Param: "p"},
		},
		Reads:  2,
		Writes: 2,
	})
	b.MustRegister(anonymous, Formula{
		Base:   50_739_000,
		Terms:  []Term{{Coefficient: 26_000, Param: "p"}},
		Reads:  2,
		Writes: 1,
	})
	b.MustRegister(parameterised, Formula{
		Base:       1_000,
		Terms:      []Term{{Coefficient: 10, Param: "n"}},
		Reads:      1,
		ReadTerms:  []Term{{Coefficient: 1, Param: "n"}},
		Writes:     0,
		WriteTerms: []Term{{Coefficient: 2, Param: "m"}},
	})
	m, err := b.Build()
	require.NoError(tb, err, "Build()")
	return m
}

func TestEstimate(t *testing.T) {
	m := newTestModel(t)

	tests := []struct {
		name   string
		kind   Kind
		params Params
		want   Estimate
	}{
		{
			name:   "remove_announcement",
			kind:   removeAnnouncement,
			params: Params{"a": 3, "p": 5},
			want:   Estimate{Compute: 40_133_000, Reads: 2, Writes: 2},
		},
		{
			name:   "extra params ignored",
			kind:   removeAnnouncement,
			params: Params{"a": 3, "p": 5, "unused": math.MaxUint64},
			want:   Estimate{Compute: 40_133_000, Reads: 2, Writes: 2},
		},
		{
			name:   "anonymous zero proxies",
			kind:   anonymous,
			params: Params{"p": 0},
			want:   Estimate{Compute: 50_739_000, Reads: 2, Writes: 1},
		},
		{
			// 26_000 * MaxUint32 fits in a uint64, so a uint32 parameter can not
			// saturate compute; it is exact rather than MaxUint64.
			name:   "anonymous max uint32 proxies is exact not saturated",
			kind:   anonymous,
			params: Params{"p": math.MaxUint32},
			want:   Estimate{Compute: 50_739_000 + 26_000*math.MaxUint32, Reads: 2, Writes: 1},
		},
		{
			name:   "anonymous saturated",
			kind:   anonymous,
			params: Params{"p": math.MaxUint64},
			want:   Estimate{Compute: math.MaxUint64, Reads: 2, Writes: 1},
		},
		{
			name:   "parameterised storage",
			kind:   parameterised,
			params: Params{"n": 4, "m": 3},
			want:   Estimate{Compute: 1_040, Reads: 5, Writes: 6},
		},
		{
			name:   "parameterised storage saturates at uint32",
			kind:   parameterised,
			params: Params{"n": math.MaxUint32, "m": math.MaxUint32},
			want: Estimate{
				Compute: 1_000 + 10*math.MaxUint32,
				Reads:   math.MaxUint32,
				Writes:  math.MaxUint32,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Estimate(tt.kind, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := m.Estimate(tt.kind, tt.params)
			require.NoError(t, err)
			assert.Equal(t, got, again, "repeated estimate")
		})
	}
}

func TestEstimateContractViolations(t *testing.T) {
	m := newTestModel(t)
	wantKinds := m.Kinds()

	tests := []struct {
		name    string
		kind    Kind
		params  Params
		wantErr error
	}{
		{
			name:    "unknown kind",
			kind:    "proxy",
			params:  Params{"p": 1},
			wantErr: ErrUnknownOperationKind,
		},
		{
			name:    "nil params",
			kind:    anonymous,
			wantErr: ErrMissingParameter,
		},
		{
			name:    "second term missing",
			kind:    removeAnnouncement,
			params:  Params{"a": 1},
			wantErr: ErrMissingParameter,
		},
		{
			name:    "write term missing",
			kind:    parameterised,
			params:  Params{"n": 1},
			wantErr: ErrMissingParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Estimate(tt.kind, tt.params)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, got)
			assert.Equal(t, wantKinds, m.Kinds(), "registered kinds after failed estimate")
		})
	}

	// The model is unchanged so a valid call still succeeds.
	got, err := m.Estimate(removeAnnouncement, Params{"a": 3, "p": 5})
	require.NoError(t, err)
	assert.Equal(t, uint64(40_133_000), got.Compute)
}

func TestZeroModel(t *testing.T) {
	var m Model
	_, err := m.Estimate("anything", nil)
	require.ErrorIs(t, err, ErrUnknownOperationKind)
	require.Empty(t, m.Kinds())
}

func TestModelIntrospection(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, []Kind{anonymous, parameterised, removeAnnouncement}, m.Kinds())

	ps, ok := m.Params(parameterised)
	require.True(t, ok)
	assert.Equal(t, set.Of[Param]("n", "m"), ps)

	ps, ok = m.Params(removeAnnouncement)
	require.True(t, ok)
	assert.Equal(t, set.Of[Param]("a", "p"), ps)

	_, ok = m.Params("nope")
	assert.False(t, ok)

	f, ok := m.Formula(anonymous)
	require.True(t, ok)
	assert.Equal(t, uint64(50_739_000), f.Base)
	assert.Equal(t, []Term{{Coefficient: 26_000, Param: "p"}}, f.Terms)

	_, ok = m.Formula("nope")
	assert.False(t, ok)
}
