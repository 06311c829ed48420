// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package admission is a pessimist. It assumes that every operation will
// consume the full resources estimated for it and refuses any operation that
// would push a block past its budget.
package admission

import (
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/vms/components/gas"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/weightmeter/intmath"
	"github.com/ava-labs/weightmeter/weight"
)

// An Op is an operation awaiting admission, as decoded by the dispatch layer.
type Op struct {
	Kind   weight.Kind
	Params weight.Params
}

// A Receipt describes the resources reserved for an admitted [Op].
type Receipt struct {
	Estimate weight.Estimate
	// Weight is Estimate with storage accesses folded in.
	Weight gas.Gas
	Fee    *uint256.Int
}

// A Meter tracks the worst-case weight of all operations admitted to the
// current block. It is not thread safe.
type Meter struct {
	model   *weight.Model
	config  Config
	log     logging.Logger
	metrics *metrics

	started     bool
	height      uint64
	blockWeight gas.Gas
	used        gas.Dimensions
}

// New constructs a new [Meter]. [Meter.StartBlock] MUST be called before the
// first call to [Meter.Admit]. If `reg` is nil then metrics are collected but
// not exported.
func New(model *weight.Model, config Config, log logging.Logger, reg prometheus.Registerer) (*Meter, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	ms, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}
	return &Meter{
		model:   model,
		config:  config,
		log:     log,
		metrics: ms,
	}, nil
}

var (
	errNonConsecutiveBlocks = errors.New("non-consecutive block numbers")
	errBlockNotStarted      = errors.New("no block started")
)

// StartBlock discards all usage tracked for the previous block, if any, and
// begins tracking the block at height `num`, which MUST be exactly one greater
// than the previous height.
func (m *Meter) StartBlock(num uint64) error {
	if m.started && num != m.height+1 {
		return fmt.Errorf("%w: %d then %d", errNonConsecutiveBlocks, m.height, num)
	}
	if m.started {
		m.log.Debug("Finished block",
			zap.Uint64("height", m.height),
			zap.Uint64("weight", uint64(m.blockWeight)),
		)
	}

	m.started = true
	m.height = num
	m.blockWeight = 0
	m.used = gas.Dimensions{}
	m.metrics.blockWeight.Set(0)
	return nil
}

// ErrBlockTooFull is returned by [Meter.Admit] if admission of the operation
// would have caused the block to exceed its maximum weight.
var ErrBlockTooFull = errors.New("block too full")

// Admit estimates the operation and, if it fits in the remainder of the
// block, reserves its weight.
//
// If the operation can not be admitted, an error is returned and the Meter is
// not modified. Errors from [weight.Model.Estimate] are contract violations
// and are returned unchanged, so [errors.Is] can distinguish them from
// [ErrBlockTooFull].
func (m *Meter) Admit(op Op) (*Receipt, error) {
	if !m.started {
		return nil, errBlockNotStarted
	}

	est, err := m.model.Estimate(op.Kind, op.Params)
	if err != nil {
		m.log.Error("Operation cost unavailable",
			zap.String("kind", string(op.Kind)),
			zap.Error(err),
		)
		m.metrics.observe(op.Kind, resultInvalid)
		return nil, err
	}

	// A saturated estimate is rejected even if the block has no limit, as its
	// true cost is unknown.
	w := gas.Gas(est.Weight(m.config.DBWeight))
	if rem := m.Remaining(); est.IsSaturated() || w > rem || w == intmath.Max[gas.Gas]() {
		m.log.Debug("Rejecting operation",
			zap.String("kind", string(op.Kind)),
			zap.Stringer("estimate", est),
			zap.Uint64("weight", uint64(w)),
			zap.Uint64("remaining", uint64(rem)),
		)
		m.metrics.observe(op.Kind, resultRejected)
		return nil, fmt.Errorf("%w: %q weight %d > %d remaining", ErrBlockTooFull, op.Kind, w, rem)
	}

	d := est.Dimensions()
	used, err := m.used.Add(&d)
	if err != nil {
		// Unreachable while storage accesses have non-zero weight, as enforced
		// by [Config.Validate].
		return nil, fmt.Errorf("accumulating %q usage: %w", op.Kind, err)
	}

	m.used = used
	m.blockWeight += w
	m.metrics.observe(op.Kind, resultAdmitted)
	m.metrics.blockWeight.Set(float64(m.blockWeight))

	return &Receipt{
		Estimate: est,
		Weight:   w,
		Fee:      m.fee(w),
	}, nil
}

// Remaining returns the weight still available in the current block.
func (m *Meter) Remaining() gas.Gas {
	return intmath.BoundedSubtract(m.config.MaxBlockWeight, m.blockWeight, 0)
}

// Used returns the total compute, storage reads, and storage writes admitted
// to the current block.
func (m *Meter) Used() gas.Dimensions {
	return m.used
}

// Fee returns the fee that would be charged for the estimate, without
// overflow.
func (m *Meter) Fee(e weight.Estimate) *uint256.Int {
	return m.fee(gas.Gas(e.Weight(m.config.DBWeight)))
}

func (m *Meter) fee(w gas.Gas) *uint256.Int {
	return new(uint256.Int).Mul(
		uint256.NewInt(uint64(w)),
		uint256.NewInt(uint64(m.config.Price)),
	)
}
