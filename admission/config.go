// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package admission

import (
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/vms/components/gas"

	"github.com/ava-labs/weightmeter/params"
	"github.com/ava-labs/weightmeter/weight"
)

// Config parameterises a [Meter].
type Config struct {
	// MaxBlockWeight is the maximum total weight of all operations admitted
	// to a single block, including storage accesses.
	MaxBlockWeight gas.Gas
	// DBWeight prices storage accesses in units of weight.
	DBWeight weight.DBWeight
	// Price is the fee charged per unit of weight.
	Price gas.Price
}

// DefaultConfig returns the [Config] derived from the calibrated [params].
func DefaultConfig() Config {
	return Config{
		MaxBlockWeight: params.MaximumNormalBlockWeight,
		DBWeight:       params.RocksDBWeight(),
		Price:          params.FeePerWeight,
	}
}

var (
	errMaxBlockWeightZero = errors.New("max block weight is zero")
	errDBWeightZero       = errors.New("storage access has zero weight")
)

// Validate returns an error if the configuration would allow unbounded
// admission.
func (c *Config) Validate() error {
	if c.MaxBlockWeight == 0 {
		return errMaxBlockWeightZero
	}
	// Free storage accesses would allow a block to perform an unbounded number
	// of them.
	if c.DBWeight.Read == 0 || c.DBWeight.Write == 0 {
		return fmt.Errorf("%w: read = %d, write = %d", errDBWeightZero, c.DBWeight.Read, c.DBWeight.Write)
	}
	return nil
}
