// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package admission

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/weightmeter/weight"
)

const (
	resultAdmitted = "admitted"
	resultRejected = "rejected"
	resultInvalid  = "invalid"
)

type metrics struct {
	operations  *prometheus.CounterVec
	blockWeight prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "admission",
				Name:      "operations_total",
				Help:      "Number of operations by kind and admission result.",
			},
			[]string{"kind", "result"},
		),
		blockWeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "admission",
			Name:      "block_weight",
			Help:      "Total weight admitted to the current block.",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.operations, m.blockWeight} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering metrics: %w", err)
		}
	}
	return m, nil
}

func (m *metrics) observe(k weight.Kind, result string) {
	m.operations.WithLabelValues(string(k), result).Inc()
}
