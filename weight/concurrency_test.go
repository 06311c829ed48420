// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package weight

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ava-labs/weightmeter/metertest"
)

func TestMain(m *testing.M) {
	metertest.NoLeak(m)
}

func TestConcurrentEstimates(t *testing.T) {
	m := newTestModel(t)
	want, err := m.Estimate(removeAnnouncement, Params{"a": 3, "p": 5})
	if err != nil {
		t.Fatalf("%T.Estimate() error %v", m, err)
	}

	const (
		readers = 32
		calls   = 1_000
	)
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		got = make(map[Estimate]int)
	)
	for range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make(map[Estimate]int)
			for range calls {
				e, err := m.Estimate(removeAnnouncement, Params{"a": 3, "p": 5})
				if err != nil {
					t.Errorf("%T.Estimate() error %v", m, err)
					return
				}
				local[e]++
			}
			mu.Lock()
			defer mu.Unlock()
			for e, n := range local {
				got[e] += n
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, map[Estimate]int{want: readers * calls}, got, "all concurrent estimates")
}
