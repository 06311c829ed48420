// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package calibration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/weightmeter/proxy"
	"github.com/ava-labs/weightmeter/weight"
)

const announcements = `
operations:
  - kind: remove_announcement
    base: 38214000
    terms:
      - {param: a, coefficient: 628000}
      - {param: p, coefficient: 7000}
    reads: 2
    writes: 2
  - kind: scan
    base: 1000
    reads: 1
    readTerms:
      - {param: n, coefficient: 1}
`

func TestParse(t *testing.T) {
	tbl, err := Parse([]byte(announcements))
	require.NoError(t, err, "Parse()")

	m, err := tbl.Model()
	require.NoError(t, err, "%T.Model()", tbl)

	got, err := m.Estimate("remove_announcement", weight.Params{"a": 3, "p": 5})
	require.NoError(t, err)
	require.Equal(t, weight.Estimate{Compute: 40_133_000, Reads: 2, Writes: 2}, got)

	got, err = m.Estimate("scan", weight.Params{"n": 9})
	require.NoError(t, err)
	require.Equal(t, weight.Estimate{Compute: 1_000, Reads: 10}, got)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{
			name: "empty",
			in:   "",
		},
		{
			name: "no operations",
			in:   "operations: []",
		},
		{
			name: "malformed",
			in:   "operations: [",
		},
		{
			name: "unknown field",
			in: `
operations:
  - kind: x
    bse: 1
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			require.Error(t, err)
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	tbl, err := Parse([]byte(`
operations:
  - kind: x
    base: 1
  - kind: x
    base: 2
`))
	require.NoError(t, err, "Parse()")

	_, err = tbl.Model()
	require.ErrorIs(t, err, weight.ErrDuplicateOperationKind)
}

func TestExportedProxyTable(t *testing.T) {
	want, err := proxy.NewModel()
	require.NoError(t, err, "proxy.NewModel()")

	buf, err := FromModel(want).Bytes()
	require.NoError(t, err, "%T.Bytes()", &Table{})

	path := filepath.Join(t.TempDir(), "proxy.yaml")
	require.NoError(t, os.WriteFile(path, buf, 0o600))

	tbl, err := Load(path)
	require.NoError(t, err, "Load()")
	got, err := tbl.Model()
	require.NoError(t, err, "%T.Model()", tbl)

	if diff := cmp.Diff(want, got, weight.CmpOpt()); diff != "" {
		t.Errorf("Model loaded from exported table diff (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
