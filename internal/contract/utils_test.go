package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/roadmap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainKindLabel(t *testing.T) {
	tests := []struct {
		name     string
		kind     schema.MilestoneKind
		expected string
		hex      string
		symbol   string
	}{
		{name: "key", kind: schema.KeyGoLiveKind, expected: KeyGoLiveLabel, hex: KeyGoLiveHex, symbol: "★"},
		{name: "tech drop", kind: schema.TechDropKind, expected: TechDropLabel, hex: TechDropHex, symbol: "▲"},
		{name: "checkpoint", kind: schema.CheckpointKind, expected: CheckpointLabel, hex: CheckpointHex, symbol: "●"},
		{name: "critical", kind: schema.CriticalDependencyKind, expected: CriticalDependencyLabel, hex: CriticalDependencyHex, symbol: "◆"},
		{name: "unknown falls back", kind: "other", expected: CheckpointLabel, hex: CheckpointHex, symbol: "●"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainKindLabel(tt.kind))
			assert.Equal(t, tt.hex, GetKindHex(tt.kind))
			assert.Equal(t, tt.symbol, GetKindSymbol(tt.kind))
			assert.Contains(t, GetColorKindLabel(tt.kind), tt.expected)
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "out.json")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		width    int
		expected string
	}{
		{name: "fits", label: "Launch", width: 10, expected: "Launch"},
		{name: "truncated", label: "Checkout redesign", width: 10, expected: "Checkou..."},
		{name: "multibyte", label: "Zahlungsübersicht", width: 8, expected: "Zahlu..."},
		{name: "too narrow", label: "Checkout", width: 3, expected: "Checkout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateLabel(tt.label, tt.width))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{input: "yes", expected: true},
		{input: "TRUE", expected: true},
		{input: "1", expected: true},
		{input: "no", expected: false},
		{input: "False", expected: false},
		{input: "0", expected: false},
		{input: "maybe", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseList(t *testing.T) {
	assert.Equal(t, []string{"a", "b c", "d"}, ParseList(" a, b c ,,d,"))
	assert.Empty(t, ParseList(""))
}

func TestGetDBFilePath(t *testing.T) {
	assert.Equal(t, ".roadmap_order.db", filepath.Base(GetDBFilePath()))
}
