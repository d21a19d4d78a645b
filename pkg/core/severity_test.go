package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityError, "error"},
		{SeverityWarning, "warning"},
		{SeverityInfo, "info"},
		{SeverityHint, "hint"},
		{Severity(42), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sev.String())
		})
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in     string
		want   Severity
		wantOK bool
	}{
		{"error", SeverityError, true},
		{"ERROR", SeverityError, true},
		{"warning", SeverityWarning, true},
		{"warn", SeverityWarning, true},
		{" info ", SeverityInfo, true},
		{"hint", SeverityHint, true},
		{"fatal", SeverityWarning, false},
		{"", SeverityWarning, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSeverity(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestSeverity_MarshalText(t *testing.T) {
	b, err := SeverityInfo.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "info", string(b))
}

func TestSeverity_JSONRoundTrip(t *testing.T) {
	info := RuleInfo{ID: "TV01", DefaultSeverity: SeverityHint}
	data, err := json.Marshal(info)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"default_severity":"hint"`)

	var decoded RuleInfo
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, SeverityHint, decoded.DefaultSeverity)

	var s Severity
	require.NoError(t, s.UnmarshalText([]byte("warn")))
	assert.Equal(t, SeverityWarning, s)
	assert.Error(t, s.UnmarshalText([]byte("loud")))
}
