package hostcaps

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierString(t *testing.T) {
	assert.Equal(t, "table", TierTable.String())
	assert.Equal(t, "fold4", TierFold4.String())
	assert.Equal(t, "fold8", TierFold8.String())
	assert.Equal(t, "unknown", Tier(42).String())
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		in   string
		want Tier
		ok   bool
	}{
		{"table", TierTable, true},
		{"fold4", TierFold4, true},
		{"fold8", TierFold8, true},
		{"FOLD8", TierFold8, true},
		{" fold4 ", TierFold4, true},
		{"", TierTable, false},
		{"avx512", TierTable, false},
	}
	for _, tc := range tests {
		got, ok := ParseTier(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseTierRoundTrip(t *testing.T) {
	for _, tier := range []Tier{TierTable, TierFold4, TierFold8} {
		got, ok := ParseTier(tier.String())
		assert.True(t, ok)
		assert.Equal(t, tier, got)
	}
}

func TestActiveStable(t *testing.T) {
	first := Active()
	for i := 0; i < 4; i++ {
		assert.Equal(t, first, Active())
	}
	assert.Equal(t, TargetFor(Active()), Target())
}

func TestTargetFor(t *testing.T) {
	assert.Equal(t, "software-fallback-tables", TargetFor(TierTable))
	for _, tier := range []Tier{TierFold4, TierFold8} {
		target := TargetFor(tier)
		assert.True(t, strings.HasSuffix(target, "-"+tier.String()+"-tables"), target)
		assert.NotContains(t, target, " ")
	}
}
