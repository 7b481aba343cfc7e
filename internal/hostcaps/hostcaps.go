// Package hostcaps selects the checksum strategy for the host CPU once, at
// process start. The choice never changes afterwards, so callers may cache
// anything derived from it.
package hostcaps

import (
	"os"
	"strings"
)

// Tier is a checksum strategy backed by portable code. Wider tiers fold more
// input lanes per step and pay off on cores with fast unaligned 64-bit loads
// and deep out-of-order windows.
type Tier uint8

const (
	// TierTable processes input through lookup tables only.
	TierTable Tier = iota
	// TierFold4 folds 4 lanes of 8 bytes per block.
	TierFold4
	// TierFold8 folds 8 lanes of 8 bytes per block.
	TierFold8
)

// String returns the tier token used inside target descriptor strings.
func (t Tier) String() string {
	switch t {
	case TierTable:
		return "table"
	case TierFold4:
		return "fold4"
	case TierFold8:
		return "fold8"
	default:
		return "unknown"
	}
}

// ParseTier parses a tier token. Matching is case-insensitive.
func ParseTier(s string) (Tier, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table":
		return TierTable, true
	case "fold4":
		return TierFold4, true
	case "fold8":
		return TierFold8, true
	default:
		return TierTable, false
	}
}

// EnvOverride names the environment variable that forces a tier regardless of
// detected CPU features. Invalid values are ignored.
const EnvOverride = "CRC32FOLD_TIER"

// Package-level state, written only from init. No mutex needed: Go runs all
// init functions before any other package code.
var (
	activeTier Tier

	// CPU feature flags, set by the per-architecture init files.
	hasAVX2  bool // amd64
	hasASIMD bool // arm64
)

// initCapabilities is called from the per-architecture init functions after
// the feature flags are populated.
func initCapabilities(def Tier) {
	activeTier = def
	if v, ok := os.LookupEnv(EnvOverride); ok {
		if t, ok := ParseTier(v); ok {
			activeTier = t
		}
	}
}

// Active returns the tier selected at process start.
func Active() Tier {
	return activeTier
}

// Target returns the target descriptor for the selected tier, in the form
// {architecture}-{strategy}-tables. The table tier is the software fallback
// on every architecture and reports itself as such.
func Target() string {
	return TargetFor(activeTier)
}

// TargetFor returns the target descriptor a given tier would report.
func TargetFor(t Tier) string {
	if t == TierTable {
		return "software-fallback-tables"
	}
	return archFamily + "-" + t.String() + "-tables"
}
