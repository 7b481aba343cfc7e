// Package crc32fold computes CRC-32/ISCSI (CRC-32C) and CRC-32/ISO-HDLC
// checksums using multi-lane folding over constants derived from each
// polynomial, with a table-driven scalar tail. The strategy is picked once
// at process start from the host CPU; Target reports which path is active.
//
// Update follows hash/crc32 conventions: pass 0 to start a checksum and a
// previous result to continue it, so results are directly comparable with
// the published check values for each variant.
package crc32fold

import (
	"sync"

	"github.com/hashfold/crc32fold/internal/hostcaps"
)

// Size of a CRC-32 checksum in bytes.
const Size = 4

// Algorithm identifies one of the two supported CRC-32 variants.
type Algorithm uint8

const (
	// ISCSI is CRC-32/ISCSI, better known as CRC-32C
	// (Castagnoli polynomial 0x1EDC6F41, reflected).
	ISCSI Algorithm = iota
	// ISOHDLC is CRC-32/ISO-HDLC, the ubiquitous "CRC-32"
	// (polynomial 0x04C11DB7, reflected).
	ISOHDLC
)

// String returns the catalogue name of the variant.
func (a Algorithm) String() string {
	switch a {
	case ISCSI:
		return "CRC-32/ISCSI"
	case ISOHDLC:
		return "CRC-32/ISO-HDLC"
	default:
		return "unknown"
	}
}

// Target descriptors an engine may report, depending on host architecture
// and the tier selected at startup.
const (
	TargetX86Fold8         = "x86_64-fold8-tables"
	TargetX86Fold4         = "x86_64-fold4-tables"
	TargetARM64Fold8       = "aarch64-fold8-tables"
	TargetARM64Fold4       = "aarch64-fold4-tables"
	TargetSoftwareFallback = "software-fallback-tables"
)

// config fixes one variant: catalogue name, reflected polynomial, final xor
// mask, and the published check value of the ASCII string "123456789".
type config struct {
	name   string
	poly   uint32
	xorout uint32
	check  uint32
}

var (
	iscsiConfig   = config{name: "CRC-32/ISCSI", poly: 0x82F63B78, xorout: 0xFFFFFFFF, check: 0xE3069283}
	isoHDLCConfig = config{name: "CRC-32/ISO-HDLC", poly: 0xEDB88320, xorout: 0xFFFFFFFF, check: 0xCBF43926}
)

// Engines are built on first use. Table and constant derivation is cheap but
// not free, and programs frequently use only one variant.
var (
	iscsiOnce     sync.Once
	iscsiEngine   *engine
	isoHDLCOnce   sync.Once
	isoHDLCEngine *engine
)

func iscsi() *engine {
	iscsiOnce.Do(func() {
		iscsiEngine = newEngine(iscsiConfig, hostcaps.Active())
	})
	return iscsiEngine
}

func isoHDLC() *engine {
	isoHDLCOnce.Do(func() {
		isoHDLCEngine = newEngine(isoHDLCConfig, hostcaps.Active())
	})
	return isoHDLCEngine
}

func (a Algorithm) engine() *engine {
	switch a {
	case ISCSI:
		return iscsi()
	case ISOHDLC:
		return isoHDLC()
	default:
		panic("crc32fold: unknown algorithm")
	}
}

// Update returns the result of adding the bytes in p to crc. Pass 0 for a
// fresh checksum. Updating with a zero-length p returns crc unchanged.
func Update(a Algorithm, crc uint32, p []byte) uint32 {
	return a.engine().update(crc, p)
}

// Checksum returns the CRC-32 checksum of data using the given variant.
func Checksum(a Algorithm, data []byte) uint32 {
	return a.engine().update(0, data)
}

// Target returns the target descriptor of the code path backing the variant.
// The value is fixed for the life of the process.
func Target(a Algorithm) string {
	return a.engine().target
}

// UpdateISCSI returns the result of adding the bytes in p to crc using
// CRC-32/ISCSI.
func UpdateISCSI(crc uint32, p []byte) uint32 {
	return iscsi().update(crc, p)
}

// ChecksumISCSI returns the CRC-32/ISCSI checksum of data.
func ChecksumISCSI(data []byte) uint32 {
	return iscsi().update(0, data)
}

// ISCSITarget returns the target descriptor of the CRC-32/ISCSI engine.
func ISCSITarget() string {
	return iscsi().target
}

// UpdateISOHDLC returns the result of adding the bytes in p to crc using
// CRC-32/ISO-HDLC.
func UpdateISOHDLC(crc uint32, p []byte) uint32 {
	return isoHDLC().update(crc, p)
}

// ChecksumISOHDLC returns the CRC-32/ISO-HDLC checksum of data.
func ChecksumISOHDLC(data []byte) uint32 {
	return isoHDLC().update(0, data)
}

// ISOHDLCTarget returns the target descriptor of the CRC-32/ISO-HDLC engine.
func ISOHDLCTarget() string {
	return isoHDLC().target
}
