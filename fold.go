package crc32fold

import (
	"encoding/binary"

	"github.com/hashfold/crc32fold/internal/hostcaps"
)

// The engine works in the reflected bit ordering throughout: bit 31 of a
// register holds the x^0 coefficient and bit 0 holds x^31, so little-endian
// 64-bit loads of the input stream are already in the right representation.
// Appending n zero bytes to a stream multiplies the raw register by x^(8n)
// modulo the polynomial, which is what the fold constants below encode.

// polyMulMod multiplies a and b modulo the reflected polynomial. It is a
// bit-serial carry-less multiplication with the reduction fused into the
// operand walk. 0x80000000 is the multiplicative identity.
func polyMulMod(a, b, poly uint32) uint32 {
	var r uint32
	for m := uint32(1) << 31; m != 0; m >>= 1 {
		if a&m != 0 {
			r ^= b
		}
		if b&1 != 0 {
			b = b>>1 ^ poly
		} else {
			b >>= 1
		}
	}
	return r
}

// polyMulMod64 multiplies a 64-bit operand (a little-endian stream word) by
// a 32-bit constant modulo the reflected polynomial. Bit 63 of a holds x^0.
func polyMulMod64(a uint64, b, poly uint32) uint32 {
	var r uint32
	for m := uint64(1) << 63; m != 0; m >>= 1 {
		if a&m != 0 {
			r ^= b
		}
		if b&1 != 0 {
			b = b>>1 ^ poly
		} else {
			b >>= 1
		}
	}
	return r
}

// xpow8nMod returns x^(8n) modulo the reflected polynomial, by squaring.
// This is how all fold and merge constants are derived; none are hard-coded.
func xpow8nMod(n uint64, poly uint32) uint32 {
	sq := uint32(1) << 23 // x^8
	r := uint32(1) << 31  // 1
	for ; n != 0; n >>= 1 {
		if n&1 != 0 {
			r = polyMulMod(r, sq, poly)
		}
		sq = polyMulMod(sq, sq, poly)
	}
	return r
}

// laneTable expands multiplication by one fixed constant into eight per-byte
// lookup tables, so a full 64-bit lane folds in eight loads and xors.
type laneTable [8][256]uint32

func buildLaneTable(t *laneTable, k, poly uint32) {
	for i := 0; i < 8; i++ {
		for v := 1; v < 256; v++ {
			t[i][v] = polyMulMod64(uint64(v)<<(8*i), k, poly)
		}
	}
}

// fold multiplies the stream word w by the table's constant modulo the
// polynomial.
func (t *laneTable) fold(w uint64) uint32 {
	return t[0][byte(w)] ^
		t[1][byte(w>>8)] ^
		t[2][byte(w>>16)] ^
		t[3][byte(w>>24)] ^
		t[4][byte(w>>32)] ^
		t[5][byte(w>>40)] ^
		t[6][byte(w>>48)] ^
		t[7][byte(w>>56)]
}

// maxLanes is the widest supported block, in 8-byte lanes.
const maxLanes = 8

// largeChunkThreshold is the minimum input length for which the wide folding
// tier is worth its per-run merge cost.
const largeChunkThreshold = 256

// engine is one variant's checksum kernel. All fields are immutable after
// construction, so a single instance serves any number of goroutines.
type engine struct {
	name   string
	poly   uint32 // reflected
	xorout uint32
	check  uint32

	byteTab *byteTable // scalar tail tier
	wordTab laneTable  // 8-byte tier: multiply by x^32

	// Wide tier; lanes is 0 when the tier is disabled.
	lanes   int
	block   int // lanes * 8 bytes
	foldTab laneTable
	merge   [maxLanes]uint32
	target  string
}

// newEngine derives all tables and fold constants for cfg at the given tier.
func newEngine(cfg config, tier hostcaps.Tier) *engine {
	e := &engine{
		name:    cfg.name,
		poly:    cfg.poly,
		xorout:  cfg.xorout,
		check:   cfg.check,
		byteTab: simpleMakeTable(cfg.poly),
		target:  hostcaps.TargetFor(tier),
	}
	// x^32 mod P is the reflected polynomial itself.
	buildLaneTable(&e.wordTab, cfg.poly, cfg.poly)
	switch tier {
	case hostcaps.TierFold8:
		e.lanes = 8
	case hostcaps.TierFold4:
		e.lanes = 4
	default:
		return e
	}
	e.block = e.lanes * 8
	buildLaneTable(&e.foldTab, xpow8nMod(uint64(e.block), cfg.poly), cfg.poly)
	for j := 0; j < e.lanes; j++ {
		// x^(32 + 64*(lanes-1-j)): lifts lane j over the lanes after it.
		e.merge[j] = xpow8nMod(uint64(4+8*(e.lanes-1-j)), cfg.poly)
	}
	return e
}

// update continues the checksum in crc over p. A zero-length p returns crc
// unchanged for any seed.
func (e *engine) update(crc uint32, p []byte) uint32 {
	if len(p) == 0 {
		return crc
	}
	r := crc ^ e.xorout
	if e.lanes > 0 && len(p) >= largeChunkThreshold {
		r, p = e.foldBlocks(r, p)
	}
	for len(p) >= 8 {
		r = e.wordTab.fold(uint64(r) ^ binary.LittleEndian.Uint64(p))
		p = p[8:]
	}
	return simpleUpdate(r, e.byteTab, p) ^ e.xorout
}

// foldBlocks runs the wide tier over every full block of p and returns the
// raw register together with the unconsumed remainder.
func (e *engine) foldBlocks(r uint32, p []byte) (uint32, []byte) {
	var lanes [maxLanes]uint64
	for j := 0; j < e.lanes; j++ {
		lanes[j] = binary.LittleEndian.Uint64(p[j*8:])
	}
	lanes[0] ^= uint64(r)
	p = p[e.block:]
	for len(p) >= e.block {
		for j := 0; j < e.lanes; j++ {
			lanes[j] = uint64(e.foldTab.fold(lanes[j]))<<32 ^ binary.LittleEndian.Uint64(p[j*8:])
		}
		p = p[e.block:]
	}
	r = 0
	for j := 0; j < e.lanes; j++ {
		r ^= polyMulMod64(lanes[j], e.merge[j], e.poly)
	}
	return r, p
}
