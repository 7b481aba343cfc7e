// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package crc32fold

// byteTable is the classic one-byte-at-a-time CRC table for a reflected
// polynomial. It is the scalar tail tier and the reference the wider tiers
// must agree with.
type byteTable [256]uint32

// simpleMakeTable allocates and constructs a table for the specified
// reflected polynomial, suitable for use with simpleUpdate.
func simpleMakeTable(poly uint32) *byteTable {
	t := new(byteTable)
	simplePopulateTable(poly, t)
	return t
}

// simplePopulateTable constructs a table for the specified reflected
// polynomial, suitable for use with simpleUpdate.
func simplePopulateTable(poly uint32, t *byteTable) {
	for i := 0; i < 256; i++ {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ poly
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
}

// simpleUpdate advances the raw (uninverted) CRC register over p one byte at
// a time.
func simpleUpdate(crc uint32, tab *byteTable, p []byte) uint32 {
	for _, v := range p {
		crc = tab[byte(crc)^v] ^ (crc >> 8)
	}
	return crc
}
