package crc32fold

import (
	"bytes"
	"io"
	"math/rand"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	rng := rand.New(rand.NewSource(40))
	p := make([]byte, 5000)
	_, err := rng.Read(p)
	require.NoError(t, err)

	for _, alg := range []Algorithm{ISCSI, ISOHDLC} {
		r := NewReader(alg, bytes.NewReader(p))
		got, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, p, got, "reader must pass data through unchanged")
		assert.Equal(t, Checksum(alg, p), r.Sum32(), "%v", alg)
	}
}

func TestReaderSmallReads(t *testing.T) {
	r := NewReader(ISOHDLC, iotest.OneByteReader(bytes.NewReader(check)))
	_, err := io.Copy(io.Discard, r)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xCBF43926), r.Sum32())
}

func TestReaderReset(t *testing.T) {
	r := NewReader(ISCSI, bytes.NewReader(check))
	_, err := io.Copy(io.Discard, r)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xE3069283), r.Sum32())

	r.Reset(bytes.NewReader(check))
	assert.Equal(t, uint32(0), r.Sum32())
	_, err = io.Copy(io.Discard, r)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xE3069283), r.Sum32())
}
