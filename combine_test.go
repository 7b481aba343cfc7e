package crc32fold

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	splits := []struct {
		a, b int
	}{
		{0, 0},
		{0, 9},
		{9, 0},
		{4, 5},
		{1, 1023},
		{1023, 1},
		{300, 700},
		{4096, 4096},
	}
	for _, alg := range []Algorithm{ISCSI, ISOHDLC} {
		for _, sp := range splits {
			whole := make([]byte, sp.a+sp.b)
			_, err := rng.Read(whole)
			require.NoError(t, err)
			pa, pb := whole[:sp.a], whole[sp.a:]

			got := Combine(alg, Checksum(alg, pa), Checksum(alg, pb), int64(len(pb)))
			assert.Equal(t, Checksum(alg, whole), got, "%v a=%d b=%d", alg, sp.a, sp.b)
		}
	}
}

func TestCombineCheckValue(t *testing.T) {
	// The catalogue check string split in two, per variant.
	a, b := []byte("1234"), []byte("56789")
	assert.Equal(t, uint32(0xCBF43926),
		Combine(ISOHDLC, ChecksumISOHDLC(a), ChecksumISOHDLC(b), int64(len(b))))
	assert.Equal(t, uint32(0xE3069283),
		Combine(ISCSI, ChecksumISCSI(a), ChecksumISCSI(b), int64(len(b))))
}

func TestCombineNegativeLength(t *testing.T) {
	assert.Equal(t, uint32(0x12345678), Combine(ISCSI, 0x12345678, 0xFFFFFFFF, -1))
}
