package crc32fold

import (
	"fmt"
	"hash"
	"io"
	"os"
)

// Digest is the streaming form of a checksum. It implements hash.Hash32 and
// therefore io.Writer, so a file can be checksummed with io.Copy.
type Digest struct {
	eng *engine
	crc uint32
}

var _ hash.Hash32 = (*Digest)(nil)

// New creates a Digest for the given variant.
func New(a Algorithm) *Digest {
	return &Digest{eng: a.engine()}
}

func (d *Digest) Size() int { return Size }

func (d *Digest) BlockSize() int { return 1 }

// Reset clears the running checksum.
func (d *Digest) Reset() { d.crc = 0 }

func (d *Digest) Write(p []byte) (n int, err error) {
	d.crc = d.eng.update(d.crc, p)
	return len(p), nil
}

// Sum32 returns the checksum of the bytes written so far.
func (d *Digest) Sum32() uint32 { return d.crc }

// Sum appends the checksum in big-endian byte order to in.
func (d *Digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

// ChecksumFile returns the checksum of the named file's contents.
func ChecksumFile(a Algorithm, path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("crc32fold: %w", err)
	}
	defer f.Close()
	d := New(a)
	if _, err := io.Copy(d, f); err != nil {
		return 0, fmt.Errorf("crc32fold: read %s: %w", path, err)
	}
	return d.Sum32(), nil
}
