package crc32fold

import "io"

// NewReader creates a Reader over the given variant and byte stream.
func NewReader(a Algorithm, r io.Reader) *Reader {
	rd := &Reader{eng: a.engine()}
	rd.Reset(r)
	return rd
}

// Reader is a passthrough io.Reader that keeps a running checksum of the
// bytes it has returned.
type Reader struct {
	r   io.Reader
	eng *engine
	crc uint32
}

// Reset clears the internal state and assigns a new underlying reader.
func (r *Reader) Reset(s io.Reader) {
	r.r = s
	r.crc = 0
}

func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		r.crc = r.eng.update(r.crc, p[:n])
	}
	return n, err
}

// Sum32 returns the checksum of the bytes read so far.
func (r *Reader) Sum32() uint32 { return r.crc }
