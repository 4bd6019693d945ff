// Package sha256 implements the SHA-256 hash algorithm (FIPS 180-4) with
// fixed-size internal storage: the partial-block buffer, the chaining state
// and the message-schedule workspace all live inside the Digest value, so
// hashing allocates nothing and a single Digest can be reset and reused for
// any number of messages.
package sha256

import (
	"encoding/binary"
	"errors"
	"hash"
)

// Size is the size of a SHA-256 checksum in bytes.
const Size = 32

// BlockSize is the block size of SHA-256 in bytes.
const BlockSize = 64

const (
	chunk = BlockSize

	init0 = 0x6A09E667
	init1 = 0xBB67AE85
	init2 = 0x3C6EF372
	init3 = 0xA54FF53A
	init4 = 0x510E527F
	init5 = 0x9B05688C
	init6 = 0x1F83D9AB
	init7 = 0x5BE0CD19

	// maxLength is the largest message size, in bytes, whose bit length
	// still fits the 64-bit length field of the final padding block.
	maxLength = 1<<61 - 1
)

// ErrMessageTooLong is returned by Write when the total message length
// would exceed 2^61-1 bytes. Beyond that the padding length field cannot
// represent the bit count, so the write is rejected rather than wrapped.
var ErrMessageTooLong = errors.New("sha256: message length exceeds 2^61-1 bytes")

// Digest is the partial evaluation of a checksum. The zero value is not
// usable; obtain instances via New, or embed one and call Reset before use.
//
// A Digest is not safe for concurrent use. Independent instances share no
// mutable state and may be used from different goroutines freely.
type Digest struct {
	h   [8]uint32
	x   [chunk]byte
	nx  int
	len uint64
	w   [64]uint32 // message schedule, fully overwritten every block
}

// New returns a new Digest computing the SHA-256 checksum.
func New() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

// Reset returns the Digest to its initial state. The backing storage is
// reused, so a long-lived Digest hashes any number of messages without
// further allocation.
func (d *Digest) Reset() {
	d.h[0] = init0
	d.h[1] = init1
	d.h[2] = init2
	d.h[3] = init3
	d.h[4] = init4
	d.h[5] = init5
	d.h[6] = init6
	d.h[7] = init7
	d.nx = 0
	d.len = 0
}

// Size returns the number of bytes Sum will append.
func (d *Digest) Size() int { return Size }

// BlockSize returns the hash's underlying block size.
func (d *Digest) BlockSize() int { return BlockSize }

// Write absorbs p into the running hash state. Results are identical for
// any chunking of the same byte sequence. The only failure is
// ErrMessageTooLong, reported before any state is modified.
func (d *Digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	if uint64(nn) > maxLength-d.len {
		return 0, ErrMessageTooLong
	}
	d.len += uint64(nn)
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == chunk {
			block(d, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= chunk {
		// Full blocks are compressed straight from the input,
		// bypassing the buffer.
		n := len(p) &^ (chunk - 1)
		block(d, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return
}

// Sum appends the current hash to in and returns the resulting slice.
// Finalization runs on a copy, so the Digest keeps accepting writes.
func (d *Digest) Sum(in []byte) []byte {
	d0 := *d
	hash := d0.checkSum()
	return append(in, hash[:]...)
}

// Sum32 returns the current hash as a fixed 32-byte array without
// touching the heap. Like Sum, it finalizes a copy.
func (d *Digest) Sum32() [Size]byte {
	d0 := *d
	return d0.checkSum()
}

// checkSum pads and compresses the remaining buffered bytes, then
// serializes the chaining state big-endian. Padding is 0x80, zero fill and
// the 64-bit bit length; when fewer than 9 bytes of the block remain the
// length no longer fits and a second all-padding block is compressed.
func (d *Digest) checkSum() (sum [Size]byte) {
	n := d.nx

	var k [chunk]byte
	copy(k[:], d.x[:n])
	k[n] = 0x80

	if n >= 56 {
		block(d, k[:])
		for i := range k {
			k[i] = 0
		}
	}
	binary.BigEndian.PutUint64(k[56:], d.len<<3)
	block(d, k[:])

	for i, s := range d.h {
		binary.BigEndian.PutUint32(sum[i*4:], s)
	}
	return
}

// Sum256 returns the SHA-256 checksum of data.
func Sum256(data []byte) [Size]byte {
	var d Digest
	d.Reset()
	d.Write(data)
	return d.checkSum()
}

var _ hash.Hash = (*Digest)(nil)
