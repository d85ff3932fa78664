package sage

import (
	"encoding/binary"
	"errors"
	"io"
)

// ErrSeekBeforeStart is returned when a seek would move the cursor before the
// first byte of the buffer.
var ErrSeekBeforeStart = errors.New("sage: seek before start of buffer")

// Cursor is a seekable read view over an in-memory replay. It never reads
// past the end of its buffer; every read that would do so fails with io.EOF
// (nothing left) or io.ErrUnexpectedEOF (fewer bytes left than requested)
// and leaves the position unchanged.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Len returns the size of the underlying buffer.
func (c *Cursor) Len() int { return len(c.data) }

// Position returns the current absolute offset.
func (c *Cursor) Position() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	if c.pos >= len(c.data) {
		return 0
	}
	return len(c.data) - c.pos
}

// Next returns exactly n bytes and advances past them. The returned slice
// aliases the buffer.
func (c *Cursor) Next(n int) ([]byte, error) {
	if n < 0 {
		return nil, io.ErrUnexpectedEOF
	}
	if n == 0 {
		return []byte{}, nil
	}
	rem := c.Remaining()
	if rem == 0 {
		return nil, io.EOF
	}
	if rem < n {
		return nil, io.ErrUnexpectedEOF
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Read implements io.Reader.
func (c *Cursor) Read(p []byte) (int, error) {
	if c.Remaining() == 0 {
		return 0, io.EOF
	}
	n := copy(p, c.data[c.pos:])
	c.pos += n
	return n, nil
}

// ReadByte implements io.ByteReader.
func (c *Cursor) ReadByte() (byte, error) {
	if c.Remaining() == 0 {
		return 0, io.EOF
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// Uint32 reads a little-endian 32-bit unsigned integer.
func (c *Cursor) Uint32() (uint32, error) {
	b, err := c.Next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Seek implements io.Seeker. Seeking past the end is allowed; reads from
// there fail with io.EOF.
func (c *Cursor) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = int64(c.pos)
	case io.SeekEnd:
		base = int64(len(c.data))
	default:
		return int64(c.pos), errors.New("sage: invalid whence")
	}
	abs := base + offset
	if abs < 0 {
		return int64(c.pos), ErrSeekBeforeStart
	}
	c.pos = int(abs)
	return abs, nil
}

// Bytes returns the whole underlying buffer.
func (c *Cursor) Bytes() []byte { return c.data }
