package dispatch

import "fmt"

// Payload is a read cursor over a request body. Reads hand out sub-slices
// of the underlying buffer without copying.
type Payload struct {
	buf []byte
	off int
}

// NewPayload returns a cursor positioned at the start of b. The payload
// borrows b; callers must not modify it while the payload is in use.
func NewPayload(b []byte) *Payload {
	return &Payload{buf: b}
}

// Len returns the number of unread bytes.
func (p *Payload) Len() int { return len(p.buf) - p.off }

// Offset returns the number of bytes consumed so far.
func (p *Payload) Offset() int { return p.off }

// Bytes returns the unread remainder without consuming it.
func (p *Payload) Bytes() []byte { return p.buf[p.off:] }

// Next consumes and returns the next n bytes. If fewer than n bytes remain
// the cursor does not move and the error wraps ErrInsufficientBytes.
func (p *Payload) Next(n int) ([]byte, error) {
	if n < 0 || n > p.Len() {
		return nil, fmt.Errorf("%w: need %d, have %d at offset %d", ErrInsufficientBytes, n, p.Len(), p.off)
	}
	b := p.buf[p.off : p.off+n : p.off+n]
	p.off += n
	return b, nil
}

// rewind moves the cursor back to a previously observed offset.
func (p *Payload) rewind(off int) { p.off = off }
