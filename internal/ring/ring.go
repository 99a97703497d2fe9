// Package ring implements a fixed-capacity byte window: a ring buffer that
// remembers only the most recently pushed N bytes, exposing two monotonic
// counters (begin/end) whose difference is the current size.
//
// Only the difference of the counters is ever meaningful; neither is a
// usable absolute stream position, and both are free to wrap on overflow.
package ring

import "github.com/arloliu/bfsdl/errs"

// Window is a fixed-capacity ring of recent bytes.
type Window struct {
	buf   []byte
	head  int
	begin uint64
	end   uint64
}

// New allocates a Window with the given capacity. Capacity must be positive.
func New(capacity int) (*Window, error) {
	if capacity <= 0 {
		return nil, errs.ErrInvalidCapacity
	}

	w := &Window{buf: make([]byte, capacity)}
	w.Reset()

	return w, nil
}

// Reset empties the window without releasing its backing buffer.
func (w *Window) Reset() {
	w.begin = 0
	w.end = 0
	w.head = 0
}

// Capacity returns the window's fixed capacity.
func (w *Window) Capacity() int {
	return len(w.buf)
}

// Size returns the number of bytes currently held, end-begin.
func (w *Window) Size() int {
	return int(w.end - w.begin)
}

// BeginCounter returns the monotonic begin counter. Meaningful only as a
// component of Size(); never a usable absolute position.
func (w *Window) BeginCounter() uint64 {
	return w.begin
}

// EndCounter returns the monotonic end counter.
func (w *Window) EndCounter() uint64 {
	return w.end
}

// Get returns the byte at logical index i in [0, Size()), or 0 if i is out
// of range.
func (w *Window) Get(i int) byte {
	if i < 0 || i >= w.Size() {
		return 0
	}

	return w.buf[w.increment(w.head, i)]
}

// RawBuffer returns the window's backing storage, read-only. Indices into
// it are not the same as logical indices passed to Get.
func (w *Window) RawBuffer() []byte {
	return w.buf
}

// Push appends data to the window, discarding the oldest bytes once
// capacity is exceeded.
func (w *Window) Push(data []byte) {
	if len(data) == 0 {
		return
	}

	cap := len(w.buf)
	bytesLeft := len(data)
	inIdx := 0

	if bytesLeft > cap {
		// Too much data for the buffer: skip straight to the tail and
		// cycle out the entire existing window.
		inIdx = bytesLeft - cap
		w.end += uint64(inIdx)
		w.begin = w.end
		w.head = 0
		bytesLeft = cap
	}

	tail := w.increment(w.head, w.Size())

	if bytesLeft > 0 {
		// Fill remaining free space in the tail without moving head.
		toCopy := bytesLeft
		if free := cap - w.Size(); toCopy > free {
			toCopy = free
		}
		w.copyCirc(tail, data[inIdx:inIdx+toCopy])
		tail = w.increment(tail, toCopy)
		w.end += uint64(toCopy)
		inIdx += toCopy
		bytesLeft -= toCopy
	}

	if bytesLeft > 0 {
		// Window is full: slide both head and begin for the surplus.
		w.copyCirc(tail, data[inIdx:inIdx+bytesLeft])
		w.begin += uint64(bytesLeft)
		w.end += uint64(bytesLeft)
		w.head = w.increment(w.head, bytesLeft)
	}
}

func (w *Window) copyCirc(at int, data []byte) {
	cap := len(w.buf)
	if at >= cap || len(data) == 0 {
		return
	}

	n := copy(w.buf[at:], data)
	if n < len(data) {
		copy(w.buf[0:], data[n:])
	}
}

func (w *Window) increment(idx, count int) int {
	cap := len(w.buf)
	if count == 0 || cap == 0 {
		return idx
	}

	idx += count
	for idx >= cap {
		idx -= cap
	}

	return idx
}
