package vector

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"runtime"
	"unsafe"
)

// noCopy may be added to structs which must not be copied after first use.
// go vet's copylocks check reports copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// RawStorage owns one block of element slots. It never constructs or
// destroys elements: which slots hold live objects is entirely the
// owner's business. A slot that holds no live object contains the zero
// value of T.
//
// RawStorage must not be copied. Ownership moves with Swap and TakeFrom.
type RawStorage[T any] struct {
	_   noCopy
	buf []T // len(buf) == cap(buf); nil when empty
}

// AllocateRaw reserves exactly capacity slots of T in a single allocation.
// A zero capacity yields an empty handle without allocating. The returned
// error matches ErrOutOfMemory when the block cannot be obtained.
func AllocateRaw[T any](capacity int) (s RawStorage[T], err error) {
	if capacity == 0 {
		return RawStorage[T]{}, nil
	}
	if capacity < 0 {
		return RawStorage[T]{}, allocError(capacity, errors.New("negative capacity"))
	}

	var zero T
	elemSize := uint(unsafe.Sizeof(zero))
	hi, lo := bits.Mul(elemSize, uint(capacity))
	if hi != 0 || lo > math.MaxInt {
		return RawStorage[T]{}, allocError(capacity, fmt.Errorf("%d bytes per slot overflows", elemSize))
	}

	// make reports requests beyond the runtime's address space limit by
	// panicking with a runtime.Error.
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			s = RawStorage[T]{}
			err = allocError(capacity, re)
		}
	}()
	return RawStorage[T]{buf: make([]T, capacity)}, nil
}

// Capacity returns the number of slots in the block.
func (s *RawStorage[T]) Capacity() int {
	return len(s.buf)
}

// Bytes returns the size of the block in bytes.
func (s *RawStorage[T]) Bytes() int {
	var zero T
	return len(s.buf) * int(unsafe.Sizeof(zero))
}

// At returns a pointer to slot i. i must be less than Capacity.
func (s *RawStorage[T]) At(i int) *T {
	if debugChecks && (i < 0 || i >= len(s.buf)) {
		panic(fmt.Sprintf("vector: slot %d out of range [0:%d)", i, len(s.buf)))
	}
	return &s.buf[i]
}

// Slots returns slots [from, to) of the block. The result cannot be
// appended past to.
func (s *RawStorage[T]) Slots(from, to int) []T {
	return s.buf[from:to:to]
}

// Swap exchanges the blocks owned by s and other.
func (s *RawStorage[T]) Swap(other *RawStorage[T]) {
	s.buf, other.buf = other.buf, s.buf
}

// TakeFrom moves the block owned by other into s, leaving other empty.
// The block s held before is released.
func (s *RawStorage[T]) TakeFrom(other *RawStorage[T]) {
	if s == other {
		return
	}
	s.buf = other.buf
	other.buf = nil
}

// Release drops the block. Live objects in it, if any, are not destroyed.
func (s *RawStorage[T]) Release() {
	s.buf = nil
}
