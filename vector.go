package vector

import (
	"fmt"
	"iter"
	"math"

	"go.uber.org/zap"
)

// Vector is a growable contiguous sequence of T. Slots [0, Len()) of its
// storage hold live objects and slots [Len(), Cap()) are raw.
//
// The zero value is an empty vector ready to use. A Vector must not be
// copied; use Clone, Move or Swap. Not goroutine-safe.
type Vector[T any] struct {
	data   RawStorage[T]
	size   int
	ops    *ops[T]
	logger *zap.Logger
	stats  counters
}

// New returns an empty vector whose element capabilities are derived
// from the interfaces *T implements.
func New[T any](opts ...Option) (*Vector[T], error) {
	return newVector(TraitsOf[T](), opts)
}

// NewWithTraits returns an empty vector using an explicit capability set.
func NewWithTraits[T any](traits Traits[T], opts ...Option) (*Vector[T], error) {
	return newVector(traits, opts)
}

// NewSized returns a vector holding n default-constructed elements.
// Capacity is exactly n unless WithCapacity asks for more.
func NewSized[T any](n int, opts ...Option) (*Vector[T], error) {
	v, err := newVector(TraitsOf[T](), opts)
	if err != nil {
		return nil, err
	}
	if err := v.Resize(n); err != nil {
		return nil, err
	}
	return v, nil
}

func newVector[T any](traits Traits[T], opts []Option) (*Vector[T], error) {
	c := buildConfig(opts)
	v := &Vector[T]{ops: traits.resolve(), logger: c.logger}
	if err := v.Reserve(c.capacity); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vector[T]) elemOps() *ops[T] {
	if v.ops == nil {
		v.ops = TraitsOf[T]().resolve()
	}
	return v.ops
}

func (v *Vector[T]) log() *zap.Logger {
	if v.logger != nil {
		return v.logger
	}
	return Logger()
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots in the backing block.
func (v *Vector[T]) Cap() int {
	return v.data.Capacity()
}

// Empty reports whether the vector has no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// At returns a pointer to element i. i must be in [0, Len()).
// The pointer is invalidated by any operation that reallocates.
func (v *Vector[T]) At(i int) *T {
	return &v.data.Slots(0, v.size)[i]
}

// Get returns element i by value.
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// Set copy-assigns value onto element i.
func (v *Vector[T]) Set(i int, value T) error {
	o := v.elemOps()
	if o.assign == nil {
		return notCopyable("set")
	}
	if err := o.assign(v.At(i), &value); err != nil {
		return v.fail("set", constructError("set", i, err))
	}
	return nil
}

// Front returns a pointer to the first element. The vector must not be empty.
func (v *Vector[T]) Front() *T {
	return v.At(0)
}

// Back returns a pointer to the last element. The vector must not be empty.
func (v *Vector[T]) Back() *T {
	return v.At(v.size - 1)
}

// Slice returns the live elements as a slice sharing the vector's
// storage. It is invalidated by any operation that reallocates, and
// appending to it never writes into the vector.
func (v *Vector[T]) Slice() []T {
	return v.data.Slots(0, v.size)
}

// All returns an iterator over index-value pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.data.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.At(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, *v.data.At(i)) {
				return
			}
		}
	}
}

// PushBack appends a copy of value and returns a pointer to it.
func (v *Vector[T]) PushBack(value T) (*T, error) {
	o := v.elemOps()
	if o.copy == nil {
		return nil, notCopyable("push back")
	}
	return v.emplaceBack("push back", func(dst *T) error {
		return o.copy(dst, &value)
	})
}

// PushBackMove appends by moving *src, which is left moved-from.
func (v *Vector[T]) PushBackMove(src *T) (*T, error) {
	o := v.elemOps()
	return v.emplaceBack("push back", func(dst *T) error {
		return o.move(dst, src)
	})
}

// EmplaceBack constructs a new last element in place with ctor, which
// receives a zero-valued slot. A nil ctor default-constructs.
//
// If the vector is full, the new element is built in the new block before
// the existing elements are relocated, so ctor may read from the vector.
// A failure leaves the vector unchanged, except for an element of a type
// with a fallible move that can be neither copied nor moved back.
func (v *Vector[T]) EmplaceBack(ctor func(dst *T) error) (*T, error) {
	return v.emplaceBack("emplace back", ctor)
}

func (v *Vector[T]) emplaceBack(op string, ctor func(dst *T) error) (*T, error) {
	o := v.elemOps()
	if ctor == nil {
		ctor = func(dst *T) error {
			o.init(dst)
			return nil
		}
	}
	if v.size == v.data.Capacity() {
		if err := v.rebuild(op, v.grownCap(), v.size, 1, single(o, ctor)); err != nil {
			return nil, err
		}
	} else {
		slot := v.data.At(v.size)
		if err := ctor(slot); err != nil {
			o.discard(slot)
			return nil, v.fail(op, constructError(op, v.size, err))
		}
		v.size++
	}
	return v.data.At(v.size - 1), nil
}

// PopBack destroys the last element. It does nothing on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.elemOps().destroy(v.data.At(v.size - 1))
	v.size--
}

// Reserve grows the backing block to hold at least n elements. It does
// nothing if Cap() >= n. On failure the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.data.Capacity() {
		return nil
	}
	return v.rebuild("reserve", n, v.size, 0, nil)
}

// Resize sets the number of elements to n, default-constructing new
// elements or destroying excess ones. Growing reserves exactly n slots.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("vector: negative size %d", n))
	}
	o := v.elemOps()
	if n > v.size {
		if err := v.Reserve(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			o.init(v.data.At(i))
		}
	} else {
		o.destroyAll(v.data.Slots(n, v.size))
	}
	v.size = n
	return nil
}

// Clear destroys every element and keeps the backing block.
func (v *Vector[T]) Clear() {
	v.elemOps().destroyAll(v.data.Slots(0, v.size))
	v.size = 0
}

// Release destroys every element and releases the backing block. The
// vector stays usable and empty.
func (v *Vector[T]) Release() {
	v.Clear()
	v.data.Release()
}

// Swap exchanges the contents of v and other in constant time.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.elemOps()
	other.elemOps()
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.ops, other.ops = other.ops, v.ops
}

// Move transfers the contents of v into a new vector. v is left with no
// elements and no backing block.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{size: v.size, ops: v.elemOps(), logger: v.logger}
	m.data.TakeFrom(&v.data)
	v.size = 0
	return m
}

// MoveAssign replaces the contents of v with those of src. The elements v
// held before are destroyed. src is left empty and keeps v's old backing
// block for reuse.
func (v *Vector[T]) MoveAssign(src *Vector[T]) {
	if src == v {
		return
	}
	v.Swap(src)
	src.Clear()
}

func (v *Vector[T]) grownCap() int {
	c := v.data.Capacity()
	switch {
	case c == 0:
		return 1
	case c > math.MaxInt/2:
		return math.MaxInt
	}
	return c * 2
}

// fail records a failed operation and passes err through.
func (v *Vector[T]) fail(op string, err error) error {
	v.stats.failures++
	if ce := v.log().Check(zap.DebugLevel, "vector operation failed"); ce != nil {
		ce.Write(
			zap.String("op", op),
			zap.Int("size", v.size),
			zap.Int("capacity", v.data.Capacity()),
			zap.Error(err))
	}
	return err
}

// single adapts a one-slot constructor to rebuild's placement callback.
func single[T any](o *ops[T], ctor func(dst *T) error) func(dst []T) (int, error) {
	return func(dst []T) (int, error) {
		if err := ctor(&dst[0]); err != nil {
			o.discard(&dst[0])
			return 0, err
		}
		return 1, nil
	}
}
