package vector

import (
	"fmt"

	"go.uber.org/zap"
)

// rebuild moves the vector into a new block of newCap slots.
//
// Elements [0, cut) keep their index, ins new slots starting at cut are
// filled by place before anything is relocated, and the remaining
// elements land after the new ones.
//
// Relocation moves when moving cannot fail or no independent copy exists,
// and copies otherwise. On any failure the objects built in the new block
// are destroyed, moved elements are moved back, and the vector keeps its
// old block. Only an element whose move back also fails is lost; its slot
// is left with the zero value.
func (v *Vector[T]) rebuild(op string, newCap, cut, ins int, place func(dst []T) (int, error)) error {
	o := v.elemOps()
	newSize := v.size + ins

	nd, err := AllocateRaw[T](newCap)
	if err != nil {
		return v.fail(op, err)
	}

	if ins > 0 {
		if k, err := place(nd.Slots(cut, cut+ins)); err != nil {
			return v.fail(op, constructError(op, cut+k, err))
		}
	}

	byMove := o.relocateByMove()
	old := v.data.Slots(0, v.size)
	if k, err := o.relocate(nd.Slots(0, cut), old[:cut], byMove); err != nil {
		o.destroyAll(nd.Slots(cut, cut+ins))
		return v.fail(op, constructError(op, k, err))
	}
	if k, err := o.relocate(nd.Slots(cut+ins, newSize), old[cut:], byMove); err != nil {
		o.destroyAll(nd.Slots(cut, cut+ins))
		o.unrelocate(nd.Slots(0, cut), old[:cut], byMove)
		return v.fail(op, constructError(op, cut+ins+k, err))
	}

	o.destroyAll(old)
	v.stats.reallocations++
	v.stats.relocations += len(old)
	if ce := v.log().Check(zap.DebugLevel, "vector reallocated"); ce != nil {
		ce.Write(
			zap.String("op", op),
			zap.Int("from", v.data.Capacity()),
			zap.Int("to", newCap),
			zap.Int("size", newSize),
			zap.Bool("moved", byMove))
	}

	v.data.Swap(&nd)
	nd.Release()
	v.size = newSize
	return nil
}

// Insert copies value into position pos, shifting later elements up, and
// returns pos. pos must be in [0, Len()]; pos == Len() appends.
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	o := v.elemOps()
	if o.copy == nil {
		return pos, notCopyable("insert")
	}
	return v.emplace("insert", pos, func(dst *T) error {
		return o.copy(dst, &value)
	})
}

// InsertMove moves *src into position pos and returns pos.
func (v *Vector[T]) InsertMove(pos int, src *T) (int, error) {
	o := v.elemOps()
	return v.emplace("insert", pos, func(dst *T) error {
		return o.move(dst, src)
	})
}

// Emplace constructs a new element at position pos with ctor and returns
// pos. A nil ctor default-constructs.
//
// When the vector is full the element is built at its final index in a new
// block and the elements around it are relocated; a failure leaves the
// vector unchanged. Otherwise the element is built aside, the last element
// is moved into the first raw slot, the rest are shifted up by
// move-assignment and the new element is moved into pos. Copy-relocated
// types are shifted by copy-assignment. If a shift fails the vector keeps
// one more element than before, every one of them live, in unspecified
// order and with possible duplicates.
func (v *Vector[T]) Emplace(pos int, ctor func(dst *T) error) (int, error) {
	return v.emplace("emplace", pos, ctor)
}

func (v *Vector[T]) emplace(op string, pos int, ctor func(dst *T) error) (int, error) {
	if debugChecks && (pos < 0 || pos > v.size) {
		panic(fmt.Sprintf("vector: insert position %d out of range [0:%d]", pos, v.size))
	}
	o := v.elemOps()
	if ctor == nil {
		ctor = func(dst *T) error {
			o.init(dst)
			return nil
		}
	}

	switch {
	case v.size == v.data.Capacity():
		if err := v.rebuild(op, v.grownCap(), pos, 1, single(o, ctor)); err != nil {
			return pos, err
		}
		return pos, nil
	case pos == v.size:
		slot := v.data.At(pos)
		if err := ctor(slot); err != nil {
			o.discard(slot)
			return pos, v.fail(op, constructError(op, pos, err))
		}
		v.size++
		return pos, nil
	}

	var tmp T
	if err := ctor(&tmp); err != nil {
		o.discard(&tmp)
		return pos, v.fail(op, constructError(op, pos, err))
	}
	defer o.destroy(&tmp)

	buf := v.data.Slots(0, v.size+1)
	last := v.size
	if o.moveNoFail {
		o.shift(&buf[last], &buf[last-1])
	} else if err := o.move(&buf[last], &buf[last-1]); err != nil {
		o.discard(&buf[last])
		return pos, v.fail(op, constructError(op, last, err))
	}
	v.size++

	for i := last - 1; i > pos; i-- {
		if err := o.moveAssign(&buf[i], &buf[i-1]); err != nil {
			return pos, v.fail(op, constructError(op, i, err))
		}
	}
	if err := o.moveAssign(&buf[pos], &tmp); err != nil {
		return pos, v.fail(op, constructError(op, pos, err))
	}
	return pos, nil
}

// Erase removes the element at pos, shifting later elements down, and
// returns pos, now the index of the element that followed the removed one.
// pos must be in [0, Len()).
//
// The error is only ever non-nil for element types whose move or copy
// assignment can fail. The vector then keeps its length with every element
// live, but their order is unspecified and some may be duplicated.
func (v *Vector[T]) Erase(pos int) (int, error) {
	if debugChecks && (pos < 0 || pos >= v.size) {
		panic(fmt.Sprintf("vector: erase position %d out of range [0:%d)", pos, v.size))
	}
	o := v.elemOps()
	buf := v.data.Slots(0, v.size)
	_ = buf[pos] // bounds check

	for i := pos; i+1 < len(buf); i++ {
		if err := o.moveAssign(&buf[i], &buf[i+1]); err != nil {
			return pos, v.fail("erase", constructError("erase", i, err))
		}
	}
	v.PopBack()
	return pos, nil
}
