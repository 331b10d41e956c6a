package vector

// Clone returns a deep copy of v made with the element copy capability.
// The copy's capacity equals v.Len(). On failure no copy survives.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{ops: v.elemOps(), logger: v.logger}
	if c.ops.copy == nil {
		return nil, notCopyable("clone")
	}
	if err := c.copyConstruct("clone", v); err != nil {
		return nil, v.fail("clone", err)
	}
	return c, nil
}

// copyConstruct fills the empty vector v with copies of src's elements.
// Failures are returned unrecorded; the caller reports them.
func (v *Vector[T]) copyConstruct(op string, src *Vector[T]) error {
	nd, err := AllocateRaw[T](src.size)
	if err != nil {
		return err
	}
	if k, err := v.ops.relocate(nd.Slots(0, src.size), src.data.Slots(0, src.size), false); err != nil {
		return constructError(op, k, err)
	}
	v.data.TakeFrom(&nd)
	v.size = src.size
	return nil
}

// Assign replaces the contents of v with copies of the elements of src.
//
// If src does not fit in v's block, a full copy is built first and swapped
// in, so a failure leaves v unchanged. Otherwise the block is reused: the
// common prefix is copy-assigned, then the excess is destroyed or the
// remainder copy-constructed. A failure on that path leaves v valid with
// the elements assigned so far.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if src == v {
		return nil
	}
	o := v.elemOps()
	if o.copy == nil {
		return notCopyable("assign")
	}

	if src.size > v.data.Capacity() {
		tmp := &Vector[T]{ops: o, logger: v.logger}
		if err := tmp.copyConstruct("assign", src); err != nil {
			return v.fail("assign", err)
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}

	n := min(v.size, src.size)
	dst, from := v.data.Slots(0, n), src.data.Slots(0, n)
	for i := range dst {
		if err := o.assign(&dst[i], &from[i]); err != nil {
			return v.fail("assign", constructError("assign", i, err))
		}
	}
	if src.size < v.size {
		o.destroyAll(v.data.Slots(src.size, v.size))
	} else {
		rest := src.data.Slots(v.size, src.size)
		if k, err := o.relocate(v.data.Slots(v.size, src.size), rest, false); err != nil {
			return v.fail("assign", constructError("assign", v.size+k, err))
		}
	}
	v.size = src.size
	return nil
}

// Extend appends copies of values. Either all of them are appended or the
// elements of v are unchanged. values may alias the vector's own elements.
func (v *Vector[T]) Extend(values ...T) error {
	o := v.elemOps()
	if o.copy == nil {
		return notCopyable("extend")
	}
	if len(values) == 0 {
		return nil
	}

	need := v.size + len(values)
	if need > v.data.Capacity() {
		newCap := max(need, v.grownCap())
		return v.rebuild("extend", newCap, v.size, len(values), func(dst []T) (int, error) {
			return o.relocate(dst, values, false)
		})
	}
	if k, err := o.relocate(v.data.Slots(v.size, need), values, false); err != nil {
		return v.fail("extend", constructError("extend", v.size+k, err))
	}
	v.size = need
	return nil
}

// ShrinkToFit relocates the elements into a block of exactly Len() slots.
// An empty vector releases its block.
func (v *Vector[T]) ShrinkToFit() error {
	switch {
	case v.size == v.data.Capacity():
		return nil
	case v.size == 0:
		v.data.Release()
		return nil
	}
	return v.rebuild("shrink", v.size, v.size, 0, nil)
}
