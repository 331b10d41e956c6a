package vector

// Element types declare their lifetime capabilities by implementing the
// optional interfaces below on *T. A type implementing none of them is
// handled as plain data: copies and moves are assignments that never fail.

// Initializer is implemented by types whose default construction is more
// than the zero value.
type Initializer interface {
	Init()
}

// Copier is implemented by types whose copy construction can fail.
// CopyFrom is called on a zero-valued slot.
type Copier[T any] interface {
	CopyFrom(src *T) error
}

// NonCopyable marks a type that cannot be copy-constructed at all.
// Such elements can only be moved.
type NonCopyable interface {
	NoCopy()
}

// Mover is implemented by types with a move construction that never fails.
// MoveFrom is called on a zero-valued slot and leaves src in a state that
// Destroy accepts.
type Mover[T any] interface {
	MoveFrom(src *T)
}

// FallibleMover is implemented by types whose move construction can fail.
// A failed TryMoveFrom must leave src as it was.
type FallibleMover[T any] interface {
	TryMoveFrom(src *T) error
}

// Assigner is implemented by types with a custom copy assignment onto a
// live object.
type Assigner[T any] interface {
	AssignFrom(src *T) error
}

// Destroyer is implemented by types that release resources when the
// container destroys them. Destroy must not fail and must accept the
// moved-from state, which is the zero value for types without a Mover.
type Destroyer interface {
	Destroy()
}

// Traits is the explicit form of an element capability set. Nil hooks
// take the plain-data default. Use it for types that cannot carry methods.
type Traits[T any] struct {
	// Init default-constructs into a zero-valued slot.
	Init func(dst *T)
	// Copy copy-constructs into a zero-valued slot.
	Copy func(dst, src *T) error
	// NotCopyable disables copying; Copy is ignored.
	NotCopyable bool
	// Move move-constructs into a zero-valued slot. When nil, moving falls
	// back to Copy if one is set, and to assignment otherwise.
	Move func(dst, src *T) error
	// MoveNoFail declares that Move never returns an error.
	MoveNoFail bool
	// Assign copy-assigns onto a live object.
	Assign func(dst, src *T) error
	// Destroy ends the lifetime of a live or moved-from object.
	Destroy func(p *T)
}

// TraitsOf derives the capability set of T from the interfaces *T implements.
func TraitsOf[T any]() Traits[T] {
	var t Traits[T]
	p := any((*T)(nil))

	if _, ok := p.(Initializer); ok {
		t.Init = func(dst *T) { any(dst).(Initializer).Init() }
	}
	if _, ok := p.(NonCopyable); ok {
		t.NotCopyable = true
	} else if _, ok := p.(Copier[T]); ok {
		t.Copy = func(dst, src *T) error { return any(dst).(Copier[T]).CopyFrom(src) }
	}
	if _, ok := p.(Mover[T]); ok {
		t.Move = func(dst, src *T) error {
			any(dst).(Mover[T]).MoveFrom(src)
			return nil
		}
		t.MoveNoFail = true
	} else if _, ok := p.(FallibleMover[T]); ok {
		t.Move = func(dst, src *T) error { return any(dst).(FallibleMover[T]).TryMoveFrom(src) }
	}
	if _, ok := p.(Assigner[T]); ok {
		t.Assign = func(dst, src *T) error { return any(dst).(Assigner[T]).AssignFrom(src) }
	}
	if _, ok := p.(Destroyer); ok {
		t.Destroy = func(p *T) { any(p).(Destroyer).Destroy() }
	}
	return t
}

// ops is a resolved capability set with every default filled in.
type ops[T any] struct {
	init    func(dst *T)
	copy    func(dst, src *T) error // nil when T is not copyable
	move    func(dst, src *T) error
	destroy func(p *T)
	assign  func(dst, src *T) error // nil when T is not copyable

	moveNoFail bool
	// copyReloc is set when copying leaves an independent object, so
	// relocation may copy and keep the originals. The bitwise default
	// copy of a type with a custom move does not qualify.
	copyReloc bool
}

func (t Traits[T]) resolve() *ops[T] {
	o := &ops[T]{}

	if d := t.Destroy; d != nil {
		o.destroy = func(p *T) {
			d(p)
			var zero T
			*p = zero
		}
	} else {
		o.destroy = func(p *T) {
			var zero T
			*p = zero
		}
	}

	if t.Init != nil {
		o.init = t.Init
	} else {
		o.init = func(*T) {}
	}

	switch {
	case t.NotCopyable:
	case t.Copy != nil:
		o.copy = t.Copy
	default:
		o.copy = func(dst, src *T) error {
			*dst = *src
			return nil
		}
	}

	switch {
	case t.Move != nil:
		o.move, o.moveNoFail = t.Move, t.MoveNoFail
	case o.copy != nil && t.Copy != nil:
		// no move declared: moving copies and may fail like the copy does
		o.move = o.copy
	default:
		o.move = func(dst, src *T) error {
			*dst = *src
			var zero T
			*src = zero
			return nil
		}
		o.moveNoFail = true
	}

	o.copyReloc = o.copy != nil && (t.Copy != nil || t.Move == nil)

	switch {
	case o.copy == nil:
	case t.Assign != nil:
		o.assign = t.Assign
	default:
		cp, destroy := o.copy, o.destroy
		o.assign = func(dst, src *T) error {
			var tmp T
			if err := cp(&tmp, src); err != nil {
				return err
			}
			destroy(dst)
			*dst = tmp
			return nil
		}
	}
	return o
}

// relocateByMove reports whether relocation moves elements. Moving is
// chosen when it cannot fail or when no independent copy can be made;
// otherwise elements are copied so the originals survive a failure.
func (o *ops[T]) relocateByMove() bool {
	return o.moveNoFail || !o.copyReloc
}

// shift move-constructs src into the zero-valued slot dst. Only used when
// moves cannot fail.
func (o *ops[T]) shift(dst, src *T) {
	if err := o.move(dst, src); err != nil {
		panic("vector: move declared non-failing returned " + err.Error())
	}
}

// shiftAssign move-assigns src onto the live object dst.
func (o *ops[T]) shiftAssign(dst, src *T) {
	o.destroy(dst)
	o.shift(dst, src)
}

// moveAssign transfers src onto the live object dst. Copy-relocated types
// are copy-assigned and src keeps its value. On failure dst holds either
// its old value or the zero value, and stays live.
func (o *ops[T]) moveAssign(dst, src *T) error {
	switch {
	case o.moveNoFail:
		o.shiftAssign(dst, src)
		return nil
	case o.copyReloc:
		return o.assign(dst, src)
	}
	o.destroy(dst)
	if err := o.move(dst, src); err != nil {
		o.discard(dst)
		return err
	}
	return nil
}

// discard clears a slot whose construction failed. The slot never became
// live, so it is not destroyed.
func (o *ops[T]) discard(p *T) {
	var zero T
	*p = zero
}

func (o *ops[T]) destroyAll(s []T) {
	for i := range s {
		o.destroy(&s[i])
	}
}

// relocate constructs the objects of src into the zero-valued slots dst,
// by move when byMove is set and by copy otherwise. On failure the
// relocated prefix is undone with unrelocate and the index of the failing
// slot is returned with the error.
func (o *ops[T]) relocate(dst, src []T, byMove bool) (int, error) {
	build := o.copy
	if byMove {
		build = o.move
	}
	for i := range src {
		if err := build(&dst[i], &src[i]); err != nil {
			o.discard(&dst[i])
			o.unrelocate(dst[:i], src[:i], byMove)
			return i, err
		}
	}
	return len(src), nil
}

// unrelocate reverses a relocation of src into dst. Moved objects are moved
// back into their old slots, copies are simply destroyed. If moving an
// object back fails, its old slot keeps the zero value and the object is
// destroyed with dst.
func (o *ops[T]) unrelocate(dst, src []T, byMove bool) {
	if byMove {
		for i := range dst {
			o.destroy(&src[i])
			if err := o.move(&src[i], &dst[i]); err != nil {
				o.discard(&src[i])
			}
		}
	}
	o.destroyAll(dst)
}
