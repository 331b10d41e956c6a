// Package vector implements a growable, contiguous, generic sequence that
// owns its backing storage and manages element lifetime explicitly.
//
// # Overview
//
// Two types are layered:
//
//   - RawStorage owns one block of element slots and never constructs or
//     destroys anything in it.
//   - Vector tracks how many leading slots hold live elements and performs
//     every construct, copy, move and destroy at specific slots.
//
// # Basic Usage
//
//	v, err := vector.New[int]()
//	if err != nil {
//		return err
//	}
//	defer v.Release()
//
//	v.PushBack(1)
//	v.PushBack(2)
//	v.Insert(1, 9)    // [1 9 2]
//	v.Erase(0)        // [9 2]
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Growth
//
// Appending to a full vector doubles its capacity (or allocates one slot
// from empty), so a series of N appends relocates O(N) elements in total.
// Reserve and Resize grow to exactly the requested size.
//
// # Element Capabilities
//
// Go has no constructors, so element types declare what they can do by
// implementing optional interfaces on *T: Initializer, Copier, NonCopyable,
// Mover, FallibleMover, Assigner and Destroyer. A type implementing none of
// them is plain data. Types that cannot carry methods use NewWithTraits.
//
// When the vector relocates into a larger block it moves elements if their
// move cannot fail or no independent copy of them can be made, and copies
// them otherwise. Copying keeps the originals intact until every copy
// exists, so a failing copy leaves the vector exactly as it was. A failing
// move is undone by moving the already relocated elements back.
//
// # Failure Safety
//
// Append, reserve, extend, shrink and inserts that grow the vector either
// succeed or leave size, capacity and elements unchanged. The only
// exception is an element that can be neither copied nor moved back after
// a failed move; it is lost and its slot holds the zero value.
//
// Inserts into spare capacity and erases shift elements in place. For
// element types whose move can fail, a failing shift leaves every element
// live and destroyable but in unspecified order, as does Assign into an
// existing block. Index arguments are preconditions, not checked errors;
// build with -tags vectordebug for explicit panics.
//
// # Important Notes
//
//   - Pointers and slices obtained from a vector are invalidated by any
//     operation that reallocates
//   - Destroy hooks run only through the vector; call Release when done
//   - Not goroutine-safe; callers serialize access
//   - Reallocations are logged at Debug level through go.uber.org/zap (see
//     SetLogger and WithLogger)
//
// # Metrics
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
package vector
