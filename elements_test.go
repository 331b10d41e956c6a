package vector

import (
	"errors"
	"slices"
	"testing"
)

var errInjected = errors.New("injected failure")

// ledger counts lifetime events of the elements that point to it.
type ledger struct {
	live   int
	copies int
	moves  int
	// budget is the number of copies allowed before CopyFrom fails;
	// negative means unlimited.
	budget int
}

func newLedger() *ledger {
	return &ledger{budget: -1}
}

// failAfter lets n more copies succeed.
func (l *ledger) failAfter(n int) {
	l.budget = l.copies + n
}

func (l *ledger) copyAllowed() bool {
	return l.budget < 0 || l.copies < l.budget
}

// tracked has a fallible copy and no move, so relocation copies it.
type tracked struct {
	id int
	l  *ledger
}

func (t *tracked) CopyFrom(src *tracked) error {
	if !src.l.copyAllowed() {
		return errInjected
	}
	src.l.copies++
	src.l.live++
	*t = *src
	return nil
}

func (t *tracked) Destroy() {
	if t.l != nil {
		t.l.live--
	}
}

// handle has a fallible copy and a move that cannot fail.
type handle struct {
	id int
	l  *ledger
}

func (h *handle) CopyFrom(src *handle) error {
	if !src.l.copyAllowed() {
		return errInjected
	}
	src.l.copies++
	src.l.live++
	*h = *src
	return nil
}

func (h *handle) MoveFrom(src *handle) {
	if src.l != nil {
		src.l.moves++
	}
	*h = *src
	*src = handle{}
}

func (h *handle) Destroy() {
	if h.l != nil {
		h.l.live--
	}
}

// unique can only be moved.
type unique struct {
	id int
	l  *ledger
}

func (*unique) NoCopy() {}

func (u *unique) MoveFrom(src *unique) {
	if src.l != nil {
		src.l.moves++
	}
	*u = *src
	*src = unique{}
}

func (u *unique) Destroy() {
	if u.l != nil {
		u.l.live--
	}
}

// mover has a move that fails for negative ids, a destructor and no copy
// hook, so it must never be relocated by plain assignment.
type mover struct {
	id int
	l  *ledger
}

func (m *mover) TryMoveFrom(src *mover) error {
	if src.id < 0 {
		return errInjected
	}
	if src.l != nil {
		src.l.moves++
	}
	*m = *src
	*src = mover{}
	return nil
}

func (m *mover) Destroy() {
	if m.l != nil {
		m.l.live--
	}
}

// pinned is a mover that also refuses copies.
type pinned struct {
	id int
	l  *ledger
}

func (*pinned) NoCopy() {}

func (p *pinned) TryMoveFrom(src *pinned) error {
	if src.id < 0 {
		return errInjected
	}
	*p = *src
	*src = pinned{}
	return nil
}

func (p *pinned) Destroy() {
	if p.l != nil {
		p.l.live--
	}
}

// sturdy has a fallible move and a fallible copy, both failing for
// negative ids. It is relocated by copy.
type sturdy struct {
	id int
	l  *ledger
}

func (s *sturdy) CopyFrom(src *sturdy) error {
	if src.id < 0 {
		return errInjected
	}
	src.l.copies++
	src.l.live++
	*s = *src
	return nil
}

func (s *sturdy) TryMoveFrom(src *sturdy) error {
	if src.id < 0 {
		return errInjected
	}
	*s = *src
	*src = sturdy{}
	return nil
}

func (s *sturdy) Destroy() {
	if s.l != nil {
		s.l.live--
	}
}

// seven default-constructs to 7.
type seven struct{ n int }

func (s *seven) Init() { s.n = 7 }

func trackedIDs(v *Vector[tracked]) []int {
	ids := make([]int, 0, v.Len())
	for x := range v.Values() {
		ids = append(ids, x.id)
	}
	return ids
}

func handleIDs(v *Vector[handle]) []int {
	ids := make([]int, 0, v.Len())
	for x := range v.Values() {
		ids = append(ids, x.id)
	}
	return ids
}

func fillTracked(t *testing.T, l *ledger, ids ...int) *Vector[tracked] {
	t.Helper()
	v, err := New[tracked]()
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range ids {
		if _, err := v.PushBack(tracked{id: id, l: l}); err != nil {
			t.Fatalf("PushBack(%d) error = %v", id, err)
		}
	}
	return v
}

func fillInts(t *testing.T, values ...int) *Vector[int] {
	t.Helper()
	v := &Vector[int]{}
	for _, x := range values {
		if _, err := v.PushBack(x); err != nil {
			t.Fatalf("PushBack(%d) error = %v", x, err)
		}
	}
	return v
}

func assertInts(t *testing.T, v *Vector[int], want ...int) {
	t.Helper()
	if !slices.Equal(v.Slice(), want) {
		t.Errorf("sequence = %v, want %v", v.Slice(), want)
	}
	if v.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", v.Len(), len(want))
	}
	if v.Len() > v.Cap() {
		t.Errorf("Len() = %d exceeds Cap() = %d", v.Len(), v.Cap())
	}
}

// snapshot captures what a failed operation must leave untouched.
type snapshot struct {
	size, capacity int
	ids            []int
}

func snap(v *Vector[tracked]) snapshot {
	return snapshot{size: v.Len(), capacity: v.Cap(), ids: trackedIDs(v)}
}

func assertUnchanged(t *testing.T, v *Vector[tracked], before snapshot) {
	t.Helper()
	after := snap(v)
	if after.size != before.size || after.capacity != before.capacity || !slices.Equal(after.ids, before.ids) {
		t.Errorf("state changed by failed operation: got size=%d cap=%d ids=%v, want size=%d cap=%d ids=%v",
			after.size, after.capacity, after.ids, before.size, before.capacity, before.ids)
	}
}
