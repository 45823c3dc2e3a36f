package TreeSet

import (
	"cmp"
	"iter"

	"github.com/g-m-twostay/go-avl/Sets"
	"github.com/g-m-twostay/go-avl/Trees"
)

// TreeSet is an ordered set backed by an AVL tree. Elements are visited in
// ascending order. The zero value is not usable.
type TreeSet[E any] struct {
	t   *Trees.AVL[E, uint]
	cmp func(E, E) int
}

// New TreeSet ordered by cmp.Compare.
func New[E cmp.Ordered]() *TreeSet[E] {
	return NewFunc[E](cmp.Compare[E])
}

// NewFunc TreeSet ordered by the three-way comparison c.
func NewFunc[E any](c func(E, E) int) *TreeSet[E] {
	return &TreeSet[E]{Trees.NewFunc[E, uint](0, c), c}
}

// NewLess TreeSet ordered by the strict weak ordering less.
func NewLess[E any](less func(E, E) bool) *TreeSet[E] {
	return NewFunc[E](func(a, b E) int {
		if less(a, b) {
			return -1
		} else if less(b, a) {
			return 1
		}
		return 0
	})
}

// Of returns a TreeSet holding es.
func Of[E cmp.Ordered](es ...E) *TreeSet[E] {
	s := New[E]()
	for _, e := range es {
		s.Put(e)
	}
	return s
}

// Put [Sets.Set.Put]. Panics with Trees.ErrFull if the tree can't grow, which
// can't happen before memory is exhausted.
func (u *TreeSet[E]) Put(e E) bool {
	added, err := u.t.Insert(e)
	if err != nil {
		panic(err)
	}
	return added
}

func (u *TreeSet[E]) Has(e E) bool {
	return u.t.Has(e)
}

func (u *TreeSet[E]) Remove(e E) bool {
	return u.t.Remove(e)
}

func (u *TreeSet[E]) Size() uint {
	return u.t.Size()
}

// Take the smallest element out.
func (u *TreeSet[E]) Take() (E, bool) {
	e, ok := u.t.Minimum()
	if ok {
		u.t.Remove(e)
	}
	return e, ok
}

// Min element of the set.
func (u *TreeSet[E]) Min() (E, bool) {
	return u.t.Minimum()
}

// Max element of the set.
func (u *TreeSet[E]) Max() (E, bool) {
	return u.t.Maximum()
}

// Range in ascending order.
func (u *TreeSet[E]) Range(f func(E) bool) {
	u.t.All()(f)
}

// All elements in ascending order.
func (u *TreeSet[E]) All() iter.Seq[E] {
	return u.t.All()
}

// Slice of the elements in ascending order.
func (u *TreeSet[E]) Slice() []E {
	return u.t.Keys()
}

func (u *TreeSet[E]) PutAll(s Sets.Set[E]) (n uint) {
	if u.same(s) {
		return 0
	}
	for e := range s.All() {
		if u.Put(e) {
			n++
		}
	}
	return
}

func (u *TreeSet[E]) RemoveAll(s Sets.Set[E]) (n uint) {
	if u.same(s) {
		n = u.Size()
		u.t.Clear(true)
		return
	}
	for e := range s.All() {
		if u.Remove(e) {
			n++
		}
	}
	return
}

// Eq [Sets.ExtendedSet.Eq]. Equality of elements is decided by the ordering of u.
func (u *TreeSet[E]) Eq(s Sets.Set[E]) bool {
	if u.Size() != s.Size() {
		return false
	}
	for e := range s.All() {
		if !u.Has(e) {
			return false
		}
	}
	return true
}

func (u *TreeSet[E]) Union(s Sets.Set[E]) {
	u.PutAll(s)
}

func (u *TreeSet[E]) Intersect(s Sets.Set[E]) {
	var out []E
	for e := range u.All() {
		if !s.Has(e) {
			out = append(out, e)
		}
	}
	for _, e := range out {
		u.Remove(e)
	}
}

// Filter [Sets.ExtendedSet.Filter]. The result is a *TreeSet with the same ordering.
func (u *TreeSet[E]) Filter(pred func(E) bool) Sets.ExtendedSet[E] {
	r := NewFunc[E](u.cmp)
	for e := range u.All() {
		if pred(e) {
			r.Put(e)
		}
	}
	return r
}

// Clone the set. The copy shares nothing with u.
func (u *TreeSet[E]) Clone() *TreeSet[E] {
	return &TreeSet[E]{u.t.Clone(), u.cmp}
}

// Tree backing the set, for inspection. It must not be modified.
func (u *TreeSet[E]) Tree() *Trees.AVL[E, uint] {
	return u.t
}

func (u *TreeSet[E]) same(s Sets.Set[E]) bool {
	o, ok := s.(*TreeSet[E])
	return ok && o == u
}

var _ Sets.ExtendedSet[int] = (*TreeSet[int])(nil)
