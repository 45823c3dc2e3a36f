package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// AVL is a binary search tree with no repeated values. It keeps the heights of
// the two subtrees of every node within one of each other through rotations, so
// the height of a tree with n elements is less than 1.44*log2(n+2).
// T is the type of values it will hold, S is the type of node indexes; a tree
// holds at most max(S) elements. The additional memory cost per element is
// 2*size(S)+1 bytes, rounded up by alignment.
// Elements are ordered by Cmp, which returns a negative number if the first
// argument is before the second, 0 if they are equivalent, and a positive number
// if the first is after the second. Cmp must be a strict weak ordering.
// The zero value is not usable; create trees with New, NewFunc or NewLess.
type AVL[T any, S constraints.Unsigned] struct {
	base[T, S]
	cmp func(T, T) int
}

// New AVL ordered by cmp.Compare. hint is the number of elements to reserve space for.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *AVL[T, S] {
	return &AVL[T, S]{makeBase[T, S](hint), cmp.Compare[T]}
}

// NewFunc AVL ordered by the three-way comparison c. See cmp.Compare for an example.
func NewFunc[T any, S constraints.Unsigned](hint S, c func(T, T) int) *AVL[T, S] {
	return &AVL[T, S]{makeBase[T, S](hint), c}
}

// NewLess AVL ordered by less, a strict weak ordering. Two elements are equivalent
// when neither is less than the other.
func NewLess[T any, S constraints.Unsigned](hint S, less func(T, T) bool) *AVL[T, S] {
	return NewFunc[T, S](hint, func(a, b T) int {
		if less(a, b) {
			return -1
		} else if less(b, a) {
			return 1
		}
		return 0
	})
}

// insert v to the subtree rooting at i recursively and returns the new root of the
// subtree. added is false if v is already there or the allocation failed, in
// which case nothing on the path was changed.
func (u *AVL[T, S]) insert(i S, v T) (_ S, added bool, err error) {
	if i == 0 {
		if i, err = u.alloc(v); err != nil {
			return 0, false, err
		}
		return i, true, nil
	}
	if order := u.cmp(v, *u.key(i)); order < 0 {
		var l S
		if l, added, err = u.insert(u.ifs[i].l, v); !added {
			return i, false, err
		}
		u.ifs[i].l = l
	} else if order > 0 {
		var r S
		if r, added, err = u.insert(u.ifs[i].r, v); !added {
			return i, false, err
		}
		u.ifs[i].r = r
	} else {
		return i, false, nil
	}
	u.fix(i)
	return u.rebalanceInsert(i, v), true, nil
}

// rebalanceInsert node i after v was inserted below it. The case is chosen by
// comparing v with the key of the heavy child. Returns the new subtree root.
func (u *AVL[T, S]) rebalanceInsert(i S, v T) S {
	if b := u.balance(i); b > 1 {
		if l := u.ifs[i].l; u.cmp(v, *u.key(l)) < 0 { //left left
			return u.rotateRight(i)
		} else { //left right
			u.ifs[i].l = u.rotateLeft(l)
			return u.rotateRight(i)
		}
	} else if b < -1 {
		if r := u.ifs[i].r; u.cmp(v, *u.key(r)) > 0 { //right right
			return u.rotateLeft(i)
		} else { //right left
			u.ifs[i].r = u.rotateRight(r)
			return u.rotateLeft(i)
		}
	}
	return i
}

// Insert [Tree.Insert]. Recursive.
// The only error is ErrFull.
// Time: O(log n)
func (u *AVL[T, S]) Insert(v T) (bool, error) {
	r, added, err := u.insert(u.root, v)
	if err != nil {
		tracer().Infof("avl: cannot insert %v, %d of %d slots used", v, u.sz, ^S(0))
		return false, err
	}
	u.root = r
	return added, nil
}

// remove v from the subtree rooting at i recursively and returns the new root of the
// subtree.
func (u *AVL[T, S]) remove(i S, v T) (_ S, removed bool) {
	if i == 0 {
		return 0, false
	}
	if order := u.cmp(v, *u.key(i)); order < 0 {
		var l S
		if l, removed = u.remove(u.ifs[i].l, v); !removed {
			return i, false
		}
		u.ifs[i].l = l
	} else if order > 0 {
		var r S
		if r, removed = u.remove(u.ifs[i].r, v); !removed {
			return i, false
		}
		u.ifs[i].r = r
	} else if cur := u.ifs[i]; cur.l == 0 && cur.r == 0 {
		u.release(i)
		return 0, true
	} else if cur.l == 0 || cur.r == 0 {
		//i adopts its only child's key and children.
		c := cur.l
		if c == 0 {
			c = cur.r
		}
		*u.key(i) = *u.key(c)
		u.ifs[i].l, u.ifs[i].r = u.ifs[c].l, u.ifs[c].r
		u.release(c)
	} else {
		//i takes the key of its in-order successor, which is then removed from the right.
		*u.key(i) = *u.key(u.minimum(cur.r))
		u.ifs[i].r, _ = u.remove(cur.r, *u.key(i))
	}
	u.fix(i)
	return u.rebalanceRemove(i), true
}

// rebalanceRemove node i after a removal below it. The case is chosen by the balance
// of the heavy child. Returns the new subtree root.
func (u *AVL[T, S]) rebalanceRemove(i S) S {
	if b := u.balance(i); b > 1 {
		if l := u.ifs[i].l; u.balance(l) >= 0 {
			return u.rotateRight(i)
		} else {
			u.ifs[i].l = u.rotateLeft(l)
			return u.rotateRight(i)
		}
	} else if b < -1 {
		if r := u.ifs[i].r; u.balance(r) <= 0 {
			return u.rotateLeft(i)
		} else {
			u.ifs[i].r = u.rotateRight(r)
			return u.rotateLeft(i)
		}
	}
	return i
}

// Remove [Tree.Remove]. Recursive.
// Time: O(log n)
func (u *AVL[T, S]) Remove(v T) bool {
	r, removed := u.remove(u.root, v)
	u.root = r
	return removed
}

// find the index of the node equivalent to v, 0 if there's none.
func (u *AVL[T, S]) find(v T) S {
	for curI := u.root; curI != 0; {
		if order := u.cmp(v, *u.key(curI)); order < 0 {
			curI = u.ifs[curI].l
		} else if order > 0 {
			curI = u.ifs[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// Has [Tree.Has]
// Time: O(log n); Space: O(1)
func (u *AVL[T, S]) Has(v T) bool {
	return u.find(v) != 0
}

// Get [Tree.Get]
// Time: O(log n); Space: O(1)
func (u *AVL[T, S]) Get(v T) (T, bool) {
	if i := u.find(v); i != 0 {
		return *u.key(i), true
	}
	return *new(T), false
}

// Minimum [Tree.Minimum]
// Time: O(log n); Space: O(1)
func (u *AVL[T, S]) Minimum() (T, bool) {
	if i := u.minimum(u.root); i != 0 {
		return *u.key(i), true
	}
	return *new(T), false
}

// Maximum [Tree.Maximum]
// Time: O(log n); Space: O(1)
func (u *AVL[T, S]) Maximum() (T, bool) {
	if i := u.maximum(u.root); i != 0 {
		return *u.key(i), true
	}
	return *new(T), false
}

// Clone returns a deep copy of the tree sharing no storage with u. Both trees can be
// modified independently afterward.
// Time: O(capacity)
func (u *AVL[T, S]) Clone() *AVL[T, S] {
	tracer().Debugf("avl: clone of %d elements", u.sz)
	return &AVL[T, S]{u.base.clone(), u.cmp}
}

// Move the content of u to a new tree without copying any node. u is empty afterward
// and remains usable with the same ordering.
// Time: O(1)
func (u *AVL[T, S]) Move() *AVL[T, S] {
	tracer().Debugf("avl: move of %d elements", u.sz)
	return &AVL[T, S]{u.base.move(), u.cmp}
}
