package Trees

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// base is the node arena shared by the tree operations. A node is addressed by its
// index in ifs; index 0 is the nil node. The key of node i is vs[i-1].
type base[T any, S constraints.Unsigned] struct {
	ifs        []info[S] // len(ifs)=len(vs)+1.
	vs         []T
	root, free S // free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
	sz         S // number of live nodes.
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	return base[T, S]{ifs: make([]info[S], 1, uint(hint)+1), vs: make([]T, 0, hint)}
}

func (u *base[T, S]) key(i S) *T {
	return &u.vs[i-1]
}

// addFree index once.
func (u *base[T, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a leaf holding v. Free indexes are used first, then the arena grows.
// Fails with ErrFull when S can't address another node; nothing is changed then.
func (u *base[T, S]) alloc(v T) (S, error) {
	if i := u.popFree(); i != 0 {
		u.ifs[i] = info[S]{h: 1}
		u.vs[i-1] = v
		u.sz++
		return i, nil
	}
	if uint64(len(u.ifs)) > uint64(^S(0)) {
		return 0, ErrFull
	}
	u.ifs = append(u.ifs, info[S]{h: 1})
	u.vs = append(u.vs, v)
	u.sz++
	return S(len(u.ifs) - 1), nil
}

// release node i to the free list. Its key is zeroed so the arena holds no references.
func (u *base[T, S]) release(i S) {
	u.vs[i-1] = *new(T)
	u.addFree(i)
	u.sz--
}

// minimum index in the subtree rooting at i, 0 if i is 0.
func (u *base[T, S]) minimum(i S) S {
	for i != 0 && u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

// maximum index in the subtree rooting at i, 0 if i is 0.
func (u *base[T, S]) maximum(i S) S {
	for i != 0 && u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *base[T, S]) Size() S {
	return u.sz
}

// Empty tells whether the tree holds no element.
func (u *base[T, S]) Empty() bool {
	return u.root == 0
}

// Height of the tree, 0 when empty.
// Time: O(1); Space: O(1)
func (u *base[T, S]) Height() int {
	return int(u.ifs[u.root].h)
}

// Clear the tree. If reset is true, every key is zeroed first so that the arena no longer
// references them, O(size); otherwise O(1). The arena keeps its capacity either way.
func (u *base[T, S]) Clear(reset bool) {
	tracer().Debugf("avl: clear of %d elements, reset=%t", u.sz, reset)
	if reset {
		clear(u.vs)
		clear(u.ifs)
	}
	u.ifs, u.vs = u.ifs[:1], u.vs[:0]
	u.root, u.free, u.sz = 0, 0, 0
}

// clone the arena. Indexes are kept so the copy has the same shape and heights.
func (u *base[T, S]) clone() base[T, S] {
	return base[T, S]{ifs: slices.Clone(u.ifs), vs: slices.Clone(u.vs), root: u.root, free: u.free, sz: u.sz}
}

// move the arena out, leaving u empty without any storage.
func (u *base[T, S]) move() base[T, S] {
	b := *u
	*u = base[T, S]{ifs: make([]info[S], 1)}
	return b
}
