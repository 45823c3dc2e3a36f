package Trees

import (
	"iter"

	"github.com/g-m-twostay/go-avl/Queues"
)

// walk the tree in order, or in reverse order if backward. Uses a stack of indexes
// whose depth is bounded by the height.
func (u *base[T, S]) walk(backward bool, f func(S) bool) {
	down := func(i S) S { return u.ifs[i].l }
	up := func(i S) S { return u.ifs[i].r }
	if backward {
		down, up = up, down
	}
	st := make([]S, 0, u.ifs[u.root].h)
	for curI := u.root; curI != 0; curI = down(curI) {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(curI) {
			return
		}
		for curI = up(curI); curI != 0; curI = down(curI) {
			st = append(st, curI)
		}
	}
}

// All [Tree.All]
// Time: O(n) for a full traversal; Space: O(log n)
func (u *base[T, S]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		u.walk(false, func(i S) bool { return yield(*u.key(i)) })
	}
}

// Backward gives all elements in descending order. Each call starts a new traversal.
func (u *base[T, S]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		u.walk(true, func(i S) bool { return yield(*u.key(i)) })
	}
}

// Keys returns all elements in ascending order.
// Time: O(n); Space: O(n)
func (u *base[T, S]) Keys() []T {
	ks := make([]T, 0, u.sz)
	u.walk(false, func(i S) bool {
		ks = append(ks, *u.key(i))
		return true
	})
	return ks
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(log n)
func (u *base[T, S]) InOrder() func() (T, bool) {
	var st []S
	for curI := u.root; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		r, has = *u.key(curI), true
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
		return
	}
}

// Levels of the tree from the root down, each in ascending order.
// Time: O(n); Space: O(n)
func (u *base[T, S]) Levels() [][]T {
	var lvs [][]T
	if u.root == 0 {
		return lvs
	}
	q := Queues.MakeArrayQueue[S](uint(u.sz)/2 + 1)
	q.Push(u.root)
	for !q.Empty() {
		lv := make([]T, 0, q.Size())
		for n := q.Size(); n > 0; n-- {
			curI, _ := q.Pop()
			lv = append(lv, *u.key(curI))
			if l := u.ifs[curI].l; l != 0 {
				q.Push(l)
			}
			if r := u.ifs[curI].r; r != 0 {
				q.Push(r)
			}
		}
		lvs = append(lvs, lv)
	}
	return lvs
}
