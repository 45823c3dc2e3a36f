package Trees

import (
	"cmp"
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// FromSorted builds a tree holding vs, which must be strictly ascending by c. The
// array is handed to the tree and mustn't be modified by the caller later. The
// result has minimal height, and node i holds vs[i-1].
// Time: O(n); Space: O(log n) besides the arena.
func FromSorted[T any, S constraints.Unsigned](vs []T, c func(T, T) int) (*AVL[T, S], error) {
	if uint64(len(vs)) > uint64(^S(0)) {
		return nil, ErrFull
	}
	for i := 1; i < len(vs); i++ {
		if c(vs[i-1], vs[i]) >= 0 {
			return nil, fmt.Errorf("%w: %v at %d is not before %v", ErrUnsorted, vs[i-1], i-1, vs[i])
		}
	}
	return &AVL[T, S]{buildBase[T, S](vs), c}, nil
}

// From is FromSorted ordered by cmp.Compare.
func From[T cmp.Ordered, S constraints.Unsigned](vs []T) (*AVL[T, S], error) {
	return FromSorted[T, S](vs, cmp.Compare[T])
}

// buildBase links the indexes 1..len(vs) into a tree by repeatedly splitting at the
// middle. A range of n indexes gets height bits.Len(n), and the two halves of a
// range differ in size by at most 1, so every node is balanced.
func buildBase[T any, S constraints.Unsigned](vs []T) base[T, S] {
	n := S(len(vs))
	b := base[T, S]{ifs: make([]info[S], uint(n)+1), vs: vs, sz: n}
	if n == 0 {
		return b
	}
	b.root = mid(1, n)
	st := make([][3]S, 0, bits.Len64(uint64(n))) //[low,high,mid]
	st = append(st, [3]S{1, n, b.root})
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		lo, hi, m := top[0], top[1], top[2]
		b.ifs[m].h = uint8(bits.Len64(uint64(hi - lo + 1)))
		if lo < m {
			b.ifs[m].l = mid(lo, m-1)
			st = append(st, [3]S{lo, m - 1, b.ifs[m].l})
		}
		if m < hi {
			b.ifs[m].r = mid(m+1, hi)
			st = append(st, [3]S{m + 1, hi, b.ifs[m].r})
		}
	}
	return b
}

// mid of [lo, hi] without overflow.
func mid[S constraints.Unsigned](lo, hi S) S {
	return lo + (hi-lo)>>1
}
