package Trees

import (
	"fmt"

	Go_Utils "github.com/g-m-twostay/go-avl"
)

// Check validates the structural invariants of the tree: keys are strictly
// ordered, every stored height is correct, every node is balanced, and every
// slot of the arena is either reachable from the root exactly once or on the
// free list exactly once. Violations are reported wrapping ErrCorrupt.
// Recursive.
// Time: O(capacity)
func (u *AVL[T, S]) Check() error {
	err := u.check()
	if err != nil {
		tracer().Debugf("avl: check failed: %v", err)
	}
	return err
}

// Corrupt [Tree.Corrupt]
func (u *AVL[T, S]) Corrupt() bool {
	return u.Check() != nil
}

func (u *AVL[T, S]) check() error {
	if len(u.ifs) == 0 || len(u.ifs) != len(u.vs)+1 {
		return fmt.Errorf("%w: arena has %d nodes and %d keys", ErrCorrupt, len(u.ifs), len(u.vs))
	}
	if u.ifs[0] != (info[S]{}) {
		return fmt.Errorf("%w: nil node was modified", ErrCorrupt)
	}
	seen := Go_Utils.NewBitArray(uint(len(u.ifs)))
	seen.Set(0)
	n, _, err := u.checkNode(u.root, seen, nil, nil)
	if err != nil {
		return err
	}
	if n != uint(u.sz) {
		return fmt.Errorf("%w: %d reachable nodes, size is %d", ErrCorrupt, n, u.sz)
	}
	for i := u.free; i != 0; i = u.ifs[i].l {
		if uint(i) >= uint(len(u.ifs)) {
			return fmt.Errorf("%w: free index %d out of range", ErrCorrupt, i)
		} else if seen.Get(uint(i)) {
			return fmt.Errorf("%w: free index %d is in use or listed twice", ErrCorrupt, i)
		}
		seen.Set(uint(i))
	}
	if c := seen.Count(); c != uint(len(u.ifs)) {
		return fmt.Errorf("%w: %d of %d slots are neither used nor free", ErrCorrupt, uint(len(u.ifs))-c, len(u.ifs))
	}
	return nil
}

// checkNode validates the subtree rooting at i, whose keys must be strictly between
// lo and hi when they're not nil. Returns the number of nodes and the height.
func (u *AVL[T, S]) checkNode(i S, seen Go_Utils.BitArray, lo, hi *T) (uint, uint8, error) {
	if i == 0 {
		return 0, 0, nil
	}
	if uint(i) >= uint(len(u.ifs)) {
		return 0, 0, fmt.Errorf("%w: index %d out of range", ErrCorrupt, i)
	} else if seen.Get(uint(i)) {
		return 0, 0, fmt.Errorf("%w: node %d is referenced twice", ErrCorrupt, i)
	}
	seen.Set(uint(i))
	cur, k := u.ifs[i], u.key(i)
	if lo != nil && u.cmp(*lo, *k) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v is not after %v", ErrCorrupt, *k, *lo)
	}
	if hi != nil && u.cmp(*k, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v is not before %v", ErrCorrupt, *k, *hi)
	}
	nl, hl, err := u.checkNode(cur.l, seen, lo, k)
	if err != nil {
		return 0, 0, err
	}
	nr, hr, err := u.checkNode(cur.r, seen, k, hi)
	if err != nil {
		return 0, 0, err
	}
	if d := int(hl) - int(hr); d > 1 || d < -1 {
		return 0, 0, fmt.Errorf("%w: key %v has balance %d", ErrCorrupt, *k, d)
	}
	if h := max(hl, hr) + 1; cur.h != h {
		return 0, 0, fmt.Errorf("%w: key %v has height %d, want %d", ErrCorrupt, *k, cur.h, h)
	}
	return nl + nr + 1, cur.h, nil
}
