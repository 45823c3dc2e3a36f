package Trees

import "golang.org/x/exp/constraints"

// A node record in the arena. Index 0 is the nil node: l=r=0 and h=0.
// A free slot reuses l as the next link of the free list.
type info[S constraints.Unsigned] struct {
	l, r S
	h    uint8 // height of the subtree rooted here, 1 for a leaf.
}

// fix recomputes the height of node i from its children.
// Time: O(1); Space: O(1)
func (u *base[T, S]) fix(i S) {
	n := &u.ifs[i]
	n.h = max(u.ifs[n.l].h, u.ifs[n.r].h) + 1
}

// balance factor of node i, height(left)-height(right). 0 for the nil node.
func (u *base[T, S]) balance(i S) int {
	n := &u.ifs[i]
	return int(u.ifs[n.l].h) - int(u.ifs[n.r].h)
}

// rotateRight lifts the left child of y into y's place and returns it as the
// new subtree root. The right subtree of that child moves to y's left.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateRight(y S) S {
	x := u.ifs[y].l
	u.ifs[y].l = u.ifs[x].r
	u.ifs[x].r = y
	u.fix(y)
	u.fix(x)
	return x
}

// rotateLeft lifts the right child of x into x's place and returns it as the
// new subtree root. The left subtree of that child moves to x's right.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateLeft(x S) S {
	y := u.ifs[x].r
	u.ifs[x].r = u.ifs[y].l
	u.ifs[y].l = x
	u.fix(x)
	u.fix(y)
	return y
}
