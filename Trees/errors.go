package Trees

import "errors"

var (
	// ErrFull signals that the index type of a tree can't address another node.
	// The tree is left unchanged.
	ErrFull = errors.New("avl: index space exhausted")
	// ErrCorrupt signals a violated structural invariant, see AVL.Check.
	ErrCorrupt = errors.New("avl: corrupt tree")
	// ErrUnsorted signals input to FromSorted that isn't strictly ascending.
	ErrUnsorted = errors.New("avl: keys not strictly ascending")
)
