package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Tree represents an ordered set of unique elements implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool), and x should
// not be used.
// Methods implemented recursively are noted, otherwise they are iterative.
type Tree[T any, S constraints.Unsigned] interface {
	//Insert v to the Tree. Returns false if an equivalent element is already
	//present. A non-nil error means v couldn't be stored and the Tree is unchanged.
	Insert(v T) (bool, error)
	//Remove v from the Tree. Returns false if v isn't present.
	Remove(v T) bool
	//Has an element equivalent to v.
	Has(v T) bool
	//Get the stored element equivalent to v.
	Get(v T) (T, bool)
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Size of the tree.
	Size() S
	//Height of the tree, 0 if empty.
	Height() int
	//All elements in ascending order. Each call starts a new traversal.
	//The tree must not be modified during the iteration.
	All() iter.Seq[T]
	//InOrder returns a closure function f acting like an iterator. f
	//gives elements in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering, or a stored height or the balance
	//condition doesn't hold.
	Corrupt() bool
}

var _ Tree[int, uint] = (*AVL[int, uint])(nil)
