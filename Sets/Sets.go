package Sets

import "iter"

// Set of unique elements.
type Set[E any] interface {
	//Put e in the set. Returns false if it's already there.
	Put(E) bool
	Has(E) bool
	//Remove e from the set. Returns false if it isn't there.
	Remove(E) bool
	Size() uint
	//Take some element out of the set. The bool is false if the set is empty.
	Take() (E, bool)
	//Range over the elements until f returns false.
	Range(f func(E) bool)
	All() iter.Seq[E]
}

type ExtendedSet[E any] interface {
	Set[E]
	//PutAll elements of s. Returns the number of elements added.
	PutAll(s Set[E]) uint
	//RemoveAll elements of s. Returns the number of elements removed.
	RemoveAll(s Set[E]) uint
	//Eq tells whether both sets have the same elements.
	Eq(s Set[E]) bool
	Union(s Set[E])
	Intersect(s Set[E])
	//Filter returns a new set holding the elements satisfying pred.
	Filter(pred func(E) bool) ExtendedSet[E]
}
