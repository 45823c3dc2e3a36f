package TreeSet

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/emirpasic/gods/sets/treeset"
)

func TestTreeSet_All(t *testing.T) {
	S := New[int]()
	for i := 0; i < 10; i++ {
		if !S.Put(i) {
			t.Error("wrong put 1")
		}
		if S.Put(i) {
			t.Error("wrong put 2")
		}
	}
	for i := 0; i < 10; i++ {
		if !S.Has(i) {
			t.Error("wrong has 1")
		}
	}
	for i := 0; i < 5; i++ {
		if !S.Remove(i) {
			t.Error("wrong remove 1")
		}
		if S.Remove(i) {
			t.Error("wrong remove 2")
		}
	}
	for i := 0; i < 5; i++ {
		if S.Has(i) {
			t.Error("wrong has 2")
		}
	}
	if S.Size() != 5 {
		t.Errorf("wrong size %d", S.Size())
	}
	if err := S.Tree().Check(); err != nil {
		t.Error(err)
	}
}

func TestTreeSet_Take(t *testing.T) {
	S := Of(5, 3, 9, 1, 7)
	var got []int
	for e, ok := S.Take(); ok; e, ok = S.Take() {
		got = append(got, e)
	}
	if !slices.Equal(got, []int{1, 3, 5, 7, 9}) {
		t.Errorf("take order %v", got)
	}
	if S.Size() != 0 {
		t.Errorf("set not empty after taking everything")
	}
	if _, ok := S.Min(); ok {
		t.Errorf("min of an empty set")
	}
}

func TestTreeSet_Range(t *testing.T) {
	S := Of("pear", "apple", "fig", "kiwi")
	var got []string
	S.Range(func(e string) bool {
		got = append(got, e)
		return e != "kiwi"
	})
	if !slices.Equal(got, []string{"apple", "fig", "kiwi"}) {
		t.Errorf("range gives %v", got)
	}
	if mx, _ := S.Max(); mx != "pear" {
		t.Errorf("max is %q", mx)
	}
}

func TestTreeSet_Extended(t *testing.T) {
	A := Of(1, 2, 3, 4, 5, 6)
	B := Of(4, 5, 6, 7, 8)
	if n := A.Clone().PutAll(B); n != 2 {
		t.Errorf("put all added %d", n)
	}
	if n := A.Clone().RemoveAll(B); n != 3 {
		t.Errorf("remove all removed %d", n)
	}
	U := A.Clone()
	U.Union(B)
	if got := U.Slice(); !slices.Equal(got, []int{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("union %v", got)
	}
	I := A.Clone()
	I.Intersect(B)
	if got := I.Slice(); !slices.Equal(got, []int{4, 5, 6}) {
		t.Errorf("intersection %v", got)
	}
	if !I.Eq(Of(6, 5, 4)) || I.Eq(Of(4, 5)) || I.Eq(Of(4, 5, 7)) {
		t.Errorf("wrong eq")
	}
	F := A.Filter(func(e int) bool { return e%2 == 0 })
	if !F.Eq(Of(2, 4, 6)) || A.Size() != 6 {
		t.Errorf("filter gives %d elements", F.Size())
	}
	// the set itself as the argument.
	if n := A.PutAll(A); n != 0 || A.Size() != 6 {
		t.Errorf("self put all added %d", n)
	}
	if n := A.RemoveAll(A); n != 6 || A.Size() != 0 {
		t.Errorf("self remove all removed %d", n)
	}
	A.Put(1)
	if !A.Has(1) || A.Size() != 1 {
		t.Errorf("set unusable after removing itself")
	}
}

func TestTreeSet_Order(t *testing.T) {
	S := NewFunc[string](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	for _, e := range []string{"b", "A", "a", "C", "B"} {
		S.Put(e)
	}
	if got := S.Slice(); !slices.Equal(got, []string{"A", "b", "C"}) {
		t.Errorf("case-insensitive set %v", got)
	}
	D := NewLess[int](func(a, b int) bool { return a > b })
	for _, e := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		D.Put(e)
	}
	F := D.Filter(func(e int) bool { return e > 2 })
	var got []int
	for e := range F.All() {
		got = append(got, e)
	}
	if !slices.Equal(got, []int{9, 6, 5, 4, 3}) {
		t.Errorf("filtered descending set %v", got)
	}
}

func TestTreeSet_Oracle(t *testing.T) {
	rg := rand.New(rand.NewSource(42))
	S := New[int]()
	O := treeset.NewWithIntComparator()
	for i := 0; i < 20000; i++ {
		e := rg.Intn(2000)
		switch rg.Intn(3) {
		case 0, 1:
			if S.Put(e) == O.Contains(e) {
				t.Fatalf("put %d disagrees", e)
			}
			O.Add(e)
		case 2:
			if S.Remove(e) != O.Contains(e) {
				t.Fatalf("remove %d disagrees", e)
			}
			O.Remove(e)
		}
	}
	if S.Size() != uint(O.Size()) {
		t.Fatalf("size %d, want %d", S.Size(), O.Size())
	}
	want := O.Values()
	i := 0
	for e := range S.All() {
		if e != want[i].(int) {
			t.Fatalf("element %d is %d, want %v", i, e, want[i])
		}
		i++
	}
	if err := S.Tree().Check(); err != nil {
		t.Error(err)
	}
}
