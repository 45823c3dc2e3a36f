package Trees

import (
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const bSize = 1 << 15

var sideEff bool

func BenchmarkAVL_Insert(b *testing.B) {
	var t *AVL[int, uint32]
	for range b.N {
		t = New[int, uint32](bSize)
		for _, j := range rg.Perm(bSize) {
			t.Insert(j)
		}
	}
	b.Log(t.depth())
}

func BenchmarkAVL_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := New[int, uint32](bSize)
		for _, j := range rg.Perm(bSize) {
			t.Insert(j)
		}
		b.StartTimer()
		for j := range bSize {
			t.Remove(j)
		}
	}
}

func BenchmarkAVL_Has(b *testing.B) {
	t := New[int, uint32](bSize)
	for _, j := range rg.Perm(bSize) {
		t.Insert(j)
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff = t.Has(i % (bSize * 2))
	}
}

func BenchmarkGodsAVL_Insert(b *testing.B) {
	for range b.N {
		t := avltree.NewWithIntComparator()
		for _, j := range rg.Perm(bSize) {
			t.Put(j, nil)
		}
	}
}

func BenchmarkGodsAVL_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := avltree.NewWithIntComparator()
		for _, j := range rg.Perm(bSize) {
			t.Put(j, nil)
		}
		b.StartTimer()
		for j := range bSize {
			t.Remove(j)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	for range b.N {
		t := btree.NewOrderedG[int](32)
		for _, j := range rg.Perm(bSize) {
			t.ReplaceOrInsert(j)
		}
	}
}

func BenchmarkBTree_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := btree.NewOrderedG[int](32)
		for _, j := range rg.Perm(bSize) {
			t.ReplaceOrInsert(j)
		}
		b.StartTimer()
		for j := range bSize {
			t.Delete(j)
		}
	}
}

func BenchmarkBTree_Has(b *testing.B) {
	t := btree.NewOrderedG[int](32)
	for _, j := range rg.Perm(bSize) {
		t.ReplaceOrInsert(j)
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff = t.Has(i % (bSize * 2))
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	for range b.N {
		t := llrb.New()
		for _, j := range rg.Perm(bSize) {
			t.ReplaceOrInsert(llrb.Int(j))
		}
	}
}

func BenchmarkLLRB_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		t := llrb.New()
		for _, j := range rg.Perm(bSize) {
			t.ReplaceOrInsert(llrb.Int(j))
		}
		b.StartTimer()
		for j := range bSize {
			t.Delete(llrb.Int(j))
		}
	}
}

func BenchmarkLLRB_Has(b *testing.B) {
	t := llrb.New()
	for _, j := range rg.Perm(bSize) {
		t.ReplaceOrInsert(llrb.Int(j))
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff = t.Has(llrb.Int(i % (bSize * 2)))
	}
}

func BenchmarkAVL_FromSorted(b *testing.B) {
	vs := make([]int, bSize)
	for range b.N {
		b.StopTimer()
		for j := range vs {
			vs[j] = j
		}
		b.StartTimer()
		t, _ := From[int, uint32](vs)
		sideEff = t.Empty()
	}
}
