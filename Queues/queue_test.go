package Queues

import (
	"errors"
	"testing"
)

func TestArrayQueue_PushPop(t *testing.T) {
	q := MakeArrayQueue[int](0)
	if _, e := q.Pop(); e == nil {
		t.Error("pop from empty queue succeeded")
	} else if ee := new(EmptyQueueError); !errors.As(e, &ee) {
		t.Errorf("pop from empty queue gave %v", e)
	}
	var model []int
	for round := 0; round < 5; round++ {
		for i := 0; i < 7*(round+1); i++ {
			q.Push(round*1000 + i)
			model = append(model, round*1000+i)
		}
		// pop part of it so that head wraps around on the next resize.
		for i := 0; i < 3*(round+1); i++ {
			if v, _ := q.Peek(); v != model[0] {
				t.Errorf("peek gives %d, want %d", v, model[0])
			}
			if v, _ := q.Pop(); v != model[0] {
				t.Errorf("pop gives %d, want %d", v, model[0])
			}
			model = model[1:]
		}
	}
	if q.Size() != 4*(1+2+3+4+5) {
		t.Errorf("size is %d, want %d", q.Size(), 4*(1+2+3+4+5))
	}
	q.Shrink()
	prev := -1
	for !q.Empty() {
		v, e := q.Pop()
		if e != nil {
			t.Fatal(e)
		}
		if v <= prev {
			t.Errorf("pop gives %d after %d", v, prev)
		}
		prev = v
	}
	if _, has := q.Peek(); has {
		t.Error("peek on empty queue has a value")
	}
}

func TestArrayQueue_Wrap(t *testing.T) {
	q := MakeArrayQueue[int](4)
	for i := 0; i < 3; i++ {
		q.Push(i)
	}
	q.Pop()
	q.Pop()
	for i := 3; i < 10; i++ { // wraps, then grows with head>0
		q.Push(i)
	}
	for want := 2; want < 10; want++ {
		if v, _ := q.Pop(); v != want {
			t.Errorf("pop gives %d, want %d", v, want)
		}
	}
	q.Push(42)
	q.Clear()
	if !q.Empty() || q.Size() != 0 {
		t.Errorf("queue not empty after clear, size %d", q.Size())
	}
}
