package Queues

// circular array; the items are content[head], content[head+1], ... wrapping around, sz of them.
type circArrQ[T any] struct {
	sz, head uint
	content  []T
}

// MakeArrayQueue with room for initCap items before growing.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{content: make([]T, initCap)}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

// resize the content to newLen>=sz, moving the items to the front.
func (u *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if n := copy(nc, u.content[u.head:min(u.head+u.sz, uint(len(u.content)))]); uint(n) < u.sz {
		copy(nc[n:], u.content[:u.sz-uint(n)])
	}
	u.content, u.head = nc, 0
}

// Shrink the content to fit the items.
func (u *circArrQ[T]) Shrink() {
	u.resize(u.sz)
}

func (u *circArrQ[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
}

func (u *circArrQ[T]) Size() uint {
	return u.sz
}

func (u *circArrQ[T]) Push(item T) {
	if l := uint(len(u.content)); u.sz == l {
		u.resize(l + l>>1 + 1)
	}
	u.content[(u.head+u.sz)%uint(len(u.content))] = item
	u.sz++
}

func (u *circArrQ[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item, u.content[u.head] = u.content[u.head], *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *circArrQ[T]) Peek() (item T, has bool) {
	if u.Empty() {
		return
	}
	return u.content[u.head], true
}
