package Queues

// Queue is a first in first out container.
type Queue[T any] interface {
	Push(item T)
	// Pop the oldest item, EmptyQueueError if there's none.
	Pop() (T, error)
	// Peek at the oldest item without removing it.
	Peek() (T, bool)
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
