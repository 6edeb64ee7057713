package chain

type node[T any] struct {
	data T
	prev *node[T]
}

// Chain is an append-only singly-linked sequence. New items become the head
// and link back to their predecessor; traversal runs newest to oldest. There
// is no removal and no random access: the chain only ever grows at the head.
type Chain[T any] struct {
	head   *node[T]
	length int
}

func New[T any]() *Chain[T] {
	return &Chain[T]{}
}

// Append wraps item in a new head node linked to the previous head. O(1).
func (c *Chain[T]) Append(item T) {
	c.head = &node[T]{data: item, prev: c.head}
	c.length++
}

// Head returns a pointer to the most recently appended item, nil if empty.
func (c *Chain[T]) Head() *T {
	if c.head == nil {
		return nil
	}
	return &c.head.data
}

func (c *Chain[T]) Len() int {
	return c.length
}

// Iter returns a fresh newest-to-oldest iterator. Elements are yielded as
// pointers, so callers may edit an element's contents in place without
// touching the link topology.
func (c *Chain[T]) Iter() *Iterator[T] {
	return &Iterator[T]{next: c.head}
}

type Iterator[T any] struct {
	next *node[T]
}

// Next yields the next element, or false when the walk reaches the tail.
func (it *Iterator[T]) Next() (*T, bool) {
	if it.next == nil {
		return nil, false
	}
	n := it.next
	it.next = n.prev
	return &n.data, true
}
