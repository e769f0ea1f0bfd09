package cache

// entry is a node of the recency list. The key is kept so the oldest entry
// can be deleted from the map in O(1).
type entry[K comparable, V any] struct {
	key   K
	value V
	prev  *entry[K, V]
	next  *entry[K, V]
}

// lruList is a doubly-linked list ordered from most to least recently used.
// The list is not thread-safe; callers must handle synchronization.
type lruList[K comparable, V any] struct {
	head *entry[K, V]
	tail *entry[K, V]
	len  int
}

// Len returns the number of entries in the list.
func (l *lruList[K, V]) Len() int {
	return l.len
}

// pushFront inserts e as the most recently used entry.
func (l *lruList[K, V]) pushFront(e *entry[K, V]) {
	e.prev = nil
	e.next = l.head
	if l.head != nil {
		l.head.prev = e
	}
	l.head = e
	if l.tail == nil {
		l.tail = e
	}
	l.len++
}

// moveToFront marks e as the most recently used entry.
func (l *lruList[K, V]) moveToFront(e *entry[K, V]) {
	if e == l.head {
		return
	}
	l.unlink(e)
	l.pushFront(e)
}

// popBack removes and returns the least recently used entry, or nil.
func (l *lruList[K, V]) popBack() *entry[K, V] {
	e := l.tail
	if e != nil {
		l.unlink(e)
	}
	return e
}

// unlink removes e from the list.
func (l *lruList[K, V]) unlink(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}
	e.prev, e.next = nil, nil
	l.len--
}
