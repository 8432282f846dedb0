package cache

// lruNode is an element of lruList. It carries the key so that the oldest
// entry can be removed from the owning map.
type lruNode[K comparable] struct {
	key        K
	prev, next *lruNode[K]
}

// lruList is an intrusive doubly-linked list ordered from most recently used
// (front) to least recently used (back). It is not synchronized.
type lruList[K comparable] struct {
	front, back *lruNode[K]
	n           int
}

func (l *lruList[K]) len() int { return l.n }

// pushFront inserts key as the most recently used element.
func (l *lruList[K]) pushFront(key K) *lruNode[K] {
	e := &lruNode[K]{key: key}
	l.link(e)
	return e
}

// touch marks e as the most recently used element.
func (l *lruList[K]) touch(e *lruNode[K]) {
	if e == l.front {
		return
	}
	l.unlink(e)
	l.link(e)
}

func (l *lruList[K]) remove(e *lruNode[K]) {
	l.unlink(e)
}

// popBack removes the least recently used element.
func (l *lruList[K]) popBack() (K, bool) {
	e := l.back
	if e == nil {
		var zero K
		return zero, false
	}
	l.unlink(e)
	return e.key, true
}

func (l *lruList[K]) reset() {
	l.front, l.back, l.n = nil, nil, 0
}

func (l *lruList[K]) link(e *lruNode[K]) {
	e.prev = nil
	e.next = l.front
	if l.front != nil {
		l.front.prev = e
	} else {
		l.back = e
	}
	l.front = e
	l.n++
}

func (l *lruList[K]) unlink(e *lruNode[K]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.front = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.back = e.prev
	}
	e.prev, e.next = nil, nil
	l.n--
}
