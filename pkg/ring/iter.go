/*
 * Copyright (C) 2020-2022, IrineSistiana
 *
 * This file is part of ringlist.
 *
 * ringlist is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * ringlist is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package ring

// Iterator is a lazy single-pass cursor over a List. It yields each
// element once and is exhausted after one lap. A new Iterator must be
// created to traverse again.
//
// Modifying the list while an Iterator is in use is not supported.
// Next panics with ErrConcurrentModification if the list was modified
// since the Iterator was created. An exhausted Iterator never panics.
type Iterator[T comparable] struct {
	l       *List[T]
	gen     uint64
	cur     ref
	stop    ref // the node where the iteration started
	reverse bool
}

// Iter returns an Iterator that walks from the head to the tail.
func (l *List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{
		l:    l,
		gen:  l.gen,
		cur:  l.head,
		stop: l.head,
	}
}

// IterRev returns an Iterator that walks from the tail to the head.
func (l *List[T]) IterRev() *Iterator[T] {
	tail := nilRef
	if l.head != nilRef {
		tail = l.a.node(l.head).prev
	}
	return &Iterator[T]{
		l:       l,
		gen:     l.gen,
		cur:     tail,
		stop:    tail,
		reverse: true,
	}
}

// Next returns the current value and advances the cursor.
// ok is false if the iterator is exhausted.
func (it *Iterator[T]) Next() (v T, ok bool) {
	if it.cur == nilRef {
		return v, false
	}
	if it.l.gen != it.gen {
		panic(ErrConcurrentModification)
	}

	n := it.l.a.node(it.cur)
	next := n.next
	if it.reverse {
		next = n.prev
	}
	if next == it.stop {
		it.cur = nilRef
	} else {
		it.cur = next
	}
	return n.value, true
}
