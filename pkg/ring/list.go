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

// Package ring implements a circular doubly linked list. Nodes live in
// an arena owned by the list and are linked by slot refs, so a node is
// allocated exactly once on insertion and released exactly once on
// deletion or teardown.
//
// A List is not safe for concurrent use.
package ring

import (
	"fmt"
	"go.uber.org/zap"
	"io"
	"strings"
)

type Opts struct {
	// MaxNodes limits the number of live nodes. Zero means no limit.
	MaxNodes int

	// Logger receives debug logs of node allocations and releases.
	// Default is mlog.Nop().
	Logger *zap.Logger
}

// List is a circular doubly linked list. Following next from the head
// visits every element once and returns to the head. The tail is head.prev.
// The zero value is an empty list without a node limit.
type List[T comparable] struct {
	a    arena[T]
	head ref
	len  int

	// gen is bumped by every mutation. See Iterator.
	gen uint64
}

// New returns an empty list without a node limit.
func New[T comparable]() *List[T] {
	return NewWithOpts[T](Opts{})
}

func NewWithOpts[T comparable](opts Opts) *List[T] {
	return &List[T]{
		a: arena[T]{
			maxNodes: opts.MaxNodes,
			logger:   opts.Logger,
		},
	}
}

func (l *List[T]) IsEmpty() bool {
	return l.head == nilRef
}

func (l *List[T]) Len() int {
	return l.len
}

// InsertFront inserts v at the front of the list. v becomes the new head.
// It panics with an *AllocError if the node limit is reached.
func (l *List[T]) InsertFront(v T) {
	if err := l.TryInsertFront(v); err != nil {
		panic(err)
	}
}

// InsertBack inserts v at the back of the list. The head is unchanged.
// It panics with an *AllocError if the node limit is reached.
func (l *List[T]) InsertBack(v T) {
	if err := l.TryInsertBack(v); err != nil {
		panic(err)
	}
}

// TryInsertFront is like InsertFront but returns the *AllocError instead
// of panicking. The list is unchanged if an error is returned.
func (l *List[T]) TryInsertFront(v T) error {
	r, err := l.insertBeforeHead(v)
	if err != nil {
		return err
	}
	l.head = r
	return nil
}

// TryInsertBack is like InsertBack but returns the *AllocError instead
// of panicking. The list is unchanged if an error is returned.
func (l *List[T]) TryInsertBack(v T) error {
	_, err := l.insertBeforeHead(v)
	return err
}

// insertBeforeHead splices a new node between the tail and the head.
// Front and back insertion differ only in whether the head moves.
func (l *List[T]) insertBeforeHead(v T) (ref, error) {
	r, err := l.a.alloc(v)
	if err != nil {
		return nilRef, err
	}
	l.len++
	l.gen++

	if l.head == nilRef {
		l.head = r // alloc already made it a singleton ring
		return r, nil
	}

	// No allocation below this point, node pointers stay valid.
	h := l.a.node(l.head)
	n := l.a.node(r)
	tail := h.prev
	n.prev = tail
	l.a.node(tail).next = r
	h.prev = r
	n.next = l.head
	return r, nil
}

// Delete removes the first element, in forward order from the head,
// that equals v. It returns an error wrapping ErrNotFound if there is none.
func (l *List[T]) Delete(v T) error {
	if l.head == nilRef {
		return fmt.Errorf("delete %v: %w", v, ErrNotFound)
	}

	cur := l.head
	for {
		n := l.a.node(cur)
		if n.value == v {
			l.remove(cur)
			return nil
		}
		cur = n.next
		if cur == l.head {
			return fmt.Errorf("delete %v: %w", v, ErrNotFound)
		}
	}
}

func (l *List[T]) remove(r ref) {
	n := l.a.node(r)
	if n.next == r { // the only node
		l.head = nilRef
	} else {
		l.a.node(n.prev).next = n.next
		l.a.node(n.next).prev = n.prev
		if l.head == r {
			l.head = n.next
		}
	}
	l.a.release(r)
	l.len--
	l.gen++
}

// Clear releases every node and leaves the list empty and reusable.
func (l *List[T]) Clear() {
	if l.head == nilRef {
		return
	}

	end := l.head
	cur := l.head
	released := 0
	for {
		// Read next before the slot is released. Released slots are
		// never read again, only their refs are compared.
		next := l.a.node(cur).next
		l.a.release(cur)
		released++
		if next == end {
			break
		}
		cur = next
	}

	l.head = nilRef
	l.len = 0
	l.gen++
	l.a.shrink()
	l.a.log().Debug("list cleared", zap.Int("nodes", released))
}

// Front returns the value of the head.
func (l *List[T]) Front() (v T, ok bool) {
	if l.head == nilRef {
		return v, false
	}
	return l.a.node(l.head).value, true
}

// Back returns the value of the tail.
func (l *List[T]) Back() (v T, ok bool) {
	if l.head == nilRef {
		return v, false
	}
	return l.a.node(l.a.node(l.head).prev).value, true
}

// Values returns a copy of all values in forward order.
func (l *List[T]) Values() []T {
	s := make([]T, 0, l.len)
	it := l.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		s = append(s, v)
	}
	return s
}

// Print writes at most limit values in forward order to w, followed by
// a newline. limit <= 0 means no limit.
func (l *List[T]) Print(w io.Writer, limit int) error {
	sb := new(strings.Builder)
	sb.WriteByte('[')
	it := l.Iter()
	i := 0
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if limit > 0 && i >= limit {
			sb.WriteString(" ...")
			break
		}
		if i > 0 {
			sb.WriteString(" <-> ")
		}
		sb.WriteString(fmt.Sprint(v))
		i++
	}
	sb.WriteString("]\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// Stats returns the node allocation counters of l.
func (l *List[T]) Stats() Stats {
	return l.a.stats()
}
