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

import (
	"fmt"
	"github.com/IrineSistiana/ringlist/mlog"
	"go.uber.org/zap"
	"math"
)

var nop = mlog.Nop()

// ref addresses a node slot in an arena. It is the slot index plus one,
// so the zero ref is nilRef.
type ref int32

const nilRef ref = 0

type node[T any] struct {
	value      T
	next, prev ref
	live       bool
}

// arena is a slab of nodes. Released slots are kept in a free list
// and handed out again before the slab grows.
type arena[T any] struct {
	nodes    []node[T]
	free     []ref
	maxNodes int
	logger   *zap.Logger

	allocated uint64
	released  uint64
}

func (a *arena[T]) node(r ref) *node[T] {
	return &a.nodes[r-1]
}

func (a *arena[T]) log() *zap.Logger {
	if a.logger == nil {
		return nop
	}
	return a.logger
}

// alloc stores v in a free slot and returns its ref. The new node
// is a singleton ring. The arena is untouched if alloc fails.
func (a *arena[T]) alloc(v T) (ref, error) {
	if a.maxNodes > 0 && a.live() >= a.maxNodes {
		return nilRef, &AllocError{Limit: a.maxNodes}
	}

	var r ref
	if n := len(a.free); n > 0 {
		r = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if len(a.nodes) >= math.MaxInt32 {
			return nilRef, &AllocError{Limit: math.MaxInt32}
		}
		r = ref(len(a.nodes) + 1)
		a.nodes = append(a.nodes, node[T]{})
	}

	n := a.node(r)
	n.value = v
	n.next = r
	n.prev = r
	n.live = true
	a.allocated++
	a.log().Debug("node allocated", zap.Int32("ref", int32(r)))
	return r, nil
}

// release frees the slot of r. Caller must unlink r from its ring first,
// unless the whole ring is being torn down. It panics if r is not live.
func (a *arena[T]) release(r ref) {
	if r <= nilRef || int(r) > len(a.nodes) {
		panic(fmt.Sprintf("ring: release of invalid node %d", r))
	}
	n := a.node(r)
	if !n.live {
		panic(fmt.Sprintf("ring: double release of node %d", r))
	}

	*n = node[T]{} // drop the value so gc can collect it
	a.free = append(a.free, r)
	a.released++
	a.log().Debug("node released", zap.Int32("ref", int32(r)))
}

func (a *arena[T]) live() int {
	return int(a.allocated - a.released)
}

// shrink drops all slots once nothing is live. Capacity is kept.
func (a *arena[T]) shrink() {
	if a.live() != 0 {
		return
	}
	a.nodes = a.nodes[:0]
	a.free = a.free[:0]
}

// Stats is a snapshot of the node allocation counters of a List.
type Stats struct {
	// Allocated is the total number of node allocations.
	Allocated uint64
	// Released is the total number of node releases.
	Released uint64
	// Live is the number of nodes currently allocated.
	Live int
	// Slots is the current size of the node slab, live and free slots included.
	Slots int
}

func (a *arena[T]) stats() Stats {
	return Stats{
		Allocated: a.allocated,
		Released:  a.released,
		Live:      a.live(),
		Slots:     len(a.nodes),
	}
}
