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
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Delete if no element equals the target.
	ErrNotFound = errors.New("value could not be found in the list")

	// ErrAllocFailed is the cause of every AllocError.
	ErrAllocFailed = errors.New("node allocation failed")

	// ErrConcurrentModification is the panic value of an Iterator whose
	// list was modified after the Iterator was created.
	ErrConcurrentModification = errors.New("list modified during iteration")
)

// AllocError reports that the node arena could not serve an allocation.
type AllocError struct {
	Limit int
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("%s: node limit %d reached", ErrAllocFailed, e.Limit)
}

func (e *AllocError) Unwrap() error {
	return ErrAllocFailed
}
