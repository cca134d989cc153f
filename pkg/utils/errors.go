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

package utils

import (
	"fmt"
	"strings"
)

// Errors collects errors, e.g. all problems of a config, so they can
// be reported at once.
type Errors []error

func (es *Errors) Error() string {
	return es.String()
}

// Append appends err to es. nil errors are ignored.
func (es *Errors) Append(err error) {
	if err == nil {
		return
	}
	*es = append(*es, err)
}

func (es *Errors) Len() int {
	return len(*es)
}

// Build returns nil if es is empty, the only error if es has one,
// or es itself.
func (es *Errors) Build() error {
	switch len(*es) {
	case 0:
		return nil
	case 1:
		return (*es)[0]
	default:
		return es
	}
}

// Unwrap supports errors.Is and errors.As on go1.20+.
func (es *Errors) Unwrap() []error {
	return *es
}

func (es *Errors) String() string {
	sb := new(strings.Builder)
	sb.WriteString(fmt.Sprintf("%d errors:", len(*es)))
	for i, err := range *es {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(fmt.Sprintf(" #%d: %v", i, err))
	}
	return sb.String()
}
