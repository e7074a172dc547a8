/**
 * Copyright (c) 2024 Peking University and Peking University
 * Changsha Institute for Computing and Digital Economy
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package compat

import (
	"fmt"
	"strings"
)

// ParseError reports the byte offset at which a cpus-per-node list stopped
// making sense.
type ParseError struct {
	Input string
	Pos   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse cpus-per-node list (at index %d): %s", e.Pos, e.Input)
}

// SumCpusPerNode decodes a compact per-node CPU count list such as
// "2(x3),4,1(x2)" and returns the total CPU count over all nodes
// (2*3 + 4 + 1*2 = 12).
//
// The list is a comma separated sequence of COUNT or COUNT(xREPEAT)
// entries, in the order of the job's node list. A missing ')' after the
// repeat digits is tolerated, since the producer sometimes omits it.
// Every other malformation fails the whole list: counts and repeats must
// be positive integers, entries must be separated by single commas, and a
// partial sum is never returned. Single pass, no backtracking.
func SumCpusPerNode(list string) (uint64, error) {
	if list == "" {
		return 0, &ParseError{Input: list, Pos: 0}
	}

	var total uint64
	i := 0
	for i < len(list) {
		count, width := scanUint(list[i:])
		if width == 0 || count == 0 {
			return 0, &ParseError{Input: list, Pos: i}
		}
		i += width

		if strings.HasPrefix(list[i:], "(x") {
			i += 2
			repeat, width := scanUint(list[i:])
			if width == 0 || repeat == 0 {
				return 0, &ParseError{Input: list, Pos: i}
			}
			i += width
			// The closing paren is optional in the wild.
			if i < len(list) && list[i] == ')' {
				i++
			}
			count *= repeat
		}
		total += count

		if i < len(list) {
			if list[i] != ',' {
				return 0, &ParseError{Input: list, Pos: i}
			}
			i++
			// A comma must introduce another entry.
			if i == len(list) {
				return 0, &ParseError{Input: list, Pos: i}
			}
		}
	}

	return total, nil
}

// scanUint reads a leading run of ASCII digits and returns its value and
// width in bytes. A width of 0 means no digits were found.
func scanUint(s string) (uint64, int) {
	var v uint64
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		v = v*10 + uint64(s[i]-'0')
		i++
	}
	return v, i
}
