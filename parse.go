// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher6502/modalflag"
)

// a single value to be written to memory before execution.
type poke struct {
	address uint16
	value   uint8
}

// parseByte converts a hexadecimal string to a byte. A leading 0x or $ is
// optional.
func parseByte(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "0x"), "$")
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("not a byte value (%s)", s)
	}
	return uint8(v), nil
}

// parseProgram converts a list of hexadecimal strings to program bytes. Each
// string can contain more than one byte if separated by commas.
func parseProgram(args []string) ([]uint8, error) {
	var program []uint8
	for _, a := range args {
		for _, s := range strings.Split(a, ",") {
			if strings.TrimSpace(s) == "" {
				continue // for loop
			}
			v, err := parseByte(s)
			if err != nil {
				return nil, fmt.Errorf("program: %w", err)
			}
			program = append(program, v)
		}
	}
	return program, nil
}

// parsePokes converts a string of the form "addr=byte,addr=byte" into a list
// of poke values.
func parsePokes(s string) ([]poke, error) {
	var pokes []poke
	for _, p := range strings.Split(s, ",") {
		if strings.TrimSpace(p) == "" {
			continue // for loop
		}

		av := strings.Split(p, "=")
		if len(av) != 2 {
			return nil, fmt.Errorf("poke: malformed (%s)", p)
		}

		a, err := modalflag.ParseAddress(av[0])
		if err != nil {
			return nil, fmt.Errorf("poke: %w", err)
		}

		v, err := parseByte(av[1])
		if err != nil {
			return nil, fmt.Errorf("poke: %w", err)
		}

		pokes = append(pokes, poke{address: a, value: v})
	}
	return pokes, nil
}
