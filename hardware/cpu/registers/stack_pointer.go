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

package registers

import (
	"fmt"
)

// StackPointer is the 16bit address of the next free location on the stack.
// Unlike the hardware it is not confined to the stack page.
type StackPointer struct {
	value uint16
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type.
func NewStackPointer(val uint16) StackPointer {
	return StackPointer{value: val}
}

// Label returns the canonical name for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%04x", sp.value)
}

// Address returns the current value of the stack pointer.
func (sp StackPointer) Address() uint16 {
	return sp.value
}

// Load a value into the stack pointer.
func (sp *StackPointer) Load(val uint16) {
	sp.value = val
}

// Push moves the stack pointer down by the number of bytes. The stack grows
// downwards and wraps around at zero.
func (sp *StackPointer) Push(bytes uint16) {
	sp.value -= bytes
}
