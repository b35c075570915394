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

// Package cpubus defines the view of memory as seen by the CPU. The Memory
// interface is satisfied by the flat RAM found in the memory package but the
// CPU has no knowledge of that type.
package cpubus

import "errors"

// Capacity of the address space. One more than the largest 16bit address.
const Capacity = 0x10000

// Reset is the address where the reset vector is stored. The CPU does not
// read the vector on reset, it loads the PC with this address directly. Use
// cpu.LoadPCIndirect(cpubus.Reset) for vector indirection.
const Reset = uint16(0xfffc)

// StackBase is the initial value of the stack pointer.
const StackBase = uint16(0x0100)

// AddressError is the sentinel error for all memory accesses outside of the
// address space. Test with errors.Is().
var AddressError = errors.New("address out of range")

// Memory defines the operations for the memory system when accessed from the
// CPU.
//
// Addresses are 32bit so that the second byte of a word access at the top of
// memory can be represented. Any address greater than or equal to Capacity
// should result in an error wrapping AddressError. The address space does not
// wrap.
type Memory interface {
	// Initialize sets every address to zero
	Initialize()

	ReadByte(address uint32) (uint8, error)
	WriteByte(address uint32, data uint8) error

	// words are little-endian. the byte at address is the low byte
	ReadWord(address uint32) (uint16, error)
	WriteWord(data uint16, address uint32) error
}
