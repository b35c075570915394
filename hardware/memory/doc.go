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

// Package memory implements the flat 64KiB address space used for both code
// and data. There are no mirrors, no memory mapped registers and no
// wraparound. Every access is bounds checked against cpubus.Capacity and an
// address outside the address space results in an error wrapping
// cpubus.AddressError.
//
// Multi-byte values are little-endian. Reading a word at the very top of
// memory fails because the high byte would be at an address outside of the
// address space:
//
//	mem := memory.NewMemory()
//	_, err := mem.ReadWord(0xffff)
//	errors.Is(err, cpubus.AddressError) // true
//
// The Memory type says nothing about the cost of an access. Cycle accounting
// is the responsibility of the CPU.
package memory
