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

package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// Memory is a flat array of bytes the size of the 16bit address space. It
// implements the cpubus.Memory interface.
type Memory struct {
	data [cpubus.Capacity]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The memory is zeroed.
func NewMemory() *Memory {
	return &Memory{}
}

func (mem *Memory) String() string {
	return mem.summary(0x0000, 0x00ff)
}

func checkAddress(address uint32) error {
	if address >= cpubus.Capacity {
		return fmt.Errorf("memory: %w (%#05x)", cpubus.AddressError, address)
	}
	return nil
}

// Initialize sets every address to zero. Implements the cpubus.Memory interface.
func (mem *Memory) Initialize() {
	for i := range mem.data {
		mem.data[i] = 0
	}
}

// ReadByte implements the cpubus.Memory interface.
func (mem *Memory) ReadByte(address uint32) (uint8, error) {
	if err := checkAddress(address); err != nil {
		return 0, err
	}
	return mem.data[address], nil
}

// WriteByte implements the cpubus.Memory interface.
func (mem *Memory) WriteByte(address uint32, data uint8) error {
	if err := checkAddress(address); err != nil {
		return err
	}
	mem.data[address] = data
	return nil
}

// ReadWord implements the cpubus.Memory interface.
func (mem *Memory) ReadWord(address uint32) (uint16, error) {
	lo, err := mem.ReadByte(address)
	if err != nil {
		return 0, err
	}
	hi, err := mem.ReadByte(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// WriteWord implements the cpubus.Memory interface. Nothing is written if
// either byte of the word is outside of the address space.
func (mem *Memory) WriteWord(data uint16, address uint32) error {
	if err := checkAddress(address + 1); err != nil {
		return err
	}
	if err := checkAddress(address); err != nil {
		return err
	}
	mem.data[address] = uint8(data)
	mem.data[address+1] = uint8(data >> 8)
	return nil
}

// Poke writes a sequence of bytes starting at origin. Returns the address
// after the last byte written. Writing stops at the first address outside
// of the address space.
func (mem *Memory) Poke(origin uint32, data ...uint8) (uint32, error) {
	for i, d := range data {
		if err := mem.WriteByte(origin+uint32(i), d); err != nil {
			return origin + uint32(i), err
		}
	}
	return origin + uint32(len(data)), nil
}

// Dump writes a hex summary of the memory between the two addresses
// (inclusive) to the io.Writer. Rows are aligned to 16 byte boundaries.
func (mem *Memory) Dump(w io.Writer, from uint16, to uint16) error {
	if to < from {
		return fmt.Errorf("memory: dump range is backwards (%#04x to %#04x)", from, to)
	}
	_, err := io.WriteString(w, mem.summary(from, to))
	return err
}

func (mem *Memory) summary(from uint16, to uint16) string {
	s := strings.Builder{}
	s.WriteString("        -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("      ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	// use 32bit values for the loop so that a range ending at 0xffff
	// terminates
	start := uint32(from) &^ 0x0f
	end := uint32(to)
	for row := start; row <= end; row += 16 {
		s.WriteString(fmt.Sprintf("%04x | ", row))
		for col := uint32(0); col < 16; col++ {
			a := row + col
			if a < uint32(from) || a > end {
				s.WriteString("   ")
				continue
			}
			s.WriteString(fmt.Sprintf(" %02x", mem.data[a]))
		}
		s.WriteString("\n")
	}

	return strings.TrimRight(s.String(), "\n")
}
