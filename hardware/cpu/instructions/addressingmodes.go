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

package instructions

// AddressingMode describes the method data for the instruction should be
// received.
type AddressingMode int

// List of supported addressing modes.
const (
	// implied instructions take no operand. however, NOP reads and discards
	// one padding byte from the program.
	Implied AddressingMode = iota

	Immediate

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind

	ZeroPageIndexedX // zpg,X
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Immediate:
		return "Immediate"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case Indirect:
		return "Indirect"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	}
	return "unknown addressing mode"
}

// OperandBytes returns the number of bytes that follow the opcode in the
// program for the addressing mode.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Implied, Immediate, ZeroPage, ZeroPageIndexedX:
		return 1
	case Absolute, Indirect:
		return 2
	}
	return 0
}
