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

// Package instructions defines the table of opcodes understood by the CPU.
// Each Definition describes how many bytes an instruction occupies in the
// program, how many cycles it should consume, how its operand is addressed
// and what the instruction does.
//
// The table is indexed by opcode. Opcodes that are not supported have a nil
// entry and the CPU treats them as an unrecoverable decode error.
package instructions

import "fmt"

// Operator identifies the operation performed by an instruction, independent
// of the addressing mode.
type Operator int

// List of operators.
const (
	Nop Operator = iota
	Lda
	Jmp
	Jsr
)

func (op Operator) String() string {
	switch op {
	case Nop:
		return "NOP"
	case Lda:
		return "LDA"
	case Jmp:
		return "JMP"
	case Jsr:
		return "JSR"
	}
	return "???"
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s effect=%s]", defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect)
}

// the supported instruction set. cycle counts are the number of memory
// accesses (a word access counting as two) plus any internal cycles.
var definitions = []Definition{
	// opcode fetch, padding byte, one internal cycle
	{OpCode: 0xea, Operator: Nop, Bytes: 2, Cycles: 3, AddressingMode: Implied, Effect: Read},

	{OpCode: 0xa9, Operator: Lda, Bytes: 2, Cycles: 2, AddressingMode: Immediate, Effect: Read},
	{OpCode: 0xa5, Operator: Lda, Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, Effect: Read},
	{OpCode: 0xb5, Operator: Lda, Bytes: 2, Cycles: 3, AddressingMode: ZeroPageIndexedX, Effect: Read},
	{OpCode: 0xad, Operator: Lda, Bytes: 3, Cycles: 4, AddressingMode: Absolute, Effect: Read},

	{OpCode: 0x4c, Operator: Jmp, Bytes: 3, Cycles: 3, AddressingMode: Absolute, Effect: Flow},
	{OpCode: 0x6c, Operator: Jmp, Bytes: 3, Cycles: 5, AddressingMode: Indirect, Effect: Flow},

	// opcode fetch, address word, return address word, one internal cycle
	{OpCode: 0x20, Operator: Jsr, Bytes: 3, Cycles: 6, AddressingMode: Absolute, Effect: Subroutine},
}

// GetDefinitions returns the instruction table indexed by opcode. Unsupported
// opcodes have a nil entry. The returned table is a new copy each time.
func GetDefinitions() []*Definition {
	table := make([]*Definition, 256)
	for i := range definitions {
		defn := definitions[i]
		if table[defn.OpCode] != nil {
			panic(fmt.Sprintf("instructions: duplicate opcode in definitions (%#02x)", defn.OpCode))
		}
		table[defn.OpCode] = &defn
	}
	return table
}
