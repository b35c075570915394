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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/test"
)

func TestDefinitions(t *testing.T) {
	defns := instructions.GetDefinitions()
	test.DemandEquality(t, len(defns), 256)

	count := 0
	for opcode, defn := range defns {
		if defn == nil {
			continue
		}
		count++

		// table is indexed by opcode
		test.ExpectEquality(t, int(defn.OpCode), opcode, defn)

		// number of bytes is consistent with the addressing mode
		test.ExpectEquality(t, defn.Bytes, 1+defn.AddressingMode.OperandBytes(), defn)

		// every instruction takes at least one cycle for every byte of the
		// instruction
		test.ExpectEquality(t, defn.Cycles >= defn.Bytes, true, defn)
	}
	test.ExpectEquality(t, count, 8)

	// a sample of opcodes that are not supported
	for _, opcode := range []uint8{0x00, 0xff, 0xa2, 0x60} {
		test.ExpectEquality(t, defns[opcode] == nil, true, opcode)
	}
}

func TestDefinitionsAreCopies(t *testing.T) {
	a := instructions.GetDefinitions()
	b := instructions.GetDefinitions()
	a[0xa9].Cycles = 100
	test.ExpectEquality(t, b[0xa9].Cycles, 2)
}

func TestOperatorNames(t *testing.T) {
	defns := instructions.GetDefinitions()
	test.ExpectEquality(t, defns[0xea].Operator.String(), "NOP")
	test.ExpectEquality(t, defns[0xa9].Operator.String(), "LDA")
	test.ExpectEquality(t, defns[0x6c].Operator.String(), "JMP")
	test.ExpectEquality(t, defns[0x20].Operator.String(), "JSR")
	test.ExpectEquality(t, defns[0xb5].AddressingMode.String(), "ZeroPageIndexedX")
	test.ExpectEquality(t, defns[0x20].Effect.String(), "Subroutine")
}
