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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition. nil until the opcode has been
	// decoded
	Defn *instructions.Definition

	// the number of bytes read from the program during decode
	ByteCount int

	// the operand of the instruction as read from the program. for immediate
	// addressing this is the value, for all other modes it is the (unindexed)
	// address
	InstructionData uint16

	// the actual number of cycles taken by the instruction
	Cycles int

	// whether a known buggy code path was triggered
	CPUBug Bug

	// whether this data has been finalised. the values of the other fields
	// are undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x ???", r.Address)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x %s", r.Address, r.Defn.Operator))

	switch r.Defn.AddressingMode {
	case instructions.Implied:
	case instructions.Immediate:
		s.WriteString(fmt.Sprintf(" #$%02x", r.InstructionData))
	case instructions.ZeroPage:
		s.WriteString(fmt.Sprintf(" $%02x", r.InstructionData))
	case instructions.ZeroPageIndexedX:
		s.WriteString(fmt.Sprintf(" $%02x,X", r.InstructionData))
	case instructions.Absolute:
		s.WriteString(fmt.Sprintf(" $%04x", r.InstructionData))
	case instructions.Indirect:
		s.WriteString(fmt.Sprintf(" ($%04x)", r.InstructionData))
	}

	s.WriteString(fmt.Sprintf(" [%d cycles]", r.Cycles))

	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" *%s*", r.CPUBug))
	}

	if !r.Final {
		s.WriteString(" (incomplete)")
	}

	return s.String()
}
