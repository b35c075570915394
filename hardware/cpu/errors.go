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

package cpu

import (
	"errors"
	"fmt"
)

// UnknownOpcode is wrapped by every OpcodeError.
var UnknownOpcode = errors.New("unknown opcode")

// KilledCPU is returned by ExecuteInstruction() and Execute() when the CPU
// has previously encountered an unknown opcode. Reset() clears the condition.
var KilledCPU = errors.New("cpu: killed by unknown opcode (reset required)")

// OpcodeError is returned when the CPU decodes an opcode that is not in the
// instruction table.
type OpcodeError struct {
	Opcode  uint8
	Address uint16
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("cpu: %s (%#02x) at (%#04x)", UnknownOpcode, e.Opcode, e.Address)
}

func (e *OpcodeError) Unwrap() error {
	return UnknownOpcode
}
