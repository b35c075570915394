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

package hardware

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
)

// Step the machine forward one CPU instruction. The cycleCallback is called
// after every CPU cycle and may be nil. The result of the instruction is
// returned even when an error occurs, in which case it may be incomplete.
func (m *Machine) Step(cycleCallback func() error) (execution.Result, error) {
	err := m.CPU.ExecuteInstruction(m.Mem, cycleCallback)
	return m.CPU.LastResult, err
}
