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
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/preferences"
)

// Machine is the CPU and the memory it executes from.
type Machine struct {
	Prefs *preferences.CPUPreferences
	CPU   *cpu.CPU
	Mem   *memory.Memory
}

// NewMachine creates a new Machine in the reset state. Preferences on the
// command line stack are applied to the CPU preferences.
func NewMachine() (*Machine, error) {
	var err error

	m := &Machine{}

	m.Prefs, err = preferences.NewCPUPreferences()
	if err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}

	m.Mem = memory.NewMemory()
	m.CPU = cpu.NewCPU(m.Prefs)
	m.Reset()

	return m, nil
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// Reset the CPU and clear memory.
func (m *Machine) Reset() {
	m.CPU.Reset(m.Mem)
}

// Load writes the program into memory starting at origin and points the PC at
// the first byte of the program.
func (m *Machine) Load(origin uint16, program ...uint8) error {
	_, err := m.Mem.Poke(uint32(origin), program...)
	if err != nil {
		return fmt.Errorf("hardware: loading program: %w", err)
	}
	m.CPU.PC.Load(origin)
	return nil
}
