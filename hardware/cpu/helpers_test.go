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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/hardware/preferences"
	"github.com/jetsetilly/gopher6502/test"
)

// newMachine returns a CPU and memory in the reset state with the program
// placed at origin. the PC is pointed at the origin.
func newMachine(t *testing.T, p *preferences.CPUPreferences, origin uint16, program ...uint8) (*cpu.CPU, *memory.Memory) {
	t.Helper()

	mem := memory.NewMemory()
	mc := cpu.NewCPU(p)
	mc.Reset(mem)

	_, err := mem.Poke(uint32(origin), program...)
	test.DemandSuccess(t, err)
	mc.PC.Load(origin)

	return mc, mem
}

// newPrefs returns the default preferences with the supplied changes applied.
func newPrefs(t *testing.T, changes func(p *preferences.CPUPreferences)) *preferences.CPUPreferences {
	t.Helper()

	p, err := preferences.NewCPUPreferences()
	test.DemandSuccess(t, err)
	if changes != nil {
		changes(p)
	}

	return p
}

// step executes one instruction and checks that the result is consistent
// with the instruction's definition. returns the number of times the cycle
// callback was called.
func step(t *testing.T, mc *cpu.CPU, mem cpubus.Memory) int {
	t.Helper()

	var cycles int
	err := mc.ExecuteInstruction(mem, func() error {
		cycles++
		return nil
	})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, cycles, mc.LastResult.Cycles)

	return cycles
}

func peek(t *testing.T, mem cpubus.Memory, address uint32) uint8 {
	t.Helper()

	v, err := mem.ReadByte(address)
	test.DemandSuccess(t, err)

	return v
}
