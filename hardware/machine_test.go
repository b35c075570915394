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

package hardware_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/prefs"
	"github.com/jetsetilly/gopher6502/test"
)

func TestMachineRun(t *testing.T) {
	m, err := hardware.NewMachine()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.String(), "PC=fffc A=00 X=00 Y=00 SP=0100 SR=sv-bdizc")

	test.DemandSuccess(t, m.Load(0xfffc, 0xa9, 0x45))
	cycles, err := m.Run(2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 2)
	test.ExpectEquality(t, m.CPU.A.Value(), 0x45)
}

func TestMachineStep(t *testing.T) {
	m, err := hardware.NewMachine()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.Load(0x0200, 0xea, 0x00, 0x4c, 0x00, 0x02))

	var cycles int
	r, err := m.Step(func() error {
		cycles++
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 3)
	test.ExpectEquality(t, r.String(), "0200 NOP [3 cycles]")

	r, err = m.Step(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.String(), "0202 JMP $0200 [3 cycles]")
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x0200)

	// unknown opcode
	test.DemandSuccess(t, m.Load(0x0300, 0xff))
	r, err = m.Step(nil)
	test.ExpectSuccess(t, errors.Is(err, cpu.UnknownOpcode))
	test.ExpectEquality(t, r.String(), "0300 ???")

	m.Reset()
	test.ExpectFailure(t, m.CPU.Killed)
}

func TestMachineLoadOutOfRange(t *testing.T) {
	m, err := hardware.NewMachine()
	test.DemandSuccess(t, err)

	// the program runs off the end of memory
	err = m.Load(0xffff, 0xa9, 0x45)
	test.ExpectFailure(t, err)
}

func TestMachinePreferences(t *testing.T) {
	prefs.PushCommandLineStack("cpu.stackAutoDecrement::true")
	m, err := hardware.NewMachine()
	prefs.PopCommandLineStack()
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, m.Load(0x0200, 0x20, 0x00, 0x80))
	_, err = m.Step(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.CPU.SP.Address(), 0x00fe)
}
