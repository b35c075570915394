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

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/hardware/preferences"
	"github.com/jetsetilly/gopher6502/logger"
)

// CPU implements the subset of the 6502 instruction set listed in the
// instructions package. Register logic is implemented by the types in the
// registers sub-package.
type CPU struct {
	prefs *preferences.CPUPreferences

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// scratch register for zero page indexing. using an 8 bit register means
	// the indexed address wraps around the zero page
	acc8 registers.Register

	// the memory being used by the instruction currently executing. nil
	// between instructions
	mem cpubus.Memory

	// cycleCallback is called for every CPU cycle. nil between instructions
	cycleCallback func() error

	// instruction table indexed by opcode
	instructions []*instructions.Definition

	// LastResult contains detailed information about the last instruction
	// executed. the information is valid but incomplete when read from
	// inside a cycleCallback
	LastResult execution.Result

	// the CPU has decoded an opcode that it does not understand. all
	// execution requests fail until the next call to Reset()
	Killed bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. A
// nil preferences argument is the same as the default preferences. Note that
// the CPU is not in a useful state until Reset() has been called.
func NewCPU(prefs *preferences.CPUPreferences) *CPU {
	if prefs == nil {
		prefs = &preferences.CPUPreferences{}
	}

	return &CPU{
		prefs:        prefs,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "acc8"),
		instructions: instructions.GetDefinitions(),
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A, mc.X.Label(), mc.X,
		mc.Y.Label(), mc.Y, mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status,
	)
}

// Reset puts the CPU into its power-on state and clears the supplied memory.
// The PC is set to the address of the reset vector itself and not to the
// address stored there. Use LoadPCIndirect(cpubus.Reset) to follow the vector.
func (mc *CPU) Reset(mem cpubus.Memory) {
	mc.LastResult.Reset()
	mc.Killed = false
	mc.mem = nil
	mc.cycleCallback = nil

	mc.PC.Load(cpubus.Reset)
	mc.SP.Load(cpubus.StackBase)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.acc8.Load(0)
	mc.Status.Reset()

	mem.Initialize()
}

// LoadPCIndirect loads the contents of indirectAddress into the PC. No cycles
// are consumed.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16, mem cpubus.Memory) error {
	if mc.cycleCallback != nil {
		return fmt.Errorf("cpu: load PC indirect invalid mid-instruction")
	}

	v, err := mem.ReadWord(uint32(indirectAddress))
	if err != nil {
		return fmt.Errorf("cpu: load PC indirect: %w", err)
	}
	mc.PC.Load(v)

	return nil
}

// cycle consumes one cycle and calls cycleCallback.
func (mc *CPU) cycle() error {
	mc.LastResult.Cycles++
	return mc.cycleCallback()
}

// read8Bit returns 8bit value from the specified address
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	val, err := mc.mem.ReadByte(uint32(address))
	if err != nil {
		return 0, err
	}

	// +1 cycle
	return val, mc.cycle()
}

// read16Bit returns 16bit value from the specified address. the read is a
// single word access and so an address of 0xffff is out of range
//
// side-effects:
//   - calls cycleCallback twice after memory read
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	val, err := mc.mem.ReadWord(uint32(address))
	if err != nil {
		return 0, err
	}

	// +1 cycle
	err = mc.cycle()
	if err != nil {
		return 0, err
	}

	// +1 cycle
	return val, mc.cycle()
}

// write16Bit writes the value to the address as a single word access
//
// side-effects:
//   - calls cycleCallback twice after memory write
func (mc *CPU) write16Bit(address uint16, value uint16) error {
	err := mc.mem.WriteWord(value, uint32(address))
	if err != nil {
		return err
	}

	// +1 cycle
	err = mc.cycle()
	if err != nil {
		return err
	}

	// +1 cycle
	return mc.cycle()
}

// read 8bits from the PC location has a variety of additional side-effects
// depending on context.
type read8BitPCeffect int

const (
	newOpcode read8BitPCeffect = iota
	loNibble
	hiNibble
	padding
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback at end of function
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
func (mc *CPU) read8BitPC(effect read8BitPCeffect) error {
	v, err := mc.mem.ReadByte(uint32(mc.PC.Address()))
	if err != nil {
		return err
	}

	// the PC is a 16 bit register so the program wraps at the top of memory
	mc.PC.Add(1)
	mc.LastResult.ByteCount++

	// +1 cycle
	err = mc.cycle()
	if err != nil {
		return err
	}

	switch effect {
	case newOpcode:
		defn := mc.instructions[v]
		if defn == nil {
			return &OpcodeError{Opcode: v, Address: mc.LastResult.Address}
		}
		mc.LastResult.Defn = defn
	case loNibble:
		mc.LastResult.InstructionData = uint16(v)
	case hiNibble:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	case padding:
	}

	return nil
}

// read16BitPC reads 16 bits from the memory location pointed to by PC. the
// bytes are read one at a time
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback after each 8 bit read
//   - updates LastResult.ByteCount
//   - updates InstructionData field
func (mc *CPU) read16BitPC() error {
	if err := mc.read8BitPC(loNibble); err != nil {
		return err
	}
	return mc.read8BitPC(hiNibble)
}

// setZeroSign is applied to the destination register of every load.
func (mc *CPU) setZeroSign(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

// NilCycleCallback can be used as an argument to ExecuteInstruction(). It is
// a convenient way of specifying that nothing happens between CPU cycles.
func NilCycleCallback() error {
	return nil
}

// Execute runs instructions until the cycle budget has been spent. The
// budget is checked only between instructions so the final instruction is
// always completed, even if doing so takes more cycles than remained. Returns
// the number of cycles actually consumed.
//
// Registers and memory are left in whatever state they reached if an error
// occurs.
func (mc *CPU) Execute(budget int, mem cpubus.Memory) (int, error) {
	remaining := budget

	cycleCallback := func() error {
		remaining--
		return nil
	}

	for remaining > 0 {
		err := mc.ExecuteInstruction(mem, cycleCallback)
		if err != nil {
			return budget - remaining, err
		}
	}

	return budget - remaining, nil
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// All instructions take at least one cycle. The cycleCallback is called once
// for every cycle and an error returned by it is passed back to the caller
// immediately, leaving the instruction incomplete.
func (mc *CPU) ExecuteInstruction(mem cpubus.Memory, cycleCallback func() error) error {
	if mc.Killed {
		return KilledCPU
	}

	if mc.cycleCallback != nil {
		return fmt.Errorf("cpu: starting a new instruction is invalid mid-instruction")
	}

	if cycleCallback == nil {
		cycleCallback = NilCycleCallback
	}

	mc.mem = mem
	mc.cycleCallback = cycleCallback
	defer func() {
		mc.mem = nil
		mc.cycleCallback = nil
	}()

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	err := mc.executeInstruction()
	if err != nil {
		var opcodeErr *OpcodeError
		if errors.As(err, &opcodeErr) {
			mc.Killed = true
			mc.LastResult.Final = true
			logger.Logf(logger.Allow, "cpu", "%s (%#02x) at (%#04x)", UnknownOpcode, opcodeErr.Opcode, opcodeErr.Address)
			return err
		}

		if errors.Is(err, cpubus.AddressError) {
			return fmt.Errorf("cpu: %s: %w", mc.LastResult, err)
		}

		return err
	}

	mc.LastResult.Final = true
	logger.Log(mc.prefs, "cpu", mc.LastResult)

	return nil
}

func (mc *CPU) executeInstruction() error {
	// read opcode
	// +1 cycle
	err := mc.read8BitPC(newOpcode)
	if err != nil {
		return err
	}
	defn := mc.LastResult.Defn

	var address uint16
	var value uint8

	// get operand
	switch defn.AddressingMode {
	case instructions.Implied:
		// the padding byte is read and ignored
		// +1 cycle
		err = mc.read8BitPC(padding)
		if err != nil {
			return err
		}

	case instructions.Immediate:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		value = uint8(mc.LastResult.InstructionData)

	case instructions.ZeroPage:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		address = mc.LastResult.InstructionData

	case instructions.ZeroPageIndexedX:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}

		// no cycle for the addition
		mc.acc8.Load(uint8(mc.LastResult.InstructionData))
		carry, _ := mc.acc8.Add(mc.X.Value(), false)
		if carry {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}
		address = mc.acc8.Address()

	case instructions.Absolute:
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		address = mc.LastResult.InstructionData

	case instructions.Indirect:
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		indirectAddress := mc.LastResult.InstructionData

		if mc.prefs.JmpIndirectBug.Get().(bool) && indirectAddress&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug

			// +1 cycle
			lo, err := mc.read8Bit(indirectAddress)
			if err != nil {
				return err
			}

			// high byte comes from the start of the same page
			// +1 cycle
			hi, err := mc.read8Bit(indirectAddress & 0xff00)
			if err != nil {
				return err
			}

			address = (uint16(hi) << 8) | uint16(lo)
		} else {
			// +2 cycles
			address, err = mc.read16Bit(indirectAddress)
			if err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("cpu: unknown addressing mode for %s", defn.Operator)
	}

	// read instructions that address memory need the value at that address
	if defn.Effect == instructions.Read {
		switch defn.AddressingMode {
		case instructions.ZeroPage, instructions.ZeroPageIndexedX, instructions.Absolute:
			// +1 cycle
			value, err = mc.read8Bit(address)
			if err != nil {
				return err
			}
		}
	}

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Nop:
		// +1 cycle
		err = mc.cycle()
		if err != nil {
			return err
		}

	case instructions.Lda:
		mc.A.Load(value)
		mc.setZeroSign(mc.A)

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Jsr:
		// the return address is the address of the byte following the
		// instruction. it is stored as a word at the address in the stack
		// pointer
		// +2 cycles
		err = mc.write16Bit(mc.SP.Address(), mc.PC.Address())
		if err != nil {
			return err
		}

		if mc.prefs.StackAutoDecrement.Get().(bool) {
			mc.SP.Push(2)
		}

		// +1 cycle
		err = mc.cycle()
		if err != nil {
			return err
		}

		mc.PC.Load(address)

	default:
		return fmt.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	return nil
}
