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

// Package cpu emulates a small part of the 6502 microprocessor. Like all 8-bit
// processors of the era, the 6502 executes instructions according to the
// single byte value read from an address pointed to by the program counter.
// This single byte is the opcode and is looked up in the instruction table.
// The instruction definition for that opcode is then used to move execution
// of the program forward.
//
// Memory is not part of the CPU. Any implementation of the cpubus.Memory
// interface is passed to Reset() and to the execution functions.
//
//	mem := memory.NewMemory()
//	mc := cpu.NewCPU(nil)
//	mc.Reset(mem)
//
// Reset() clears the memory so the program must be loaded afterwards. The
// PC starts at the address of the reset vector (0xfffc) and the first
// instruction is read from there.
//
// Execute() runs instructions until a budget of cycles has been spent. Every
// memory access costs one cycle for a byte and two cycles for a word. Some
// instructions also consume internal cycles. The budget is only examined
// between instructions so Execute() may consume more cycles than requested.
//
//	consumed, err := mc.Execute(10, mem)
//
// ExecuteInstruction() is the lower level function. Its second argument is a
// callback function that is called at every cycle boundary of the
// instruction.
//
//	numCycles := 0
//	for {
//		err := mc.ExecuteInstruction(mem, func() error {
//			numCycles++
//			return nil
//		})
//		if err != nil {
//			break
//		}
//	}
//
// The CPU type contains some public fields that are worthy of mention. The
// LastResult field can be probed for information about the last instruction
// executed, or about the current instruction being executed if accessed from
// ExecuteInstruction()'s callback function. See the execution package for
// more details.
//
// The Killed field indicates that the CPU has decoded an opcode that it does
// not recognise. The error returned in that case is an OpcodeError and the
// CPU refuses to execute any more instructions until it is Reset().
package cpu
