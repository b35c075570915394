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

package preferences

import (
	"github.com/jetsetilly/gopher6502/prefs"
)

// CPUPreferences defines and collates the preference values used by the CPU.
type CPUPreferences struct {
	grp *prefs.Group

	// decrement the stack pointer by two after JSR has pushed the return
	// address. when false the stack pointer is left untouched by JSR
	StackAutoDecrement prefs.Bool

	// emulate the NMOS page boundary bug for JMP indirect. when the low byte
	// of the pointer is 0xff, the high byte of the target is read from the
	// start of the same page. when false the pointee is read as a normal word
	// and a pointer of 0xffff is an out of range access
	JmpIndirectBug prefs.Bool

	// add an entry to the log for every completed instruction
	Trace prefs.Bool
}

func (p *CPUPreferences) String() string {
	if p.grp == nil {
		return ""
	}
	return p.grp.String()
}

// NewCPUPreferences is the preferred method of initialisation for the
// CPUPreferences type. Values on the command line stack are applied.
func NewCPUPreferences() (*CPUPreferences, error) {
	p := &CPUPreferences{}
	p.SetDefaults()

	p.grp = prefs.NewGroup()
	err := p.grp.Add("cpu.stackAutoDecrement", &p.StackAutoDecrement)
	if err != nil {
		return nil, err
	}
	err = p.grp.Add("cpu.jmpIndirectBug", &p.JmpIndirectBug)
	if err != nil {
		return nil, err
	}
	err = p.grp.Add("cpu.trace", &p.Trace)
	if err != nil {
		return nil, err
	}
	err = p.grp.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *CPUPreferences) SetDefaults() {
	_ = p.StackAutoDecrement.Set(false)
	_ = p.JmpIndirectBug.Set(false)
	_ = p.Trace.Set(false)
}

// AllowLogging implements the logger.Permission interface. Logging is allowed
// when the Trace preference is true.
func (p *CPUPreferences) AllowLogging() bool {
	return p.Trace.Get().(bool)
}
