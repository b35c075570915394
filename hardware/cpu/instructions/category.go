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

package instructions

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	// read instructions read a value from memory (or the program in the case
	// of immediate addressing) and store it in a register
	Read EffectCategory = iota

	// flow consists of the JMP instructions
	Flow

	// subroutine instructions push the PC before altering the flow
	Subroutine
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	}
	return "unknown effect"
}
