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

// Package terminal provides single key press input for the STEP mode of the
// gopher6502 program. Open() puts the controlling terminal into cbreak mode
// so that key presses are delivered without waiting for the return key.
// NewReader() wraps any io.Reader for the same purpose, which is useful when
// input is not coming from a terminal.
//
// Terminal handling is provided by "github.com/pkg/term".
package terminal
