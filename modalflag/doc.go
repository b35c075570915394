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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP")
//	budget := md.AddInt("budget", 10, "number of cycles to execute")
//	_, _ = md.Parse()
//
// A mode is a special command line argument that puts the program into a
// different mode of operation. The first argument after the flags is checked
// against the list given to AddSubModes(). If it matches, that mode is
// selected, otherwise the first sub-mode in the list is the default. Sub-mode
// comparisons are case insensitive.
//
//	switch md.Mode() {
//	case "RUN":
//		run(*budget, md.RemainingArgs())
//	case "STEP":
//		step(md.RemainingArgs())
//	}
//
// After a mode has been selected, NewMode() can be called to process the
// arguments following the mode selector with a different set of flags. Modes
// can be chained together as deep as required and Path() returns the modes
// that were selected along the way.
//
// Addresses are common arguments for this program and AddAddress() adds a
// flag that accepts a hexadecimal address. ParseAddress() is the same
// conversion for non-flag arguments.
package modalflag
