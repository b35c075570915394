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

// Package prefs facilitates the storage of preferred values. Preference values
// are safe for concurrent access and can have callback functions attached
// that are run before and after a value is changed.
//
// Preferences are collected into a Group. Each preference in a group is
// identified by a key, conventionally a dot-separated path:
//
//	var trace prefs.Bool
//	grp := prefs.NewGroup()
//	err := grp.Add("cpu.trace", &trace)
//
// Values can be overridden from the command line by pushing a prefs string
// onto the command line stack before loading the group:
//
//	prefs.PushCommandLineStack("cpu.trace::true")
//	err = grp.Load()
//
// There is no disk storage. Preferences last for the lifetime of the program.
package prefs
