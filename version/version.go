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

// Package version reports the version of the program. The version number is
// set at link time. Without it the version is derived from the build
// information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher6502"

// set with -ldflags "-X github.com/jetsetilly/gopher6502/version.number=v0.1.0"
var number string

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// A version of "unreleased" means the program was built from a repository
// without a version number. A version of "local" means there was no
// repository information at all, which is the case with "go run ."
func Version() (string, string, bool) {
	return fromBuildInfo(number, debug.ReadBuildInfo)
}

// String returns the application name and version in a form suitable for
// printing.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func fromBuildInfo(number string, readBuildInfo func() (*debug.BuildInfo, bool)) (string, string, bool) {
	var vcs bool
	var revision string
	var modified bool

	if info, ok := readBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if revision == "" {
		revision = "no revision information"
	} else if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	if number != "" {
		return number, revision, true
	}
	if vcs {
		return "unreleased", revision, false
	}
	return "local", revision, false
}
