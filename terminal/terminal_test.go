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

package terminal_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/terminal"
	"github.com/jetsetilly/gopher6502/test"
)

func TestReader(t *testing.T) {
	kr := terminal.NewReader(strings.NewReader("s\n\r\nq"))

	k, err := kr.ReadKey()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, 's')

	k, err = kr.ReadKey()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, 'q')

	_, err = kr.ReadKey()
	test.ExpectSuccess(t, errors.Is(err, io.EOF))
}

func TestOpenMissingDevice(t *testing.T) {
	_, err := terminal.Open("/dev/gopher6502-no-such-terminal")
	test.ExpectFailure(t, err)
}
