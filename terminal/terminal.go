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

package terminal

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/term"
)

// KeyReader is implemented by types that supply single key presses.
type KeyReader interface {
	ReadKey() (byte, error)
}

// DefaultDevice is the terminal device used when Open() is given an empty
// string.
const DefaultDevice = "/dev/tty"

// Terminal is a terminal in cbreak mode.
type Terminal struct {
	t *term.Term
}

// Open the terminal device and put it into cbreak mode. CleanUp() must be
// called to restore the previous mode.
func Open(device string) (*Terminal, error) {
	if device == "" {
		device = DefaultDevice
	}

	t, err := term.Open(device, term.CBreakMode)
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}

	return &Terminal{t: t}, nil
}

// ReadKey blocks until a key is pressed.
func (pt *Terminal) ReadKey() (byte, error) {
	b := make([]byte, 1)
	n, err := pt.t.Read(b)
	if err != nil {
		return 0, fmt.Errorf("terminal: %w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}
	return b[0], nil
}

// CleanUp restores the terminal to the mode it was in before Open() and
// closes the device.
func (pt *Terminal) CleanUp() error {
	err := pt.t.Restore()
	if err != nil {
		_ = pt.t.Close()
		return fmt.Errorf("terminal: %w", err)
	}
	return pt.t.Close()
}

// reader implements KeyReader for any io.Reader.
type reader struct {
	r *bufio.Reader
}

// NewReader returns a KeyReader that reads key presses from r. Line endings
// are skipped.
func NewReader(r io.Reader) KeyReader {
	return &reader{r: bufio.NewReader(r)}
}

func (rd *reader) ReadKey() (byte, error) {
	for {
		b, err := rd.r.ReadByte()
		if err != nil {
			return 0, err
		}
		if b != '\n' && b != '\r' {
			return b, nil
		}
	}
}
