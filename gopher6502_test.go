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

package main

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/modalflag"
	"github.com/jetsetilly/gopher6502/terminal"
	"github.com/jetsetilly/gopher6502/test"
	"github.com/stretchr/testify/require"
)

func TestParseProgram(t *testing.T) {
	program, err := parseProgram([]string{"a9", "0x45", "$4c,00, 02", ""})
	test.ExpectSuccess(t, err)
	require.Equal(t, []uint8{0xa9, 0x45, 0x4c, 0x00, 0x02}, program)

	_, err = parseProgram([]string{"a9", "100"})
	test.ExpectFailure(t, err)

	_, err = parseProgram([]string{"lda"})
	test.ExpectFailure(t, err)
}

func TestParsePokes(t *testing.T) {
	pokes, err := parsePokes("0042=45, $0100=ff,")
	test.ExpectSuccess(t, err)
	require.Equal(t, []poke{{address: 0x0042, value: 0x45}, {address: 0x0100, value: 0xff}}, pokes)

	pokes, err = parsePokes("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(pokes), 0)

	for _, s := range []string{"0042", "0042=45=46", "10000=00", "0042=100"} {
		_, err = parsePokes(s)
		test.ExpectFailure(t, err, s)
	}
}

func TestLaunchRun(t *testing.T) {
	out := &strings.Builder{}
	r := launch(out, []string{"RUN", "-budget", "2", "a9", "45"})
	test.ExpectEquality(t, r, 0)
	test.ExpectEquality(t, out.String(), "2 cycles\nPC=fffe A=45 X=00 Y=00 SP=0100 SR=sv-bdizc\n")
}

func TestLaunchDefaultMode(t *testing.T) {
	out := &strings.Builder{}
	r := launch(out, []string{"-budget", "3", "-origin", "0200", "-poke", "0042=45", "b5", "42"})
	test.ExpectEquality(t, r, 0)
	test.ExpectEquality(t, out.String(), "3 cycles\nPC=0202 A=45 X=00 Y=00 SP=0100 SR=sv-bdizc\n")
}

func TestLaunchPrefs(t *testing.T) {
	out := &strings.Builder{}
	r := launch(out, []string{"RUN", "-budget", "6", "-origin", "0200", "-prefs", "cpu.stackAutoDecrement::true", "20", "00", "80"})
	test.ExpectEquality(t, r, 0)
	test.ExpectEquality(t, out.String(), "6 cycles\nPC=8000 A=00 X=00 Y=00 SP=00fe SR=sv-bdizc\n")
}

func TestLaunchDump(t *testing.T) {
	out := &strings.Builder{}
	r := launch(out, []string{"RUN", "-budget", "3", "-dumpfrom", "0000", "-dumpto", "000f", "-origin", "0000", "ea", "00"})
	test.ExpectEquality(t, r, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "0000 | "))
}

func TestLaunchErrors(t *testing.T) {
	out := &strings.Builder{}
	r := launch(out, []string{"ff"})
	test.ExpectEquality(t, r, 20)
	test.ExpectEquality(t, out.String(), "1 cycles\n* error in RUN mode: cpu: unknown opcode (0xff) at (0xfffc)\n")

	// no program
	out.Reset()
	r = launch(out, []string{"RUN"})
	test.ExpectEquality(t, r, 20)

	// bad flag for the mode
	out.Reset()
	r = launch(out, []string{"RUN", "-nosuchflag"})
	test.ExpectEquality(t, r, 20)

	// out of range word access
	out.Reset()
	r = launch(out, []string{"-origin", "0200", "6c", "ff", "ff"})
	test.ExpectEquality(t, r, 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "address out of range"))
}

func TestStep(t *testing.T) {
	out := &strings.Builder{}

	md := &modalflag.Modes{Output: out}
	md.NewArgs([]string{"-origin", "0200", "a9", "45", "4c", "00", "02"})

	keys := terminal.NewReader(strings.NewReader("  q "))
	err := step(out, md, keys)
	test.ExpectSuccess(t, err)

	expected := "PC=0200 A=00 X=00 Y=00 SP=0100 SR=sv-bdizc\n" +
		"0200 LDA #$45 [2 cycles]\n" +
		"PC=0202 A=45 X=00 Y=00 SP=0100 SR=sv-bdizc\n" +
		"0202 JMP $0200 [3 cycles]\n" +
		"PC=0200 A=45 X=00 Y=00 SP=0100 SR=sv-bdizc\n" +
		"5 cycles\n" +
		"PC=0200 A=45 X=00 Y=00 SP=0100 SR=sv-bdizc\n"
	test.ExpectEquality(t, out.String(), expected)
}

func TestStepEndOfInput(t *testing.T) {
	out := &strings.Builder{}

	md := &modalflag.Modes{Output: out}
	md.NewArgs([]string{"ea", "00"})

	// input ends without a quit key
	err := step(out, md, terminal.NewReader(strings.NewReader(" ")))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasSuffix(out.String(), "3 cycles\nPC=fffe A=00 X=00 Y=00 SP=0100 SR=sv-bdizc\n"))
}

func TestLaunchVersion(t *testing.T) {
	out := &strings.Builder{}
	r := launch(out, []string{"version"})
	test.ExpectEquality(t, r, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "Gopher6502 "))
}
