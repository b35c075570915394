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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher6502/hardware"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/modalflag"
	"github.com/jetsetilly/gopher6502/prefs"
	"github.com/jetsetilly/gopher6502/statsview"
	"github.com/jetsetilly/gopher6502/terminal"
	"github.com/jetsetilly/gopher6502/version"
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. returns the value
// to use with os.Exit().
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "STEP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(output, md)
	case "STEP":
		err = step(output, md, nil)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// options common to all modes.
type options struct {
	origin   *uint16
	poke     *string
	prefs    *string
	log      *bool
	memviz   *string
	dumpFrom *uint16
	dumpTo   *uint16
}

func addOptions(md *modalflag.Modes) *options {
	return &options{
		origin:   md.AddAddress("origin", 0xfffc, "address of first program byte. the PC is set to this address"),
		poke:     md.AddString("poke", "", "additional memory values. for example: \"0042=45,0043=00\""),
		prefs:    md.AddString("prefs", "", "preferences for this session. for example: \"cpu.trace::true\""),
		log:      md.AddBool("log", false, "echo log to output"),
		memviz:   md.AddString("memviz", "", "write graphviz DOT of the CPU to file on completion"),
		dumpFrom: md.AddAddress("dumpfrom", 0x0000, "first address of memory dump"),
		dumpTo:   md.AddAddress("dumpto", 0x0000, "last address of memory dump. no dump if less than dumpfrom"),
	}
}

// setup creates a new machine with the program and additional memory values
// specified on the command line.
func setup(output io.Writer, md *modalflag.Modes, opts *options) (*hardware.Machine, error) {
	if *opts.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	program, err := parseProgram(md.RemainingArgs())
	if err != nil {
		return nil, err
	}
	if len(program) == 0 {
		return nil, fmt.Errorf("program required for %s mode", md)
	}

	pokes, err := parsePokes(*opts.poke)
	if err != nil {
		return nil, err
	}

	prefs.PushCommandLineStack(*opts.prefs)
	m, err := hardware.NewMachine()
	unused := prefs.PopCommandLineStack()
	if err != nil {
		return nil, err
	}
	if unused != "" {
		logger.Logf(logger.Allow, "gopher6502", "unused preferences: %s", unused)
	}

	for _, p := range pokes {
		err = m.Mem.WriteByte(uint32(p.address), p.value)
		if err != nil {
			return nil, err
		}
	}

	err = m.Load(*opts.origin, program...)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// finish prints the machine state and writes any requested output files.
func finish(output io.Writer, m *hardware.Machine, opts *options) error {
	fmt.Fprintln(output, m)

	if *opts.dumpTo >= *opts.dumpFrom && (*opts.dumpTo != 0 || *opts.dumpFrom != 0) {
		err := m.Mem.Dump(output, *opts.dumpFrom, *opts.dumpTo)
		if err != nil {
			return err
		}
		fmt.Fprintln(output)
	}

	if *opts.memviz != "" {
		f, err := os.Create(*opts.memviz)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, m.CPU)
		fmt.Fprintf(output, "CPU graph written to %s\n", *opts.memviz)
	}

	return nil
}

func run(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	budget := md.AddInt("budget", 10, "number of cycles to execute. the last instruction always completes")
	stats := md.AddBool("statsview", false, "run stats server (statsview build only)")
	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := setup(output, md, opts)
	if err != nil {
		return err
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(output, "")
		} else {
			logger.Log(logger.Allow, "gopher6502", "statsview not available in this build")
		}
	}

	cycles, err := m.Run(*budget)
	fmt.Fprintf(output, "%d cycles\n", cycles)
	if err != nil {
		return err
	}

	return finish(output, m, opts)
}

// step mode executes one instruction for every key press. the keys argument
// can be nil, in which case the controlling terminal is used.
func step(output io.Writer, md *modalflag.Modes, keys terminal.KeyReader) error {
	md.NewMode()
	md.AdditionalHelp("press any key to execute the next instruction. press q to quit")

	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := setup(output, md, opts)
	if err != nil {
		return err
	}

	if keys == nil {
		term, err := terminal.Open("")
		if err != nil {
			return err
		}
		defer term.CleanUp()
		keys = term
	}

	var cycles int
	cycleCallback := func() error {
		cycles++
		return nil
	}

	fmt.Fprintln(output, m)

	for {
		k, err := keys.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break // for loop
			}
			return err
		}

		if strings.ToLower(string(k)) == "q" {
			break // for loop
		}

		r, err := m.Step(cycleCallback)
		fmt.Fprintln(output, r)
		if err != nil {
			return err
		}
		fmt.Fprintln(output, m)
	}

	fmt.Fprintf(output, "%d cycles\n", cycles)

	return finish(output, m, opts)
}
