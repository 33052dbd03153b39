// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gopheradvance/gopheradvance/disassembly"
	"github.com/gopheradvance/gopheradvance/inspector"
	"github.com/gopheradvance/gopheradvance/inspector/terminal"
	"github.com/gopheradvance/gopheradvance/inspector/terminal/colorterm"
	"github.com/gopheradvance/gopheradvance/inspector/terminal/plainterm"
	"github.com/gopheradvance/gopheradvance/logger"
	"github.com/gopheradvance/gopheradvance/modalflag"
	"github.com/gopheradvance/gopheradvance/performance"
	"github.com/gopheradvance/gopheradvance/statsview"
	"github.com/gopheradvance/gopheradvance/version"
)

// the address the GBA maps ROM to. used as the default listing origin.
const romOrigin = "08000000"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("DISASM", "INSPECT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "DISASM":
		err = disasm(md)

	case "INSPECT":
		err = inspect(md)

	case "VERSION":
		vrsn, revision, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, vrsn)
		if !release {
			fmt.Printf("  %s\n", revision)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddString("origin", romOrigin, "listing address of the first word")
	useJSON := md.AddBool("json", false, "write the disassembly as JSON")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	originAddr, err := disassembly.ParseWord(*origin)
	if err != nil {
		return err
	}

	var dsm *disassembly.Disassembly

	args := md.RemainingArgs()
	switch len(args) {
	case 0:
		return fmt.Errorf("binary file or instruction words required for %s mode", md)

	case 1:
		// a single argument that names a file on disk is disassembled as a
		// binary file. anything else is treated as an instruction word
		if _, serr := os.Stat(args[0]); serr == nil {
			dsm, err = disassembly.FromFile(originAddr, args[0])
			if err != nil {
				return err
			}
		}
	}

	if dsm == nil {
		words := make([]uint32, 0, len(args))
		for _, a := range args {
			w, err := disassembly.ParseWord(a)
			if err != nil {
				return err
			}
			words = append(words, w)
		}
		dsm = disassembly.FromWords(originAddr, words)
	}

	if *useJSON {
		return dsm.WriteJSON(os.Stdout)
	}

	return dsm.Write(os.Stdout)
}

func inspect(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in inspect mode: COLOR, PLAIN")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run the statsview server (%s)", statsview.Address))
	log := md.AddBool("log", false, "echo debugging log to stdout")
	profile := md.AddBool("profile", false, "run inspector through cpu profiler")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stderr)
		} else {
			fmt.Println("! statsview not included in this build")
		}
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	insp, err := inspector.NewInspector(term)
	if err != nil {
		return err
	}

	if *profile {
		err := performance.ProfileCPU("inspector.cpu.profile", insp.Run)
		if err != nil {
			return err
		}
		return performance.ProfileMem("inspector.mem.profile")
	}

	return insp.Run()
}
