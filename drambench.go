// This file is part of drambench.
//
// drambench is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// drambench is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with drambench.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hexbench/drambench/chime"
	"github.com/hexbench/drambench/diagnostics"
	"github.com/hexbench/drambench/gui/sdllamp"
	"github.com/hexbench/drambench/hardware/dram"
	"github.com/hexbench/drambench/hardware/fixture"
	"github.com/hexbench/drambench/hardware/pins"
	"github.com/hexbench/drambench/hardware/simulated"
	"github.com/hexbench/drambench/indicator"
	"github.com/hexbench/drambench/indicator/ansilamp"
	"github.com/hexbench/drambench/logger"
	"github.com/hexbench/drambench/modalflag"
	"github.com/hexbench/drambench/reporter"
	"github.com/hexbench/drambench/statsview"
	"github.com/hexbench/drambench/suite"
	"github.com/hexbench/drambench/terminal"
	"github.com/hexbench/drambench/version"
)

// exit codes. a faulted device is not a program error but the result must
// be visible to scripts wrapping the bench.
const (
	exitPass  = 0
	exitError = 10
	exitFault = 2
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "SIM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(exitPass)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(exitError)
	}

	var out *suite.Outcome

	switch md.Mode() {
	case "RUN":
		out, err = run(md)

	case "SIM":
		out, err = sim(md)

	case "VERSION":
		fmt.Println(version.Version)
		os.Exit(exitPass)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		os.Exit(exitError)
	}

	if out != nil && !out.Passed {
		os.Exit(exitFault)
	}
}

// benchFlags are the flags common to the RUN and SIM modes.
type benchFlags struct {
	runs      *int
	maxPause  *time.Duration
	bits      *int
	dot       *int
	lamp      *bool
	chimeFile *string
	faultDump *string
	log       *bool
	stats     *bool
}

func addBenchFlags(md *modalflag.Modes) benchFlags {
	return benchFlags{
		runs:      md.AddInt("runs", 3, "number of runs of the pattern sequence"),
		maxPause:  md.AddDuration("maxpause", 50*time.Millisecond, "soak pause at the final column"),
		bits:      md.AddInt("bits", dram.DefaultAddressBits, "row/column address width of the device"),
		dot:       md.AddInt("dot", 8, "progress dot every n columns (0 to disable)"),
		lamp:      md.AddBool("lamp", false, "show the indicator lamp in an SDL window"),
		chimeFile: md.AddString("chime", "", "write pass/fault chime to wav file"),
		faultDump: md.AddString("faultdump", "", "write outcome graph to dot file on fault"),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
		stats:     md.AddBool("stats", false, "run stats server (requires the statsview build tag)"),
	}
}

func (bf benchFlags) config() suite.Config {
	return suite.Config{
		Runs:            *bf.runs,
		MaxSoakPause:    *bf.maxPause,
		AddressBits:     *bf.bits,
		DotEveryColumns: *bf.dot,
	}
}

// multiIndicator fans an indicator signal out to several renderings.
type multiIndicator []indicator.Indicator

func (m multiIndicator) Idle() {
	for _, ind := range m {
		ind.Idle()
	}
}

func (m multiIndicator) Running() {
	for _, ind := range m {
		ind.Running()
	}
}

func (m multiIndicator) PulseProgress() {
	for _, ind := range m {
		ind.PulseProgress()
	}
}

func (m multiIndicator) Pass() {
	for _, ind := range m {
		ind.Pass()
	}
}

func (m multiIndicator) Fault() {
	for _, ind := range m {
		ind.Fault()
	}
}

// bench assembles the collaborators around a suite, runs it and applies
// the artifact side effects. common to the RUN and SIM modes.
func bench(bf benchFlags, bus pins.Bus, armed bool) (*suite.Outcome, error) {
	if *bf.log {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	} else {
		logger.SetEcho(nil)
	}

	if *bf.stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* stats server not compiled in. rebuild with the statsview build tag")
		}
	}

	cfg := bf.config()
	drv := dram.NewDriver(bus, cfg.Geometry())
	obs := reporter.NewReporter(os.Stdout, true)

	inds := multiIndicator{ansilamp.NewLamp(os.Stdout)}

	var lamp *sdllamp.Lamp
	if *bf.lamp {
		var err error
		lamp, err = sdllamp.NewLamp()
		if err != nil {
			return nil, err
		}
		defer lamp.Destroy()
		inds = append(inds, lamp)
	}

	inds.Idle()

	if armed {
		err := terminal.WaitAnyKey(os.Stdout, "seat the device and press any key to begin... ")
		if err != nil {
			// the prompt requires an interactive terminal. without one the
			// suite starts immediately
			logger.Logf("bench", "arming prompt skipped: %v", err)
		}
	}

	s := suite.NewSuite(drv, cfg, obs, inds, nil)

	var out suite.Outcome

	if lamp == nil {
		out = s.RunSuite()
	} else {
		// SDL window handling must stay on the main thread. the suite
		// runs on its own goroutine while the lamp is serviced here
		done := make(chan suite.Outcome)
		go func() {
			done <- s.RunSuite()
		}()

		running := true
		for running {
			select {
			case out = <-done:
				running = false
			default:
				if !lamp.Service() {
					// window closed. the suite itself is not cancellable;
					// keep draining until it finishes
					<-done
					return nil, fmt.Errorf("lamp window closed during suite")
				}
				time.Sleep(20 * time.Millisecond)
			}
		}

		// leave the terminal state on screen for a moment
		for i := 0; i < 50; i++ {
			if !lamp.Service() {
				break // for loop
			}
			time.Sleep(20 * time.Millisecond)
		}
	}

	if *bf.chimeFile != "" {
		samples := chime.PassChime()
		if !out.Passed {
			samples = chime.FaultChime()
		}
		if err := chime.Write(*bf.chimeFile, samples); err != nil {
			return nil, err
		}
	}

	if *bf.faultDump != "" && !out.Passed {
		if err := diagnostics.DumpFault(*bf.faultDump, &out); err != nil {
			return nil, err
		}
	}

	return &out, nil
}

// run mode: drive a real device through the fixture header.
func run(md *modalflag.Modes) (*suite.Outcome, error) {
	md.NewMode()
	bf := addBenchFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return nil, err
	}

	bus, err := fixture.NewBus(fixture.ReferencePinout)
	if err != nil {
		return nil, err
	}

	return bench(bf, bus, true)
}

// sim mode: drive the simulated device. a self-check of the fixture
// logic, with an optional injected fault.
func sim(md *modalflag.Modes) (*suite.Outcome, error) {
	md.NewMode()
	bf := addBenchFlags(md)
	fault := md.AddString("fault", "", "stick a cell: row,col,bit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return nil, err
	}

	dev := simulated.NewDevice(dram.Geometry{AddressBits: *bf.bits})

	if *fault != "" {
		var row, col, bit int
		if _, err := fmt.Sscanf(*fault, "%d,%d,%d", &row, &col, &bit); err != nil {
			return nil, fmt.Errorf("cannot parse fault %q: %v", *fault, err)
		}
		dev.StickAt(uint8(row), uint8(col), pins.Bit(bit&1))
	}

	return bench(bf, dev, false)
}
