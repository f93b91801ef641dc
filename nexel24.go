// This file is part of Nexel24.
//
// Nexel24 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Nexel24 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Nexel24.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang/glog"
	"golang.org/x/term"

	"github.com/nexel24/nexel24/assembler"
	"github.com/nexel24/nexel24/debugger"
	"github.com/nexel24/nexel24/debugger/terminal/plainterm"
	"github.com/nexel24/nexel24/disassembly"
	"github.com/nexel24/nexel24/hardware"
	"github.com/nexel24/nexel24/hardware/instance"
	"github.com/nexel24/nexel24/hardware/memory/memorymap"
	"github.com/nexel24/nexel24/hardware/preferences"
	"github.com/nexel24/nexel24/logger"
	"github.com/nexel24/nexel24/modalflag"
	"github.com/nexel24/nexel24/performance"
	"github.com/nexel24/nexel24/performance/limiter"
	"github.com/nexel24/nexel24/prefs"
	"github.com/nexel24/nexel24/resources"
	"github.com/nexel24/nexel24/scripting"
	"github.com/nexel24/nexel24/statsview"
	"github.com/nexel24/nexel24/version"
)

func main() {
	// glog registers its flags with the default flag set. the flags are not
	// exposed through modalflag so they are set here
	_ = flag.Set("logtostderr", "true")
	_ = flag.CommandLine.Parse(nil)
	defer glog.Flush()

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG", "SCRIPT", "ASM", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	case "SCRIPT":
		err = script(md)
	case "ASM":
		err = asm(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		glog.Errorf("error in %s mode: %v", md, err)
		glog.Flush()
		os.Exit(20)
	}
}

// glogWriter sends each line of the central log to glog.
type glogWriter struct{}

func (glogWriter) Write(p []byte) (int, error) {
	glog.Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// options common to the modes that create a console.
type consoleOptions struct {
	bios  *string
	prefs *string
	log   *bool
}

func addConsoleOptions(md *modalflag.Modes) consoleOptions {
	return consoleOptions{
		bios:  md.AddString("bios", "", "BIOS image"),
		prefs: md.AddString("prefs", "", "preferences overrides (eg. \"emulation.cyclesPerFrame::1000\")"),
		log:   md.AddBool("log", false, "echo the emulation log through glog"),
	}
}

// newConsole creates a console according to the options and loads the image.
// The image can be a binary file or assembly source, which is identified by
// the .s or .asm extension. The labels of assembly source are returned.
func newConsole(label instance.Label, opts consoleOptions, image string) (*hardware.Console, map[string]uint32, error) {
	if *opts.log {
		logger.SetEcho(glogWriter{})
	}

	if *opts.prefs != "" {
		prefs.PushCommandLineStack(*opts.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				glog.Warningf("unused preferences: %s", unused)
			}
		}()
	}

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, nil, err
	}
	p, err := preferences.NewPreferences(pth)
	if err != nil {
		return nil, nil, err
	}

	ins, err := instance.NewInstance(label, p)
	if err != nil {
		return nil, nil, err
	}

	con, err := hardware.NewConsole(ins)
	if err != nil {
		return nil, nil, err
	}

	if *opts.bios != "" {
		data, err := os.ReadFile(*opts.bios)
		if err != nil {
			return nil, nil, err
		}
		if err := con.Load(memorymap.BIOS, data); err != nil {
			return nil, nil, err
		}
	}

	var labels map[string]uint32

	if image != "" {
		data, err := os.ReadFile(image)
		if err != nil {
			return nil, nil, err
		}

		switch strings.ToLower(filepath.Ext(image)) {
		case ".s", ".asm":
			prg, err := assembler.Assemble(string(data), memorymap.OriginCartROM)
			if err != nil {
				return nil, nil, err
			}
			data = prg.Bytes
			labels = prg.Labels
		}

		if err := con.Load(memorymap.CartROM, data); err != nil {
			return nil, nil, err
		}
	}

	con.Reset()
	glog.Infof("%s", con)

	return con, labels, nil
}

func singleImage(md *modalflag.Modes, required bool) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		if required {
			return "", fmt.Errorf("%s requires a file", md)
		}
		return "", nil
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	opts := addConsoleOptions(md)
	frames := md.AddInt("frames", 0, "number of frames to run. zero runs until the CPU halts")
	fpsCap := md.AddBool("fpscap", true, "limit the frame rate to the emulation.frameRate preference")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	image, err := singleImage(md, true)
	if err != nil {
		return err
	}

	if *stats {
		srv := statsview.Launch(os.Stdout, statsview.Address)
		defer srv.Stop()
	}

	con, _, err := newConsole(instance.Main, opts, image)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var lim *limiter.Limiter
	if *fpsCap {
		rate := con.Instance.Prefs.FrameRate.Get().(int)
		if rate <= 0 {
			rate = hardware.TargetFPS
		}
		lim = limiter.NewLimiter(rate)
		defer lim.Stop()
	}

	start := time.Now()

	err = con.Run(ctx, func() (bool, error) {
		if *frames > 0 && con.Stats().FrameCount >= uint64(*frames) {
			return false, nil
		}
		if lim != nil {
			if err := lim.Wait(ctx); err != nil {
				return false, nil
			}
		}
		return true, nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	s := con.Stats()
	fmt.Println(s)
	glog.Infof("%d frames in %s", s.FrameCount, time.Since(start).Round(time.Millisecond))

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()
	opts := addConsoleOptions(md)
	initScript := md.AddString("script", "", "lua script to run before the debugger starts")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	image, err := singleImage(md, false)
	if err != nil {
		return err
	}

	con, labels, err := newConsole(instance.Main, opts, image)
	if err != nil {
		return err
	}

	if *initScript != "" {
		scr := scripting.NewScript(con, os.Stdout)
		err := scr.RunFile(context.Background(), *initScript)
		scr.Close()
		if err != nil {
			return err
		}
	}

	trm := plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
	dbg := debugger.NewDebugger(con, trm)
	dbg.AddLabels(labels)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Printf("%s debugger. type HELP for a list of commands\n", version.ApplicationName)
	}

	return dbg.Start(context.Background())
}

func script(md *modalflag.Modes) error {
	md.NewMode()
	opts := addConsoleOptions(md)
	image := md.AddString("image", "", "image to load before the script runs")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	file, err := singleImage(md, true)
	if err != nil {
		return err
	}

	con, _, err := newConsole(instance.Script, opts, *image)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scr := scripting.NewScript(con, os.Stdout)
	defer scr.Close()

	return scr.RunFile(ctx, file)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	opts := addConsoleOptions(md)
	duration := md.AddDuration("duration", 5*time.Second, "length of the measurement")
	profile := md.AddString("profile", "none", "profiles to write: CPU, MEM, TRACE (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	image, err := singleImage(md, true)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	con, _, err := newConsole(instance.Main, opts, image)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return performance.Check(ctx, md.Output, con, prf, *duration)
}

func asm(md *modalflag.Modes) error {
	md.NewMode()
	origin := md.AddUint("origin", uint(memorymap.OriginCartROM), "address of the first byte of the program")
	output := md.AddString("o", "", "output file. a listing is printed if no file is given")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	file, err := singleImage(md, true)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	prg, err := assembler.Assemble(string(src), uint32(*origin))
	if err != nil {
		return err
	}

	if *output != "" {
		return os.WriteFile(*output, prg.Bytes, 0o644)
	}

	fmt.Println(prg)
	return listing(os.Stdout, prg.Origin, prg.Bytes, prg.Labels)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()
	origin := md.AddUint("origin", uint(memorymap.OriginCartROM), "address of the first byte of the image")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	file, err := singleImage(md, true)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	return listing(md.Output, uint32(*origin), data, nil)
}

// listing writes the disassembly of the data as though it was in memory at
// the origin.
func listing(w io.Writer, origin uint32, data []uint8, labels map[string]uint32) error {
	con, err := hardware.NewConsole(nil)
	if err != nil {
		return err
	}

	_, area := memorymap.MapAddress(origin)
	if area == memorymap.Undefined {
		return fmt.Errorf("origin %06x is not in a memory area", origin)
	}
	for i, b := range data {
		con.Mem.Poke(origin+uint32(i), b)
	}

	count := 0
	for a := origin; a < origin+uint32(len(data)); count++ {
		a = disassembly.Disassemble(con.Mem, a).Next()
	}

	return disassembly.Write(w, con.Mem, origin, count, labels)
}
