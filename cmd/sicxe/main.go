package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/ezrec/sicxe/emulator"
	"github.com/ezrec/sicxe/memory"
	"github.com/ezrec/sicxe/object"
	"github.com/ezrec/sicxe/trace"
)

func main() {
	var objfile string
	var size int
	var address int
	var output string
	var delay time.Duration
	var limit int
	var until string
	var verbose bool
	var dump string

	flag.StringVar(&objfile, "o", "", "Object program to load")
	flag.IntVar(&size, "m", emulator.MEMORY_SIZE, "Memory size, in bytes")
	flag.IntVar(&address, "a", 0, "Load address (0 for the program's own start)")
	flag.StringVar(&output, "t", "", "Trace output ('-' for stdout)")
	flag.DurationVar(&delay, "d", 0, "Delay between instructions")
	flag.IntVar(&limit, "n", 0, "Maximum instructions to execute (0 for no limit)")
	flag.StringVar(&until, "u", "", "Stop when this watch expression is true")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&dump, "dump", "", "Memory words to print after the run, as 'addr,count'")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	var dumpIndex, dumpCount int
	if len(dump) != 0 {
		var err error
		dumpIndex, dumpCount, err = parseDump(dump)
		if err != nil {
			log.Fatalf("-dump: %v", err)
		}
	}

	if len(objfile) == 0 {
		log.Fatalf("%v: No object program (-o) given", os.Args[0])
	}

	inf, err := os.Open(objfile)
	if err != nil {
		log.Fatalf("%v: %v", objfile, err)
	}
	defer inf.Close()

	parser := &object.Parser{Verbose: verbose}
	prog, err := parser.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", objfile, err)
	}

	emu := emulator.NewEmulator(size)
	emu.Verbose = verbose
	emu.Program = prog
	emu.Address = address

	var sinks trace.Multi
	switch output {
	case "":
	case "-":
		sinks = append(sinks, &trace.Tape{Output: os.Stdout})
	default:
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		sinks = append(sinks, &trace.Tape{Output: ouf})
	}
	if verbose {
		sinks = append(sinks, &trace.Log{Prefix: "trace: "})
	}
	if len(sinks) != 0 {
		emu.Trace = sinks
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", objfile, err)
	}

	var watch *emulator.Watch
	if len(until) != 0 {
		watch, err = emu.NewWatch(until)
		if err != nil {
			log.Fatalf("-u: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reason, err := emu.Run(ctx, delay, limit, watch)

	fmt.Print(emu.Cpu.String())
	fmt.Printf("stop: %v after %d instructions\n", reason, emu.Cpu.Ticks)
	if dumpCount > 0 {
		fmt.Println(emu.Cpu.Memory.Dump(dumpIndex, dumpCount))
	}

	if err != nil {
		log.Fatalf("%v: %v", objfile, err)
	}
}

// parseDump reads an 'addr,count' pair, where addr is a word aligned
// byte address, and returns the word index and count.
func parseDump(text string) (index int, count int, err error) {
	addr, num, ok := strings.Cut(text, ",")
	if !ok {
		num = "1"
	}

	address, err := strconv.ParseInt(addr, 0, 0)
	if err != nil {
		return
	}

	index, err = memory.ToWordAddress(int(address))
	if err != nil {
		return
	}

	words, err := strconv.ParseInt(num, 0, 0)
	if err != nil {
		return
	}

	count = int(words)
	return
}
