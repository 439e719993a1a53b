package main

import (
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/i0nbeam/LC-3/emulator"
	"github.com/i0nbeam/LC-3/io"
)

func main() {
	var entry string
	var pipe bool
	var verbose bool

	flag.StringVar(&entry, "pc", "PC_START", "Entry address expression")
	flag.BoolVar(&pipe, "p", false, "Plain stdin/stdout, no terminal raw mode")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() == 0 {
		log.Printf("usage: %v [options] image-file ...", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	for _, path := range flag.Args() {
		if err := emu.LoadFile(path); err != nil {
			log.Fatalf("%v: %v", path, err)
		}
	}

	address, err := emu.EvalAddress(entry)
	if err != nil {
		log.Fatalf("%v: %v", entry, err)
	}
	emu.Entry = address

	var term *io.Terminal
	if pipe {
		emu.Tape.Input = os.Stdin
		emu.Tape.Output = os.Stdout
	} else {
		term = io.NewTerminal()
		if err := term.Open(); err != nil {
			log.Fatalf("terminal: %v", err)
		}

		interrupted := make(chan os.Signal, 1)
		signal.Notify(interrupted, os.Interrupt)
		go func() {
			<-interrupted
			term.Restore()
			os.Stdout.WriteString("\n")
			os.Exit(2)
		}()

		emu.SetConsole(term)
	}

	err = emu.Reset()
	if err == nil {
		err = emu.Run()
	}

	if term != nil {
		term.Restore()
	}
	if err != nil {
		log.Fatal(err)
	}
}
