package main

import (
	"flag"
	"log"
	"os"

	"github.com/rv32kit/rv32kit/asm"
	"github.com/rv32kit/rv32kit/vm"
)

func main() {
	var verbose bool

	flag.BoolVar(&verbose, "v", false, "verbose mode")
	flag.Parse()

	if flag.NArg() != 2 {
		log.Fatalf("%v: usage: rv32run [-v] input.asm output.mc", os.Args[0])
	}
	source, listing := flag.Arg(0), flag.Arg(1)

	srcf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}
	defer srcf.Close()

	symbols, _, err := asm.NewParser().Parse(srcf)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	mcf, err := os.Open(listing)
	if err != nil {
		log.Fatalf("%v: %v", listing, err)
	}
	defer mcf.Close()

	m := vm.NewMachine()
	m.Verbose = verbose
	if err := vm.Load(m, mcf, symbols); err != nil {
		log.Fatalf("%v: %v", listing, err)
	}

	status, err := m.Run()
	if err != nil {
		log.Fatal(err)
	}

	if status == vm.StatusHalt {
		dumpTo(m, "data_memory_dump.mc")
	}
	dumpTo(m, "final_memory_dump.mc")
}

func dumpTo(m *vm.Machine, name string) {
	f, err := os.Create(name)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}
	defer f.Close()

	if err := m.Mem.Dump(f); err != nil {
		log.Fatalf("%v: %v", name, err)
	}
}
