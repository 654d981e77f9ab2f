package main

import (
	"flag"
	"log"
	"os"

	"github.com/rv32kit/rv32kit/asm"
)

func main() {
	var output string
	var verbose bool

	flag.StringVar(&output, "o", "", "output .mc listing (default: <input>.mc)")
	flag.BoolVar(&verbose, "v", false, "verbose mode")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: usage: rv32as [-o output.mc] input.asm", os.Args[0])
	}
	input := flag.Arg(0)
	if output == "" {
		output = input + ".mc"
	}

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	p := asm.NewParser()
	p.Verbose = verbose

	symbols, instrs, err := p.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	ouf, err := os.Create(output)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
	defer ouf.Close()

	if err := asm.Emit(ouf, symbols, instrs); err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
