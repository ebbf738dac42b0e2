package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
)

const (
	exitOK = iota
	exitErr
)

var (
	draw    = flag.Bool("draw", false, "draw the board after every move")
	noColor = flag.Bool("nocolor", false, "disable colored output")
)

func main() {
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	return replay(os.Stdout, strings.Fields(strings.Join(args, " ")), *draw)
}
