// coltool is a CLI utility for inspecting and rendering collision models
// without a window.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(args)
	case "render":
		err = cmdRender(args)
	case "demo":
		err = cmdDemo(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`coltool - collision model utility

Usage:
  coltool <command> [options]

Commands:
  info <model.yaml>                 Show primitive counts, bounds and skipped primitives
  render [options] -out frame.png   Render a model to PNG with the software rasterizer
  demo [output.yaml]                Write the built-in demo model as YAML

Examples:
  coltool info crate.yaml
  coltool render -model crate.yaml -out crate.png -ry 30 -fit
  coltool render -demo -out demo.png -wireframe=false -shadow
  coltool demo demo.yaml`)
}
