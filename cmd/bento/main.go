// Package main provides the bento snapshot tool.
//
// Usage:
//
//	bento snapshot [options] <scene>   Render a built-in scene to PNG
//	bento scenes                       List built-in scenes
//	bento version                      Print version information
//	bento help                         Show help
//
// Examples:
//
//	bento snapshot layout              Render the layout scene to layout.png
//	bento snapshot -o /tmp/x.png hello Render hello to a chosen path
//	bento snapshot -frames 10 buttons  Run ten frames before the snapshot
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `bento - headless renderer for bento scenes

Usage:
  bento <command> [options] [args]

Commands:
  snapshot    Render a built-in scene to a PNG file
  scenes      List the built-in scenes
  version     Print version information
  help        Show this help message

Snapshot options:
  -o path        Output file (default: <scene>.png)
  -config path   TOML settings file for window size, background, fonts
  -frames n      Frames to run before capturing (default 1)

Examples:
  bento snapshot hello               Render the hello scene
  bento snapshot -o out.png layout   Render layout to out.png
  bento snapshot -config app.toml overflow
  bento scenes
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "snapshot":
		if err := runSnapshot(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "scenes":
		runScenes()
	case "version":
		fmt.Printf("bento version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
