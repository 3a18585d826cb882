// Package main provides the viewgen CLI, the boilerplate generator for
// delegating wrapper views.
//
// Usage:
//
//	viewgen generate [path...]    Generate _wrap.go files from directives
//	viewgen check [path...]       Validate directives without generating
//	viewgen help                  Show help
//
// Examples:
//
//	viewgen generate ./...        Recursively process all Go files
//	viewgen generate ./widgets    Process a specific directory
//	viewgen generate dialog.go    Process a specific file
//	viewgen check dialog.go       Validate without generating
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `viewgen - wrapper boilerplate generator for go-view

Usage:
  viewgen <command> [options] [path...]

Commands:
  generate    Generate _wrap.go files from //viewgen: directives
  check       Validate directives without generating code
  version     Print version information
  help        Show this help message

Options:
  -v          Verbose output

Examples:
  viewgen generate ./...          Recursively process all Go files
  viewgen generate ./widgets      Process files in a directory
  viewgen generate dialog.go      Process a specific file
  viewgen generate -v ./...       Verbose output during generation
  viewgen check dialog.go         Validate directives only
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate":
		if err := runGenerate(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := runCheck(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("viewgen version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
