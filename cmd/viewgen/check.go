package main

import (
	"fmt"
	"os"

	"github.com/fenwick/go-view/internal/viewgen"
)

// runCheck implements the check subcommand. It validates directives
// without writing any files.
func runCheck(args []string) error {
	var paths []string
	for _, arg := range args {
		if arg != "-v" && arg != "--verbose" {
			paths = append(paths, arg)
		}
	}
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectGoFiles(paths)
	if err != nil {
		return err
	}

	var errorCount int
	for _, path := range files {
		if err := viewgen.CheckFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	return nil
}
