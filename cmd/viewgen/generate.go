package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fenwick/go-view/internal/viewgen"
)

// runGenerate implements the generate subcommand. It scans Go files for
// viewgen directives and writes the corresponding _wrap.go files.
func runGenerate(args []string) error {
	verbose := false
	var paths []string

	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
		} else {
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

	if len(files) == 0 {
		return fmt.Errorf("no Go files found")
	}

	var generated, errorCount int
	for _, inputPath := range files {
		out, ok, err := viewgen.ProcessFile(inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", inputPath, err)
			errorCount++
			continue
		}
		if !ok {
			continue
		}

		outputPath := viewgen.OutputPath(inputPath)
		if verbose {
			fmt.Printf("Processing %s -> %s\n", inputPath, outputPath)
		}
		if err := os.WriteFile(outputPath, out, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", outputPath, err)
			errorCount++
			continue
		}
		generated++
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	if verbose {
		fmt.Printf("Successfully generated %d file(s)\n", generated)
	}

	return nil
}

// collectGoFiles finds Go source files from the given paths. Supports
// direct file paths, directories, and the ./... recursive pattern.
// Test files and viewgen's own output files are skipped.
func collectGoFiles(paths []string) ([]string, error) {
	var files []string

	add := func(p string) {
		if !strings.HasSuffix(p, ".go") {
			return
		}
		if strings.HasSuffix(p, "_test.go") || viewgen.IsGenerated(p) {
			return
		}
		files = append(files, p)
	}

	for _, path := range paths {
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() {
					name := d.Name()
					if p != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
						return filepath.SkipDir
					}
					return nil
				}
				add(p)
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() {
					add(filepath.Join(path, entry.Name()))
				}
			}
			continue
		}

		add(path)
	}

	return files, nil
}
