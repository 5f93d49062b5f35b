// Command planc compiles a numbering-plan XML document and reports the
// result, exercising the same all-or-nothing build the library performs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jacoelho/phonemeta"
	planerrors "github.com/jacoelho/phonemeta/errors"
	"github.com/jacoelho/phonemeta/metadata"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("planc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	liteBuild := fs.Bool("lite", false, "strip example numbers from the compiled table")
	specialBuild := fs.Bool("special", false, "keep only the fields mobile classification needs")
	shortNumber := fs.Bool("short-number", false, "compile as short-number metadata")
	alternateFormats := fs.Bool("alternate-formats", false, "compile as alternate-formats metadata")
	parallel := fs.Bool("parallel", false, "compile territory records concurrently")
	printCodes := fs.Bool("country-codes", false, "print the country-code to region index")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s [flags] <numbering-plan.xml>\n\n", os.Args[0]),
			writeln(stderr, "Compiles a numbering-plan document into a validated metadata table."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		if err := writeln(stderr, "error: exactly one XML file argument is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}
	planPath := remaining[0]

	collection, err := phonemeta.CompileFile(planPath, phonemeta.Options{
		LiteBuild:        *liteBuild,
		SpecialBuild:     *specialBuild,
		ShortNumber:      *shortNumber,
		AlternateFormats: *alternateFormats,
		Parallel:         *parallel,
	})
	if err != nil {
		if b, ok := planerrors.AsBuild(err); ok {
			if writeErr := writeln(stderr, b.Error()); writeErr != nil {
				return 1
			}
		} else if writeErr := writef(stderr, "error compiling: %v\n", err); writeErr != nil {
			return 1
		}
		if writeErr := writef(stderr, "%s fails to compile\n", planPath); writeErr != nil {
			return 1
		}
		return 1
	}

	if err := writef(stdout, "%s compiles: %d territories\n", planPath, len(collection.Territories)); err != nil {
		return 1
	}

	if *printCodes {
		index := metadata.CountryCodeToRegionMap(collection)
		codes := make([]int, 0, len(index))
		for code := range index {
			codes = append(codes, code)
		}
		sort.Ints(codes)
		for _, code := range codes {
			if err := writef(stdout, "%d: %v\n", code, index[code]); err != nil {
				return 1
			}
		}
	}
	return 0
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
