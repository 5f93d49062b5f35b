// Package phonemeta compiles declarative numbering-plan documents (one
// territory record per region) into a normalized, validated in-memory
// metadata table. Every regular expression the table carries compiled
// successfully at build time, and every possible-length set honors the
// subset and disjointness invariants of the plan vocabulary.
package phonemeta

import (
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/phonemeta/internal/compiler"
	"github.com/jacoelho/phonemeta/internal/filter"
	"github.com/jacoelho/phonemeta/internal/xmltree"
	"github.com/jacoelho/phonemeta/metadata"
)

// Options configures a metadata build.
type Options struct {
	// LiteBuild strips example numbers from the compiled table. Mutually
	// exclusive with SpecialBuild.
	LiteBuild bool
	// SpecialBuild reduces the table to the fields mobile classification
	// needs. Mutually exclusive with LiteBuild.
	SpecialBuild bool
	// ShortNumber marks the input as short-number metadata: the general
	// descriptor derives from shortCode and the short-number type set is
	// resolved.
	ShortNumber bool
	// AlternateFormats marks the input as alternate-formats metadata, which
	// carries formatting rules only; descriptor resolution is skipped.
	AlternateFormats bool
	// Parallel compiles territory records concurrently. Output order is the
	// document order either way.
	Parallel bool
}

// Compile builds the metadata table from a numbering-plan document. The
// build is all-or-nothing: the first validation failure rejects the whole
// document and no partial table is returned.
func Compile(r io.Reader, opts Options) (*metadata.Collection, error) {
	if r == nil {
		return nil, fmt.Errorf("compile metadata: nil reader")
	}
	doc, err := xmltree.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("compile metadata: %w", err)
	}
	return compileDocument(doc, opts)
}

// CompileFile builds the metadata table from a numbering-plan XML file.
func CompileFile(path string, opts Options) (*metadata.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open metadata file %s: %w", path, err)
	}
	defer f.Close()

	collection, err := Compile(f, opts)
	if err != nil {
		return nil, fmt.Errorf("compile metadata %s: %w", path, err)
	}
	return collection, nil
}

// compileDocument builds the metadata table from an already-parsed document.
func compileDocument(doc *xmltree.Document, opts Options) (*metadata.Collection, error) {
	if err := compiler.Validate(doc); err != nil {
		return nil, err
	}
	f, err := filter.ForBuildFlags(opts.LiteBuild, opts.SpecialBuild)
	if err != nil {
		return nil, err
	}
	cfg := compiler.Config{
		ShortNumber:      opts.ShortNumber,
		AlternateFormats: opts.AlternateFormats,
	}
	if opts.Parallel {
		return compiler.BuildCollectionParallel(doc, cfg, f)
	}
	return compiler.BuildCollection(doc, cfg, f)
}
