package compiler

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jacoelho/phonemeta/internal/filter"
	"github.com/jacoelho/phonemeta/internal/plannames"
	"github.com/jacoelho/phonemeta/internal/xmltree"
	"github.com/jacoelho/phonemeta/metadata"
)

// BuildCollection compiles every territory record in the document, in
// document order, applying f to each resolved value before it joins the
// collection. The build is all-or-nothing: the first failing territory
// rejects the whole document.
func BuildCollection(doc *xmltree.Document, cfg Config, f filter.Metadata) (*metadata.Collection, error) {
	territories := territoryRecords(doc)
	out := &metadata.Collection{Territories: make([]*metadata.TerritoryMetadata, 0, len(territories))}
	for _, territory := range territories {
		meta, err := CompileTerritory(doc, territory, cfg)
		if err != nil {
			return nil, err
		}
		f.Filter(meta)
		out.Territories = append(out.Territories, meta)
	}
	return out, nil
}

// BuildCollectionParallel compiles territory records concurrently. Records
// are independent and the document is never mutated, so the only ordering
// requirement is on output: results are reassembled by input index, not
// completion order.
func BuildCollectionParallel(doc *xmltree.Document, cfg Config, f filter.Metadata) (*metadata.Collection, error) {
	territories := territoryRecords(doc)
	results := make([]*metadata.TerritoryMetadata, len(territories))

	var g errgroup.Group
	for i, territory := range territories {
		i, territory := i, territory
		g.Go(func() error {
			meta, err := CompileTerritory(doc, territory, cfg)
			if err != nil {
				return err
			}
			f.Filter(meta)
			results[i] = meta
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &metadata.Collection{Territories: results}, nil
}

func territoryRecords(doc *xmltree.Document) []xmltree.NodeID {
	root := doc.Root()
	if root == xmltree.InvalidNode {
		return nil
	}
	return doc.DescendantsByName(root, plannames.Territory)
}

// Validate checks structural expectations the per-territory passes assume:
// a parsed document with a root element.
func Validate(doc *xmltree.Document) error {
	if doc == nil || doc.Root() == xmltree.InvalidNode {
		return fmt.Errorf("no document to compile")
	}
	return nil
}
