package compiler

import (
	"fmt"
	"strings"
	"testing"

	errs "github.com/jacoelho/phonemeta/errors"
	"github.com/jacoelho/phonemeta/internal/filter"
	"github.com/jacoelho/phonemeta/internal/xmltree"
)

func parseDocument(t *testing.T, body string) *xmltree.Document {
	t.Helper()
	doc, err := xmltree.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

func noopFilter(t *testing.T) filter.Metadata {
	t.Helper()
	f, err := filter.ForBuildFlags(false, false)
	if err != nil {
		t.Fatalf("ForBuildFlags() error = %v", err)
	}
	return f
}

const threeTerritories = `<phoneNumberMetadata>
  <territories>
    <territory id="GB" countryCode="44" mainCountryForCode="true">
      <generalDesc/>
      <fixedLine><possibleLengths national="10"/></fixedLine>
    </territory>
    <territory id="IM" countryCode="44">
      <generalDesc/>
      <mobile><possibleLengths national="10"/></mobile>
    </territory>
    <territory id="US" countryCode="1">
      <generalDesc/>
      <fixedLine><possibleLengths national="10"/></fixedLine>
    </territory>
  </territories>
</phoneNumberMetadata>`

func TestBuildCollectionPreservesDocumentOrder(t *testing.T) {
	doc := parseDocument(t, threeTerritories)

	collection, err := BuildCollection(doc, Config{}, noopFilter(t))
	if err != nil {
		t.Fatalf("BuildCollection() error = %v", err)
	}
	if len(collection.Territories) != 3 {
		t.Fatalf("territories = %d, want 3", len(collection.Territories))
	}
	for i, want := range []string{"GB", "IM", "US"} {
		if got := collection.Territories[i].ID; got != want {
			t.Fatalf("territory %d = %q, want %q", i, got, want)
		}
	}
}

func TestBuildCollectionIsAllOrNothing(t *testing.T) {
	doc := parseDocument(t, `<phoneNumberMetadata><territories>
  <territory id="GB" countryCode="44"><generalDesc/></territory>
  <territory id="XX" countryCode="99">
    <generalDesc/>
    <mobile><possibleLengths national="[6-7]"/></mobile>
  </territory>
</territories></phoneNumberMetadata>`)

	_, err := BuildCollection(doc, Config{}, noopFilter(t))
	b, ok := errs.AsBuild(err)
	if !ok {
		t.Fatalf("BuildCollection() error = %v, want build error", err)
	}
	if b.Code != errs.ErrMalformedLengthSpec || b.Territory != "XX" {
		t.Fatalf("build error = %v, want malformed-length-spec attributed to XX", b)
	}
}

func TestBuildCollectionParallelMatchesSequential(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<phoneNumberMetadata><territories>")
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&sb, `<territory id="T%02d" countryCode="%d">
  <generalDesc/>
  <fixedLine><possibleLengths national="[7-9]"/></fixedLine>
  <mobile><possibleLengths national="9"/></mobile>
</territory>`, i, 100+i)
	}
	sb.WriteString("</territories></phoneNumberMetadata>")
	doc := parseDocument(t, sb.String())

	sequential, err := BuildCollection(doc, Config{}, noopFilter(t))
	if err != nil {
		t.Fatalf("BuildCollection() error = %v", err)
	}
	parallel, err := BuildCollectionParallel(doc, Config{}, noopFilter(t))
	if err != nil {
		t.Fatalf("BuildCollectionParallel() error = %v", err)
	}

	if len(parallel.Territories) != len(sequential.Territories) {
		t.Fatalf("parallel territories = %d, sequential = %d", len(parallel.Territories), len(sequential.Territories))
	}
	for i := range sequential.Territories {
		want, got := sequential.Territories[i], parallel.Territories[i]
		if got.ID != want.ID || got.CountryCode != want.CountryCode {
			t.Fatalf("territory %d = (%q, %d), want (%q, %d): parallel output must keep document order", i, got.ID, got.CountryCode, want.ID, want.CountryCode)
		}
		if len(got.GeneralDesc.PossibleLengths) != len(want.GeneralDesc.PossibleLengths) {
			t.Fatalf("territory %d general lengths differ between parallel and sequential build", i)
		}
	}
}

func TestBuildCollectionParallelPropagatesFirstError(t *testing.T) {
	doc := parseDocument(t, `<phoneNumberMetadata><territories>
  <territory id="AA" countryCode="1"><generalDesc/></territory>
  <territory id="BB" countryCode="2">
    <generalDesc/>
    <mobile><possibleLengths national=""/></mobile>
  </territory>
</territories></phoneNumberMetadata>`)

	_, err := BuildCollectionParallel(doc, Config{}, noopFilter(t))
	if code := errs.CodeOf(err); code != errs.ErrMalformedLengthSpec {
		t.Fatalf("BuildCollectionParallel() code = %q (err %v), want %q", code, err, errs.ErrMalformedLengthSpec)
	}
}

func TestBuildCollectionEmptyDocument(t *testing.T) {
	doc := parseDocument(t, `<phoneNumberMetadata><territories/></phoneNumberMetadata>`)

	collection, err := BuildCollection(doc, Config{}, noopFilter(t))
	if err != nil {
		t.Fatalf("BuildCollection() error = %v", err)
	}
	if len(collection.Territories) != 0 {
		t.Fatalf("territories = %d, want 0", len(collection.Territories))
	}
}
