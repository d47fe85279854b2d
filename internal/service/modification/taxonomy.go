package modification

import (
	"github.com/ougirez/autocatalog/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	taxonomyBody         = "body type"
	taxonomyTransmission = "transmission"
	taxonomyDrive        = "drive type"
)

// taxonomyIndex is a read-only lowercase name → code lookup built from a TaxonomyTable.
type taxonomyIndex struct {
	kind  string
	codes map[string]string
}

func newTaxonomyIndex(kind string, table domain.TaxonomyTable) taxonomyIndex {
	lower := cases.Lower(language.Und)
	codes := make(map[string]string, len(table))
	for _, item := range table {
		name := lower.String(item.Name)
		if _, ok := codes[name]; !ok {
			codes[name] = item.Code
		}
	}
	return taxonomyIndex{kind: kind, codes: codes}
}

// taxonomyCollector accumulates the distinct entries of one taxonomy during a mapping call.
type taxonomyCollector struct {
	index   taxonomyIndex
	lower   cases.Caser
	seen    map[int64]struct{}
	entries []*domain.TaxonomyEntry
}

func newTaxonomyCollector(index taxonomyIndex) *taxonomyCollector {
	return &taxonomyCollector{
		index:   index,
		lower:   cases.Lower(language.Und),
		seen:    make(map[int64]struct{}),
		entries: make([]*domain.TaxonomyEntry, 0),
	}
}

// resolveTaxonomy looks up the lowercased display name of attr in index.
func resolveTaxonomy(attr attribute, index taxonomyIndex, lower cases.Caser) (*domain.TaxonomyEntry, bool) {
	name := lower.String(attr.name)
	code, ok := index.codes[name]
	if !ok {
		return nil, false
	}
	return &domain.TaxonomyEntry{
		ID:        attr.id,
		Name:      name,
		Code:      code,
		AvitoCode: code,
	}, true
}

// collect resolves attr and records it the first time its id is seen. Later records
// with the same id are ignored even when their name differs. The returned code always
// belongs to attr's own name.
func (c *taxonomyCollector) collect(recordIndex int, attr attribute) (string, error) {
	entry, ok := resolveTaxonomy(attr, c.index, c.lower)
	if !ok {
		return "", &TaxonomyLookupError{
			Taxonomy:    c.index.kind,
			Name:        attr.name,
			AttributeID: attr.id,
			RecordIndex: recordIndex,
		}
	}

	if _, seen := c.seen[attr.id]; !seen {
		c.seen[attr.id] = struct{}{}
		c.entries = append(c.entries, entry)
	}

	return entry.Code, nil
}
