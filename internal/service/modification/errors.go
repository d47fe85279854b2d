package modification

import (
	"fmt"
	"github.com/ougirez/autocatalog/internal/pkg/constants"
)

const (
	SourceCatalog = "catalog"
	SourceSaved   = "saved"
)

// TaxonomyLookupError reports a body, transmission or drive name that is absent from
// its taxonomy table. It aborts the whole mapping call.
type TaxonomyLookupError struct {
	Taxonomy    string
	Name        string
	AttributeID int64
	RecordIndex int
}

func (e *TaxonomyLookupError) Error() string {
	return fmt.Sprintf("catalog record %d: %s %q (id %d) is not in the taxonomy table",
		e.RecordIndex, e.Taxonomy, e.Name, e.AttributeID)
}

func (e *TaxonomyLookupError) Unwrap() error {
	return constants.ErrTaxonomyLookup
}

// MalformedRecordError reports an input record whose shape or values cannot be mapped.
type MalformedRecordError struct {
	Source      string
	RecordIndex int
	Field       string
	Reason      string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s record %d: field %s: %s", e.Source, e.RecordIndex, e.Field, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error {
	return constants.ErrMalformedRecord
}
