package modification

import (
	"fmt"
	"github.com/ougirez/autocatalog/internal/domain/dto"
	"github.com/shopspring/decimal"
	"strconv"
	"strings"
)

type attribute struct {
	id   int64
	name string
}

// recordReader extracts values from one feed record. The first failure sticks and
// every later call becomes a no-op returning zero values.
type recordReader struct {
	source string
	index  int
	err    error
}

func (r *recordReader) fail(field, format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	r.err = &MalformedRecordError{
		Source:      r.source,
		RecordIndex: r.index,
		Field:       field,
		Reason:      fmt.Sprintf(format, args...),
	}
}

func (r *recordReader) single(field string, refs []dto.AttributeRef) (dto.AttributeRef, bool) {
	if r.err != nil {
		return dto.AttributeRef{}, false
	}
	if len(refs) != 1 {
		r.fail(field, "expected a single-element wrapper, got %d elements", len(refs))
		return dto.AttributeRef{}, false
	}
	return refs[0], true
}

func (r *recordReader) attribute(field string, refs []dto.AttributeRef) attribute {
	if refs == nil {
		r.fail(field, "missing")
		return attribute{}
	}
	ref, ok := r.single(field, refs)
	if !ok {
		return attribute{}
	}
	if len(ref.ID) != 1 {
		r.fail(field, "expected a single id, got %d", len(ref.ID))
		return attribute{}
	}

	id, err := strconv.ParseInt(strings.TrimSpace(ref.ID[0]), 10, 64)
	if err != nil {
		r.fail(field, "id %q is not an integer", ref.ID[0])
		return attribute{}
	}

	return attribute{id: id, name: ref.Text}
}

// optionalInt reads an integer leaf; absent or blank values are 0.
func (r *recordReader) optionalInt(field string, refs []dto.AttributeRef) int {
	if refs == nil {
		return 0
	}
	ref, ok := r.single(field, refs)
	if !ok {
		return 0
	}
	text := strings.TrimSpace(ref.Text)
	if text == "" {
		return 0
	}

	d, err := decimal.NewFromString(text)
	if err != nil || !d.IsInteger() {
		r.fail(field, "%q is not an integer", ref.Text)
		return 0
	}
	n, err := strconv.ParseInt(d.String(), 10, strconv.IntSize)
	if err != nil {
		r.fail(field, "%q is out of range", ref.Text)
		return 0
	}
	return int(n)
}

// optionalCapacity reads the engine size fixed to one decimal place; absent is "0".
func (r *recordReader) optionalCapacity(field string, refs []dto.AttributeRef) string {
	if refs == nil {
		return "0"
	}
	ref, ok := r.single(field, refs)
	if !ok {
		return "0"
	}
	if strings.TrimSpace(ref.Text) == "" {
		return "0"
	}

	capacity, err := normalizeCapacity(ref.Text)
	if err != nil {
		r.fail(field, "%q is not a number", ref.Text)
		return "0"
	}
	return capacity
}
