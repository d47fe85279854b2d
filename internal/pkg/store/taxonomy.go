package store

import (
	"context"
	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/autocatalog/internal/domain"
)

var taxonomyColumns = []string{"id", "name", "code", "avito_code"}

func upsertTaxonomyQuery(table string, entries []*domain.TaxonomyEntry) sq.InsertBuilder {
	query := builder().Insert(table).
		Columns(taxonomyColumns...)

	for _, e := range entries {
		query = query.Values(e.ID, e.Name, e.Code, e.AvitoCode)
	}

	return query.Suffix("on conflict (id) do update set " + excludedSet(taxonomyColumns[1:]))
}

func (s *store) upsertTaxonomy(ctx context.Context, table string, entries []*domain.TaxonomyEntry) error {
	return s.execBatches(ctx, table, len(entries), func(from, to int) Sqlizer {
		return upsertTaxonomyQuery(table, entries[from:to])
	})
}
