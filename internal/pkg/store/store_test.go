package store

import (
	"context"
	"errors"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ougirez/autocatalog/internal/domain"
	"github.com/ougirez/autocatalog/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"sync"
	"testing"
)

type execCall struct {
	sql  string
	args []interface{}
}

type fakePool struct {
	mu       sync.Mutex
	calls    []execCall
	execErr  error
	queryErr error
	selected []*domain.Modification
}

func (f *fakePool) Execx(_ context.Context, query sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, execCall{sql: sql, args: args})
	return pgconn.CommandTag{}, f.execErr
}

func (f *fakePool) Queryx(context.Context, sq.Sqlizer) (pgx.Rows, error) {
	return nil, f.queryErr
}

func (f *fakePool) Selectx(_ context.Context, dest interface{}, _ sq.Sqlizer) error {
	if f.queryErr != nil {
		return f.queryErr
	}
	*dest.(*[]*domain.Modification) = f.selected
	return nil
}

func (f *fakePool) Getx(_ context.Context, dest interface{}, _ sq.Sqlizer) error {
	if f.queryErr != nil {
		return f.queryErr
	}
	if len(f.selected) == 0 {
		return pgx.ErrNoRows
	}
	*dest.(*domain.Modification) = *f.selected[0]
	return nil
}

func (f *fakePool) Close() {}

func (f *fakePool) callsFor(table string) []execCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []execCall
	for _, c := range f.calls {
		if strings.HasPrefix(c.sql, "INSERT INTO "+table+" ") {
			out = append(out, c)
		}
	}
	return out
}

func sampleResult() *domain.MappingResult {
	mod := func(id int64) *domain.Modification {
		return &domain.Modification{ID: id, AvitoModificationID: 100 + id, Name: "m", VehicleEngineCapacity: "1.6", Code: "mt__1__1_6"}
	}
	return &domain.MappingResult{
		Modifications:     []*domain.Modification{mod(1), mod(2), mod(3)},
		Bodies:            []*domain.TaxonomyEntry{{ID: 30, Name: "sedan", Code: "sedan", AvitoCode: "sedan"}},
		Transmissions:     []*domain.TaxonomyEntry{{ID: 20, Name: "manual", Code: "mt", AvitoCode: "mt"}},
		Drives:            []*domain.TaxonomyEntry{},
		ModelBody:         []*domain.ModelBody{{VehicleModelID: 10, VehicleBodyID: 30}},
		ModelTransmission: []*domain.ModelTransmission{{VehicleModelID: 10, VehicleTransmissionID: 20}},
		ModelDrive:        []*domain.ModelDrive{},
	}
}

func TestSaveMappingResultBatches(t *testing.T) {
	pool := &fakePool{}
	s := NewStore(pool, 2)

	require.NoError(t, s.SaveMappingResult(context.Background(), sampleResult()))

	mods := pool.callsFor(tableVehicleModifications)
	require.Len(t, mods, 2)
	assert.Len(t, mods[0].args, 2*len(modificationColumns))
	assert.Len(t, mods[1].args, len(modificationColumns))
	assert.Equal(t, int64(3), mods[1].args[0])

	assert.Len(t, pool.callsFor(tableVehicleBodies), 1)
	assert.Len(t, pool.callsFor(tableVehicleTransmissions), 1)
	assert.Empty(t, pool.callsFor(tableVehicleDrives))
	assert.Len(t, pool.callsFor(tableVehicleModelBodies), 1)
	assert.Len(t, pool.callsFor(tableVehicleModelTransmissions), 1)
	assert.Empty(t, pool.callsFor(tableVehicleModelDrives))
}

func TestSaveMappingResultPropagatesErrors(t *testing.T) {
	pool := &fakePool{execErr: errors.New("connection reset")}
	s := NewStore(pool, 10)

	err := s.SaveMappingResult(context.Background(), sampleResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")

	// taxonomy failures stop the run before modifications are written
	assert.Empty(t, pool.callsFor(tableVehicleModifications))
}

func TestUpsertTaxonomyQuery(t *testing.T) {
	sql, args, err := upsertTaxonomyQuery(tableVehicleBodies, []*domain.TaxonomyEntry{
		{ID: 1, Name: "sedan", Code: "sedan", AvitoCode: "sedan"},
		{ID: 2, Name: "coupe", Code: "coupe", AvitoCode: "coupe"},
	}).ToSql()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sql, "INSERT INTO vehicle_bodies (id,name,code,avito_code) VALUES ($1,$2,$3,$4),($5,$6,$7,$8)"), sql)
	assert.True(t, strings.HasSuffix(sql,
		"on conflict (id) do update set name = excluded.name, code = excluded.code, avito_code = excluded.avito_code"), sql)
	assert.Equal(t, []interface{}{int64(1), "sedan", "sedan", "sedan", int64(2), "coupe", "coupe", "coupe"}, args)
}

func TestUpsertModificationsQueryUpdatesEveryColumnButID(t *testing.T) {
	sql, _, err := upsertModificationsQuery([]*domain.Modification{{ID: 1}}).ToSql()
	require.NoError(t, err)

	for _, c := range modificationColumns[1:] {
		assert.Contains(t, sql, c+" = excluded."+c)
	}
	assert.NotContains(t, sql, "id = excluded.id,")
}

func TestInsertPairsQuery(t *testing.T) {
	sql, args, err := insertPairsQuery(tableVehicleModelDrives, "vehicle_drive_id", [][2]int64{{1, 2}, {1, 3}}).ToSql()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sql, "INSERT INTO vehicle_model_drives (vehicle_model_id,vehicle_drive_id) VALUES ($1,$2),($3,$4)"), sql)
	assert.True(t, strings.HasSuffix(sql, "on conflict do nothing"), sql)
	assert.Equal(t, []interface{}{int64(1), int64(2), int64(1), int64(3)}, args)
}

func TestListModificationsQuery(t *testing.T) {
	sql, _, err := listModificationsQuery().ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT "+strings.Join(modificationColumns, ", ")+" FROM vehicle_modifications ORDER BY id", sql)
}

func TestListAndGetModification(t *testing.T) {
	saved := []*domain.Modification{{ID: 1, Name: "1.6 MT", Code: "mt__123__1_6"}}
	s := NewStore(&fakePool{selected: saved}, 0)

	list, err := s.ListModifications(context.Background())
	require.NoError(t, err)
	assert.Equal(t, saved, list)

	got, err := s.GetModification(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "mt__123__1_6", got.Code)
}

func TestGetModificationNotFound(t *testing.T) {
	s := NewStore(&fakePool{queryErr: pgx.ErrNoRows}, 0)

	_, err := s.GetModification(context.Background(), 7)
	assert.ErrorIs(t, err, constants.ErrDBNotFound)
}
