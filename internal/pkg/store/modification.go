package store

import (
	"context"
	"fmt"
	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/autocatalog/internal/domain"
	"github.com/ougirez/autocatalog/internal/pkg/logger"
)

var modificationColumns = []string{
	"id",
	"avito_modification_id",
	"name",
	"vehicle_model_id",
	"vehicle_transmission_id",
	"vehicle_body_id",
	"vehicle_drive_id",
	"vehicle_year",
	"vehicle_year_from",
	"vehicle_year_to",
	"vehicle_engine_power",
	"vehicle_engine_capacity",
	"code",
}

func listModificationsQuery() sq.SelectBuilder {
	return builder().Select(modificationColumns...).
		From(tableVehicleModifications).
		OrderBy("id")
}

func (s *store) ListModifications(ctx context.Context) ([]*domain.Modification, error) {
	var selected []*domain.Modification
	err := s.pool.Selectx(ctx, &selected, listModificationsQuery())
	if err != nil {
		logger.Errorf(ctx, "ListModifications: %s", err.Error())
		return nil, fmt.Errorf("select modifications: %w", wrapErr(err))
	}

	return selected, nil
}

func getModificationQuery(id int64) sq.SelectBuilder {
	return builder().Select(modificationColumns...).
		From(tableVehicleModifications).
		Where(sq.Eq{"id": id})
}

func (s *store) GetModification(ctx context.Context, id int64) (*domain.Modification, error) {
	var selected domain.Modification
	err := s.pool.Getx(ctx, &selected, getModificationQuery(id))
	if err != nil {
		return nil, fmt.Errorf("get modification %d: %w", id, wrapErr(err))
	}

	return &selected, nil
}

func upsertModificationsQuery(mods []*domain.Modification) sq.InsertBuilder {
	query := builder().Insert(tableVehicleModifications).
		Columns(modificationColumns...)

	for _, m := range mods {
		query = query.Values(
			m.ID,
			m.AvitoModificationID,
			m.Name,
			m.VehicleModelID,
			m.VehicleTransmissionID,
			m.VehicleBodyID,
			m.VehicleDriveID,
			m.VehicleYear,
			m.VehicleYearFrom,
			m.VehicleYearTo,
			m.VehicleEnginePower,
			m.VehicleEngineCapacity,
			m.Code,
		)
	}

	return query.Suffix("on conflict (id) do update set " + excludedSet(modificationColumns[1:]))
}

func (s *store) upsertModifications(ctx context.Context, mods []*domain.Modification) error {
	return s.execBatches(ctx, tableVehicleModifications, len(mods), func(from, to int) Sqlizer {
		return upsertModificationsQuery(mods[from:to])
	})
}
