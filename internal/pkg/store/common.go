package store

import (
	"errors"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/ougirez/autocatalog/internal/pkg/constants"
	"strings"
)

const (
	tableVehicleModifications      = "vehicle_modifications"
	tableVehicleBodies             = "vehicle_bodies"
	tableVehicleTransmissions      = "vehicle_transmissions"
	tableVehicleDrives             = "vehicle_drives"
	tableVehicleModelBodies        = "vehicle_model_bodies"
	tableVehicleModelTransmissions = "vehicle_model_transmissions"
	tableVehicleModelDrives        = "vehicle_model_drives"

	defaultBatchSize = 1000
)

type Sqlizer = squirrel.Sqlizer

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder возвращает squirrel SQL Builder обьект.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// excludedSet renders "col = excluded.col" assignments for an upsert suffix.
func excludedSet(columns []string) string {
	parts := make([]string, 0, len(columns))
	for _, c := range columns {
		parts = append(parts, c+" = excluded."+c)
	}
	return strings.Join(parts, ", ")
}
