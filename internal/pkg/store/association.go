package store

import (
	"context"
	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/autocatalog/internal/domain"
)

// insertPairsQuery inserts (vehicle_model_id, attributeColumn) rows, skipping known pairs.
func insertPairsQuery(table, attributeColumn string, pairs [][2]int64) sq.InsertBuilder {
	query := builder().Insert(table).
		Columns("vehicle_model_id", attributeColumn)

	for _, p := range pairs {
		query = query.Values(p[0], p[1])
	}

	return query.Suffix("on conflict do nothing")
}

func (s *store) insertPairs(ctx context.Context, table, attributeColumn string, pairs [][2]int64) error {
	return s.execBatches(ctx, table, len(pairs), func(from, to int) Sqlizer {
		return insertPairsQuery(table, attributeColumn, pairs[from:to])
	})
}

func (s *store) insertModelBodies(ctx context.Context, items []*domain.ModelBody) error {
	pairs := make([][2]int64, 0, len(items))
	for _, it := range items {
		pairs = append(pairs, [2]int64{it.VehicleModelID, it.VehicleBodyID})
	}
	return s.insertPairs(ctx, tableVehicleModelBodies, "vehicle_body_id", pairs)
}

func (s *store) insertModelTransmissions(ctx context.Context, items []*domain.ModelTransmission) error {
	pairs := make([][2]int64, 0, len(items))
	for _, it := range items {
		pairs = append(pairs, [2]int64{it.VehicleModelID, it.VehicleTransmissionID})
	}
	return s.insertPairs(ctx, tableVehicleModelTransmissions, "vehicle_transmission_id", pairs)
}

func (s *store) insertModelDrives(ctx context.Context, items []*domain.ModelDrive) error {
	pairs := make([][2]int64, 0, len(items))
	for _, it := range items {
		pairs = append(pairs, [2]int64{it.VehicleModelID, it.VehicleDriveID})
	}
	return s.insertPairs(ctx, tableVehicleModelDrives, "vehicle_drive_id", pairs)
}
