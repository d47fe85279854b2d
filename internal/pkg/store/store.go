package store

import (
	"context"
	"fmt"
	"github.com/ougirez/autocatalog/internal/domain"
	"github.com/ougirez/autocatalog/internal/pkg/logger"
	"github.com/ougirez/autocatalog/internal/pkg/store/xpgx"
	"golang.org/x/sync/errgroup"
)

type Pool = xpgx.Pool

type Store interface {
	ListModifications(ctx context.Context) ([]*domain.Modification, error)
	GetModification(ctx context.Context, id int64) (*domain.Modification, error)
	SaveMappingResult(ctx context.Context, res *domain.MappingResult) error
}

type store struct {
	pool      Pool
	batchSize int
}

func NewStore(pool Pool, batchSize int) Store {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &store{pool: pool, batchSize: batchSize}
}

// SaveMappingResult upserts every reference table of res. Taxonomy tables are written
// first since the modification and association rows point at them.
func (s *store) SaveMappingResult(ctx context.Context, res *domain.MappingResult) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return s.upsertTaxonomy(egCtx, tableVehicleBodies, res.Bodies)
	})
	eg.Go(func() error {
		return s.upsertTaxonomy(egCtx, tableVehicleTransmissions, res.Transmissions)
	})
	eg.Go(func() error {
		return s.upsertTaxonomy(egCtx, tableVehicleDrives, res.Drives)
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	eg, egCtx = errgroup.WithContext(ctx)
	eg.Go(func() error {
		return s.upsertModifications(egCtx, res.Modifications)
	})
	eg.Go(func() error {
		return s.insertModelBodies(egCtx, res.ModelBody)
	})
	eg.Go(func() error {
		return s.insertModelTransmissions(egCtx, res.ModelTransmission)
	})
	eg.Go(func() error {
		return s.insertModelDrives(egCtx, res.ModelDrive)
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	logger.Infof(ctx, "saved %d modifications, %d bodies, %d transmissions, %d drives",
		len(res.Modifications), len(res.Bodies), len(res.Transmissions), len(res.Drives))

	return nil
}

// execBatches runs build over [from, to) windows of at most batchSize rows.
func (s *store) execBatches(ctx context.Context, table string, n int, build func(from, to int) Sqlizer) error {
	for from := 0; from < n; from += s.batchSize {
		to := min(from+s.batchSize, n)
		if _, err := s.pool.Execx(ctx, build(from, to)); err != nil {
			logger.Errorf(ctx, "upsert %s rows %d-%d: %s", table, from, to, err.Error())
			return fmt.Errorf("upsert %s: %w", table, wrapErr(err))
		}
	}
	return nil
}
