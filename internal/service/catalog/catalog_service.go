package catalog

import (
	"context"
	"fmt"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/ougirez/autocatalog/internal/domain"
	"github.com/ougirez/autocatalog/internal/domain/dto"
	"github.com/ougirez/autocatalog/internal/pkg/constants"
	"github.com/ougirez/autocatalog/internal/pkg/logger"
	"github.com/ougirez/autocatalog/internal/pkg/store"
	"os"
)

// Mapper reconciles catalog records with saved modifications.
type Mapper interface {
	Map(records []*dto.ModificationRecord, saved []*domain.Modification) (*domain.MappingResult, error)
}

type SyncOpts struct {
	// DryRun maps without persisting.
	DryRun bool
}

type Service struct {
	store  store.Store
	mapper Mapper
}

func NewCatalogService(store store.Store, mapper Mapper) *Service {
	return &Service{store: store, mapper: mapper}
}

// SyncModifications maps a catalog refresh against the saved modifications and,
// unless opts.DryRun is set, upserts the result.
func (s *Service) SyncModifications(
	ctx context.Context,
	records []*dto.ModificationRecord,
	opts SyncOpts,
) (*domain.MappingResult, *domain.SyncSummary, error) {
	if len(records) == 0 {
		return nil, nil, constants.ErrEmptyCatalog
	}

	runID := uuid.NewString()
	ctx = logger.WithFields(ctx, "run_id", runID, "dry_run", opts.DryRun)

	saved, err := s.store.ListModifications(ctx)
	if err != nil {
		logger.Errorf(ctx, "ListModifications: %s", err.Error())
		return nil, nil, fmt.Errorf("store.ListModifications: %w", err)
	}

	logger.Infof(ctx, "mapping %d catalog records against %d saved modifications", len(records), len(saved))

	res, err := s.mapper.Map(records, saved)
	if err != nil {
		logger.Errorf(ctx, "mapper.Map: %s", err.Error())
		return nil, nil, fmt.Errorf("mapper.Map: %w", err)
	}

	summary := domain.NewSyncSummary(runID, len(records), len(saved), res)
	summary.DryRun = opts.DryRun

	if opts.DryRun {
		logger.Infof(ctx, "dry run: %d modifications mapped, nothing saved", len(res.Modifications))
		return res, summary, nil
	}

	if err := s.store.SaveMappingResult(ctx, res); err != nil {
		return nil, nil, fmt.Errorf("store.SaveMappingResult: %w", err)
	}

	return res, summary, nil
}

// ImportFile syncs the JSON array of catalog records stored at path.
func (s *Service) ImportFile(ctx context.Context, path string, opts SyncOpts) (*domain.MappingResult, *domain.SyncSummary, error) {
	records, err := ReadRecords(path)
	if err != nil {
		return nil, nil, err
	}

	return s.SyncModifications(ctx, records, opts)
}

// ReadRecords decodes a JSON array of catalog records from path.
func ReadRecords(path string) (records []*dto.ModificationRecord, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer func() {
		closeErr := f.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close catalog file: %w", closeErr)
		}
	}()

	if err = sonic.ConfigDefault.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", path, err)
	}

	return records, nil
}

func (s *Service) ListModifications(ctx context.Context) ([]*domain.Modification, error) {
	return s.store.ListModifications(ctx)
}

func (s *Service) GetModification(ctx context.Context, id int64) (*domain.Modification, error) {
	return s.store.GetModification(ctx, id)
}
