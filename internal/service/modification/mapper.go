package modification

import (
	"github.com/ougirez/autocatalog/internal/domain"
	"github.com/ougirez/autocatalog/internal/domain/dto"
)

// Mapper turns catalog feed records into deduplicated reference tables.
// It holds only read-only taxonomy indexes and is safe for concurrent use.
type Mapper struct {
	bodies        taxonomyIndex
	transmissions taxonomyIndex
	drives        taxonomyIndex
}

func NewMapper(tables domain.TaxonomyTables) *Mapper {
	return &Mapper{
		bodies:        newTaxonomyIndex(taxonomyBody, tables.Bodies),
		transmissions: newTaxonomyIndex(taxonomyTransmission, tables.Transmissions),
		drives:        newTaxonomyIndex(taxonomyDrive, tables.Drives),
	}
}

// mapping is the accumulator state of a single Map call.
type mapping struct {
	bodies        *taxonomyCollector
	transmissions *taxonomyCollector
	drives        *taxonomyCollector
	associations  *associations
	modifications *orderedModifications
}

// Map normalizes records and reconciles them with previously saved modifications.
//
// Catalog records are inserted first, so on a canonical key collision the catalog
// version wins and the saved one is dropped. Saved modifications with unseen keys are
// appended unchanged apart from a fresh id. Neither input is modified.
//
// Any taxonomy miss or malformed record aborts the call; no partial result is returned.
func (m *Mapper) Map(records []*dto.ModificationRecord, saved []*domain.Modification) (*domain.MappingResult, error) {
	st := &mapping{
		bodies:        newTaxonomyCollector(m.bodies),
		transmissions: newTaxonomyCollector(m.transmissions),
		drives:        newTaxonomyCollector(m.drives),
		associations:  newAssociations(),
		modifications: newOrderedModifications(len(records) + len(saved)),
	}

	for i, record := range records {
		if err := st.addCatalogRecord(i, record); err != nil {
			return nil, err
		}
	}

	for i, item := range saved {
		if err := st.addSavedModification(i, item); err != nil {
			return nil, err
		}
	}

	return &domain.MappingResult{
		Modifications:     st.modifications.values(),
		Bodies:            st.bodies.entries,
		Transmissions:     st.transmissions.entries,
		ModelBody:         st.associations.modelBody,
		ModelTransmission: st.associations.modelTransmission,
		Drives:            st.drives.entries,
		ModelDrive:        st.associations.modelDrive,
	}, nil
}

func (st *mapping) addCatalogRecord(index int, record *dto.ModificationRecord) error {
	if record == nil {
		return &MalformedRecordError{Source: SourceCatalog, RecordIndex: index, Field: "record", Reason: "nil"}
	}

	r := &recordReader{source: SourceCatalog, index: index}
	modification := r.attribute("Modification", record.Modification)
	model := r.attribute("Model", record.Model)
	transmission := r.attribute("Transmission", record.Transmission)
	body := r.attribute("BodyType", record.BodyType)
	drive := r.attribute("DriveType", record.DriveType)
	yearFrom := r.optionalInt("YearFrom", record.YearFrom)
	yearTo := r.optionalInt("YearTo", record.YearTo)
	power := r.optionalInt("Power", record.Power)
	capacity := r.optionalCapacity("EngineSize", record.EngineSize)
	if r.err != nil {
		return r.err
	}

	if _, err := st.bodies.collect(index, body); err != nil {
		return err
	}
	transmissionCode, err := st.transmissions.collect(index, transmission)
	if err != nil {
		return err
	}
	if _, err := st.drives.collect(index, drive); err != nil {
		return err
	}

	st.associations.collectModelBody(model.id, body.id)
	st.associations.collectModelTransmission(model.id, transmission.id)
	st.associations.collectModelDrive(model.id, drive.id)

	mod := &domain.Modification{
		AvitoModificationID:   modification.id,
		Name:                  modification.name,
		VehicleModelID:        model.id,
		VehicleTransmissionID: transmission.id,
		VehicleBodyID:         body.id,
		VehicleDriveID:        drive.id,
		VehicleYear:           yearFrom,
		VehicleYearFrom:       yearFrom,
		VehicleYearTo:         yearTo,
		VehicleEnginePower:    power,
		VehicleEngineCapacity: capacity,
		Code:                  DeriveCode(power, capacity, transmissionCode),
	}

	key, err := CanonicalKey(mod)
	if err != nil {
		return &MalformedRecordError{Source: SourceCatalog, RecordIndex: index, Field: "key", Reason: err.Error()}
	}
	st.modifications.insertIfAbsent(key, mod)

	return nil
}

func (st *mapping) addSavedModification(index int, item *domain.Modification) error {
	if item == nil {
		return &MalformedRecordError{Source: SourceSaved, RecordIndex: index, Field: "record", Reason: "nil"}
	}

	key, err := CanonicalKey(item)
	if err != nil {
		return &MalformedRecordError{Source: SourceSaved, RecordIndex: index, Field: "vehicleEngineCapacity", Reason: err.Error()}
	}
	if st.modifications.has(key) {
		return nil
	}

	kept := *item
	st.modifications.insertIfAbsent(key, &kept)

	return nil
}
