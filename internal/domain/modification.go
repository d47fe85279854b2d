package domain

// Modification is a normalized catalog modification ready for upsert.
// Two modifications are the same entity iff their canonical keys match.
type Modification struct {
	ID                    int64  `json:"id" db:"id"`
	AvitoModificationID   int64  `json:"avitoModificationId" db:"avito_modification_id"`
	Name                  string `json:"name" db:"name"`
	VehicleModelID        int64  `json:"vehicleModelId" db:"vehicle_model_id"`
	VehicleTransmissionID int64  `json:"vehicleTransmissionId" db:"vehicle_transmission_id"`
	VehicleBodyID         int64  `json:"vehicleBodyId" db:"vehicle_body_id"`
	VehicleDriveID        int64  `json:"vehicleDriveId" db:"vehicle_drive_id"`
	VehicleYear           int    `json:"vehicleYear" db:"vehicle_year"`
	VehicleYearFrom       int    `json:"vehicleYearFrom" db:"vehicle_year_from"`
	VehicleYearTo         int    `json:"vehicleYearTo" db:"vehicle_year_to"`
	VehicleEnginePower    int    `json:"vehicleEnginePower" db:"vehicle_engine_power"`
	VehicleEngineCapacity string `json:"vehicleEngineCapacity" db:"vehicle_engine_capacity"`
	Code                  string `json:"code" db:"code"`
}

// TaxonomyEntry is one body type, transmission or drive type seen in the catalog.
type TaxonomyEntry struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Code      string `json:"code" db:"code"`
	AvitoCode string `json:"avitoCode" db:"avito_code"`
}

type ModelBody struct {
	VehicleModelID int64 `json:"vehicleModelId" db:"vehicle_model_id"`
	VehicleBodyID  int64 `json:"vehicleBodyId" db:"vehicle_body_id"`
}

type ModelTransmission struct {
	VehicleModelID        int64 `json:"vehicleModelId" db:"vehicle_model_id"`
	VehicleTransmissionID int64 `json:"vehicleTransmissionId" db:"vehicle_transmission_id"`
}

type ModelDrive struct {
	VehicleModelID int64 `json:"vehicleModelId" db:"vehicle_model_id"`
	VehicleDriveID int64 `json:"vehicleDriveId" db:"vehicle_drive_id"`
}

// MappingResult holds the reference tables produced from one catalog refresh.
type MappingResult struct {
	Modifications     []*Modification      `json:"modifications"`
	Bodies            []*TaxonomyEntry     `json:"bodies"`
	Transmissions     []*TaxonomyEntry     `json:"transmissions"`
	ModelBody         []*ModelBody         `json:"modelBody"`
	ModelTransmission []*ModelTransmission `json:"modelTransmission"`
	Drives            []*TaxonomyEntry     `json:"drives"`
	ModelDrive        []*ModelDrive        `json:"modelDrive"`
}

type SyncSummary struct {
	RunID             string `json:"runId"`
	DryRun            bool   `json:"dryRun"`
	CatalogRecords    int    `json:"catalogRecords"`
	SavedRecords      int    `json:"savedRecords"`
	Modifications     int    `json:"modifications"`
	Bodies            int    `json:"bodies"`
	Transmissions     int    `json:"transmissions"`
	Drives            int    `json:"drives"`
	ModelBody         int    `json:"modelBody"`
	ModelTransmission int    `json:"modelTransmission"`
	ModelDrive        int    `json:"modelDrive"`
}

func NewSyncSummary(runID string, catalogRecords, savedRecords int, res *MappingResult) *SyncSummary {
	return &SyncSummary{
		RunID:             runID,
		CatalogRecords:    catalogRecords,
		SavedRecords:      savedRecords,
		Modifications:     len(res.Modifications),
		Bodies:            len(res.Bodies),
		Transmissions:     len(res.Transmissions),
		Drives:            len(res.Drives),
		ModelBody:         len(res.ModelBody),
		ModelTransmission: len(res.ModelTransmission),
		ModelDrive:        len(res.ModelDrive),
	}
}
