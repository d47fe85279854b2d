package modification

import "github.com/ougirez/autocatalog/internal/domain"

type pairKey struct {
	modelID     int64
	attributeID int64
}

type pairSet map[pairKey]struct{}

func (s pairSet) add(modelID, attributeID int64) bool {
	key := pairKey{modelID: modelID, attributeID: attributeID}
	if _, ok := s[key]; ok {
		return false
	}
	s[key] = struct{}{}
	return true
}

// associations collects model↔attribute pairs in first-occurrence order.
type associations struct {
	modelBody         []*domain.ModelBody
	modelTransmission []*domain.ModelTransmission
	modelDrive        []*domain.ModelDrive

	seenBody         pairSet
	seenTransmission pairSet
	seenDrive        pairSet
}

func newAssociations() *associations {
	return &associations{
		modelBody:         make([]*domain.ModelBody, 0),
		modelTransmission: make([]*domain.ModelTransmission, 0),
		modelDrive:        make([]*domain.ModelDrive, 0),
		seenBody:          make(pairSet),
		seenTransmission:  make(pairSet),
		seenDrive:         make(pairSet),
	}
}

func (a *associations) collectModelBody(modelID, bodyID int64) {
	if a.seenBody.add(modelID, bodyID) {
		a.modelBody = append(a.modelBody, &domain.ModelBody{
			VehicleModelID: modelID,
			VehicleBodyID:  bodyID,
		})
	}
}

func (a *associations) collectModelTransmission(modelID, transmissionID int64) {
	if a.seenTransmission.add(modelID, transmissionID) {
		a.modelTransmission = append(a.modelTransmission, &domain.ModelTransmission{
			VehicleModelID:        modelID,
			VehicleTransmissionID: transmissionID,
		})
	}
}

func (a *associations) collectModelDrive(modelID, driveID int64) {
	if a.seenDrive.add(modelID, driveID) {
		a.modelDrive = append(a.modelDrive, &domain.ModelDrive{
			VehicleModelID: modelID,
			VehicleDriveID: driveID,
		})
	}
}
