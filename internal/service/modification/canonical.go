package modification

import (
	"fmt"
	"github.com/bytedance/sonic"
	"github.com/ougirez/autocatalog/internal/domain"
	"github.com/shopspring/decimal"
	"strings"
)

// canonicalFields fixes the set and order of fields that identify a modification.
// vehicleBodyId is deliberately absent: modifications differing only in body collapse.
type canonicalFields struct {
	AvitoModificationID   int64  `json:"avitoModificationId"`
	Name                  string `json:"name"`
	VehicleModelID        int64  `json:"vehicleModelId"`
	VehicleTransmissionID int64  `json:"vehicleTransmissionId"`
	VehicleDriveID        int64  `json:"vehicleDriveId"`
	VehicleYear           int    `json:"vehicleYear"`
	VehicleYearFrom       int    `json:"vehicleYearFrom"`
	VehicleYearTo         int    `json:"vehicleYearTo"`
	VehicleEnginePower    int    `json:"vehicleEnginePower"`
	VehicleEngineCapacity string `json:"vehicleEngineCapacity"`
	Code                  string `json:"code"`
}

// CanonicalKey returns the dedup key of m. The id field is ignored and the engine
// capacity is re-normalized, so "2" and "2.0" produce the same key.
func CanonicalKey(m *domain.Modification) (string, error) {
	capacity, err := normalizeCapacity(m.VehicleEngineCapacity)
	if err != nil {
		return "", fmt.Errorf("normalizeCapacity %q: %w", m.VehicleEngineCapacity, err)
	}

	key, err := sonic.Marshal(canonicalFields{
		AvitoModificationID:   m.AvitoModificationID,
		Name:                  m.Name,
		VehicleModelID:        m.VehicleModelID,
		VehicleTransmissionID: m.VehicleTransmissionID,
		VehicleDriveID:        m.VehicleDriveID,
		VehicleYear:           m.VehicleYear,
		VehicleYearFrom:       m.VehicleYearFrom,
		VehicleYearTo:         m.VehicleYearTo,
		VehicleEnginePower:    m.VehicleEnginePower,
		VehicleEngineCapacity: capacity,
		Code:                  m.Code,
	})
	if err != nil {
		return "", fmt.Errorf("sonic.Marshal: %w", err)
	}

	return string(key), nil
}

// normalizeCapacity fixes a numeric string to one decimal place. Blank means zero.
func normalizeCapacity(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "0.0", nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", err
	}
	return d.StringFixed(1), nil
}

// orderedModifications is a key→modification map iterated in insertion order.
// Insertion order assigns ids, so it must never be replaced by a plain map walk.
type orderedModifications struct {
	byKey map[string]*domain.Modification
	order []*domain.Modification
}

func newOrderedModifications(capacity int) *orderedModifications {
	return &orderedModifications{
		byKey: make(map[string]*domain.Modification, capacity),
		order: make([]*domain.Modification, 0, capacity),
	}
}

// insertIfAbsent stores m under key with id = size+1 unless key is already taken.
func (o *orderedModifications) insertIfAbsent(key string, m *domain.Modification) bool {
	if _, ok := o.byKey[key]; ok {
		return false
	}
	m.ID = int64(len(o.order) + 1)
	o.byKey[key] = m
	o.order = append(o.order, m)
	return true
}

func (o *orderedModifications) has(key string) bool {
	_, ok := o.byKey[key]
	return ok
}

func (o *orderedModifications) values() []*domain.Modification {
	return o.order
}
