package modification

import (
	"github.com/ougirez/autocatalog/internal/domain"
	"github.com/ougirez/autocatalog/internal/domain/dto"
	"strconv"
)

func testTables() domain.TaxonomyTables {
	return domain.TaxonomyTables{
		Bodies: domain.TaxonomyTable{
			{Name: "sedan", Code: "sedan"},
			{Name: "hatchback", Code: "hatchback"},
			{Name: "седан", Code: "sedan_ru"},
		},
		Transmissions: domain.TaxonomyTable{
			{Name: "manual", Code: "mt"},
			{Name: "automatic", Code: "at"},
		},
		Drives: domain.TaxonomyTable{
			{Name: "front", Code: "fwd"},
			{Name: "all", Code: "4wd"},
		},
	}
}

type recordFields struct {
	modID, modelID          int64
	name                    string
	transmissionID          int64
	transmission            string
	bodyID                  int64
	body                    string
	driveID                 int64
	drive                   string
	yearFrom, yearTo, power string
	engineSize              string
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func optional(text string) []dto.AttributeRef {
	if text == "" {
		return nil
	}
	return dto.Ref("", text)
}

func newRecord(s recordFields) *dto.ModificationRecord {
	return &dto.ModificationRecord{
		Modification: dto.Ref(id(s.modID), s.name),
		Model:        dto.Ref(id(s.modelID), "Model"),
		Transmission: dto.Ref(id(s.transmissionID), s.transmission),
		BodyType:     dto.Ref(id(s.bodyID), s.body),
		DriveType:    dto.Ref(id(s.driveID), s.drive),
		YearFrom:     optional(s.yearFrom),
		YearTo:       optional(s.yearTo),
		EngineSize:   optional(s.engineSize),
		Power:        optional(s.power),
	}
}

// baseRecord is a fully populated record; tests copy and tweak it.
var baseRecord = recordFields{
	modID:          1,
	modelID:        10,
	name:           "1.6 MT",
	transmissionID: 20,
	transmission:   "Manual",
	bodyID:         30,
	body:           "Sedan",
	driveID:        40,
	drive:          "Front",
	yearFrom:       "2010",
	yearTo:         "2015",
	power:          "100",
	engineSize:     "1.6",
}
