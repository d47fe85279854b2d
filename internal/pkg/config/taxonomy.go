package config

import "github.com/ougirez/autocatalog/internal/domain"

// DefaultTaxonomy returns the catalog's body, transmission and drive vocabularies.
func DefaultTaxonomy() domain.TaxonomyTables {
	return domain.TaxonomyTables{
		Bodies: domain.TaxonomyTable{
			{Name: "седан", Code: "sedan"},
			{Name: "хетчбэк", Code: "hatchback"},
			{Name: "универсал", Code: "wagon"},
			{Name: "внедорожник", Code: "suv"},
			{Name: "кабриолет", Code: "cabriolet"},
			{Name: "купе", Code: "coupe"},
			{Name: "лимузин", Code: "limousine"},
			{Name: "минивэн", Code: "minivan"},
			{Name: "пикап", Code: "pickup"},
			{Name: "фургон", Code: "van"},
			{Name: "микроавтобус", Code: "minibus"},
			{Name: "лифтбек", Code: "liftback"},
			{Name: "родстер", Code: "roadster"},
			{Name: "тарга", Code: "targa"},
			{Name: "фастбек", Code: "fastback"},
		},
		Transmissions: domain.TaxonomyTable{
			{Name: "механика", Code: "mt"},
			{Name: "автомат", Code: "at"},
			{Name: "робот", Code: "amt"},
			{Name: "вариатор", Code: "cvt"},
		},
		Drives: domain.TaxonomyTable{
			{Name: "передний", Code: "fwd"},
			{Name: "задний", Code: "rwd"},
			{Name: "полный", Code: "4wd"},
		},
	}
}
