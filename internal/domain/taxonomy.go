package domain

// TaxonomyItem maps a lowercase display name to a classification code.
type TaxonomyItem struct {
	Name string `json:"name" mapstructure:"name" validate:"required"`
	Code string `json:"code" mapstructure:"code" validate:"required"`
}

type TaxonomyTable []TaxonomyItem

// TaxonomyTables is read-only reference configuration for attribute resolution.
type TaxonomyTables struct {
	Bodies        TaxonomyTable `mapstructure:"bodies" validate:"required,min=1,dive"`
	Transmissions TaxonomyTable `mapstructure:"transmissions" validate:"required,min=1,dive"`
	Drives        TaxonomyTable `mapstructure:"drives" validate:"required,min=1,dive"`
}
