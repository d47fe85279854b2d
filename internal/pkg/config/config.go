package config

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/ougirez/autocatalog/internal/domain"
	"github.com/ougirez/autocatalog/internal/pkg/constants"
	"github.com/spf13/viper"
	"strings"
)

const envPrefix = "CATALOG"

type Config struct {
	Server   ServerConfig          `mapstructure:"server"`
	Database DatabaseConfig        `mapstructure:"database"`
	Store    StoreConfig           `mapstructure:"store"`
	Auth     AuthConfig            `mapstructure:"auth"`
	Log      LogConfig             `mapstructure:"log"`
	Taxonomy domain.TaxonomyTables `mapstructure:"taxonomy"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
}

type DatabaseConfig struct {
	DSN            string `mapstructure:"dsn" validate:"required"`
	ConnectRetries uint64 `mapstructure:"connect_retries"`
}

type StoreConfig struct {
	BatchSize int `mapstructure:"batch_size" validate:"min=1,max=5000"`
}

type AuthConfig struct {
	Secret     string `mapstructure:"secret"`
	SigningKey string `mapstructure:"signing_key"`
}

type LogConfig struct {
	Level       string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Development bool   `mapstructure:"development"`
}

// Load reads the config file at path into the global viper instance, applies
// CATALOG_* environment overrides and validates the result. An empty path
// relies on defaults and the environment only.
func Load(path string) (*Config, error) {
	setDefaults()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("viper.ReadInConfig: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault(constants.ViperServerAddressKey, ":8080")
	// empty defaults make the keys visible to Unmarshal for env overrides
	viper.SetDefault(constants.ViperDatabaseDSNKey, "")
	viper.SetDefault(constants.ViperSecretKey, "")
	viper.SetDefault(constants.ViperSigningKey, "")
	viper.SetDefault(constants.ViperDatabaseRetriesKey, 5)
	viper.SetDefault(constants.ViperStoreBatchSizeKey, 1000)
	viper.SetDefault(constants.ViperLogLevelKey, "info")
	viper.SetDefault(constants.ViperLogDevelopmentKey, false)

	tables := DefaultTaxonomy()
	viper.SetDefault(constants.ViperTaxonomyBodiesKey, tableDefault(tables.Bodies))
	viper.SetDefault(constants.ViperTaxonomyTransmissions, tableDefault(tables.Transmissions))
	viper.SetDefault(constants.ViperTaxonomyDrivesKey, tableDefault(tables.Drives))
}

func tableDefault(table domain.TaxonomyTable) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(table))
	for _, item := range table {
		out = append(out, map[string]interface{}{"name": item.Name, "code": item.Code})
	}
	return out
}
