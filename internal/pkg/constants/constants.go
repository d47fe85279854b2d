package constants

const (
	CookieKeySecretToken = "secret_token"
)

// viper keys
const (
	ViperServerAddressKey      = "server.address"
	ViperDatabaseDSNKey        = "database.dsn"
	ViperDatabaseRetriesKey    = "database.connect_retries"
	ViperStoreBatchSizeKey     = "store.batch_size"
	ViperSecretKey             = "auth.secret"
	ViperSigningKey            = "auth.signing_key"
	ViperLogLevelKey           = "log.level"
	ViperLogDevelopmentKey     = "log.development"
	ViperTaxonomyBodiesKey     = "taxonomy.bodies"
	ViperTaxonomyTransmissions = "taxonomy.transmissions"
	ViperTaxonomyDrivesKey     = "taxonomy.drives"
)
