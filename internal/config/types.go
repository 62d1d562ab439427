package config

// ConfigLogger настройки логирования
type ConfigLogger struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text или json
}

// ConfigServer настройки сервера
type ConfigServer struct {
	UseReflection           bool   `mapstructure:"use_reflection"`
	PortGRPC                int    `mapstructure:"port_grpc"`
	PortHTTP                int    `mapstructure:"port_http"`
	HTTPReadTimeout         int    `mapstructure:"http_read_timeout"`
	HTTPWriteTimeout        int    `mapstructure:"http_write_timeout"`
	HTTPIdleTimeout         int    `mapstructure:"http_idle_timeout"`
	HTTPReadHeaderTimeout   int    `mapstructure:"http_read_header_timeout"`
	GracefulShutdownTimeout int    `mapstructure:"graceful_shutdown_timeout"`
	AuthToken               string `mapstructure:"auth_token"`
}

// ConfigGateway настройки HTTP Gateway
type ConfigGateway struct {
	CORSAllowedOrigins string `mapstructure:"cors_allowed_origins"`
	CORSMaxAge         int    `mapstructure:"cors_max_age"`
	RateLimitRPS       int    `mapstructure:"rate_limit_rps"`
	RateLimitBurst     int    `mapstructure:"rate_limit_burst"`
}

// ConfigSwagger настройки отдачи OpenAPI документа
type ConfigSwagger struct {
	Enabled bool `mapstructure:"enabled"`
}

// ConfigMongo подключение к MongoDB
type ConfigMongo struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// ConfigRedis подключение к Redis
type ConfigRedis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ConfigOpenSearch подключение к OpenSearch
type ConfigOpenSearch struct {
	Addresses string `mapstructure:"addresses"` // через запятую
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Index     string `mapstructure:"index"`
}

// ConfigSQLite встроенная база для индекса и счетчиков
type ConfigSQLite struct {
	Path string `mapstructure:"path"`
}

// ConfigStorage выбор бэкендов хранилищ
type ConfigStorage struct {
	Notes          string            `mapstructure:"notes"`      // mongo | memory
	Search         string            `mapstructure:"search"`     // opensearch | sqlite
	Increments     string            `mapstructure:"increments"` // redis | sqlite | memory
	ConnectTimeout int               `mapstructure:"connect_timeout"`
	Mongo          *ConfigMongo      `mapstructure:"mongo"`
	Redis          *ConfigRedis      `mapstructure:"redis"`
	OpenSearch     *ConfigOpenSearch `mapstructure:"opensearch"`
	SQLite         *ConfigSQLite     `mapstructure:"sqlite"`
}

// ConfigHealth настройки проверки здоровья хранилищ
type ConfigHealth struct {
	CheckInterval int `mapstructure:"check_interval"`
}

// Config основная структура конфигурации
type Config struct {
	Logger  *ConfigLogger  `mapstructure:"logger"`
	Server  *ConfigServer  `mapstructure:"server"`
	Gateway *ConfigGateway `mapstructure:"gateway"`
	Swagger *ConfigSwagger `mapstructure:"swagger"`
	Storage *ConfigStorage `mapstructure:"storage"`
	Health  *ConfigHealth  `mapstructure:"health"`
}
