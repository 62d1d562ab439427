package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// envPattern ${VAR} или ${VAR:-default}
var envPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// defaults значения, используемые при отсутствии ключа в файле
var defaults = map[string]any{
	"logger.level":                     "info",
	"logger.format":                    "text",
	"server.use_reflection":            true,
	"server.port_grpc":                 50051,
	"server.port_http":                 8080,
	"server.http_read_timeout":         10,
	"server.http_write_timeout":        10,
	"server.http_idle_timeout":         60,
	"server.http_read_header_timeout":  5,
	"server.graceful_shutdown_timeout": 10,
	"gateway.cors_allowed_origins":     "*",
	"gateway.cors_max_age":             86400,
	"gateway.rate_limit_rps":           100,
	"gateway.rate_limit_burst":         10,
	"swagger.enabled":                  true,
	"storage.notes":                    "memory",
	"storage.search":                   "sqlite",
	"storage.increments":               "memory",
	"storage.connect_timeout":          10,
	"storage.mongo.uri":                "mongodb://localhost:27017",
	"storage.mongo.database":           "playground",
	"storage.redis.addr":               "localhost:6379",
	"storage.redis.db":                 0,
	"storage.opensearch.addresses":     "http://localhost:9200",
	"storage.opensearch.index":         "notes",
	"storage.sqlite.path":              "data/playground.db",
	"health.check_interval":            15,
}

// expandEnvWithDefaults расширяет переменные окружения с поддержкой дефолтных значений
// Формат: ${VAR:-default}
func expandEnvWithDefaults(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		matches := envPattern.FindStringSubmatch(match)
		if len(matches) < 2 {
			return match
		}

		if value := os.Getenv(matches[1]); value != "" {
			return value
		}
		if len(matches) > 2 {
			return matches[2]
		}
		return ""
	})
}

// typedValue приводит строку после подстановки к bool или int, если она так выглядит
func typedValue(s string) any {
	if b, err := strconv.ParseBool(s); err == nil && (s == "true" || s == "false") {
		return b
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return s
}

// InitConfig читает конфигурационный файл и возвращает экземпляр конфигурации
// Использует generic для работы с произвольным типом конфигурации
func InitConfig[C any](configFile string) (*C, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	ext := strings.TrimLeft(filepath.Ext(configFile), ".")
	v.SetConfigFile(configFile)
	v.SetConfigType(ext)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig: %w", err)
	}

	// Заменяем переменные окружения формата ${VAR:-default} на их значения
	for _, k := range v.AllKeys() {
		raw, ok := v.Get(k).(string)
		if !ok || !strings.Contains(raw, "${") {
			continue
		}
		v.Set(k, typedValue(expandEnvWithDefaults(raw)))
	}

	cfg := new(C)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("v.Unmarshal: %w", err)
	}

	return cfg, nil
}

// Path возвращает путь к файлу конфигурации: CONFIG_FILE или значение по умолчанию
func Path(defaultFile string) string {
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		return p
	}
	return defaultFile
}
