package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName  string
	LoggerLevel  string
	LoggerOutput string

	LotName     string
	LotCapacity int

	OTelEnabled     bool
	OTelServiceName string
	OTelEndpoint    string
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "parkingsys"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "info"))
	cfg.LoggerOutput = cast.ToString(getOrReturnDefault("LOGGER_OUTPUT", "stderr"))

	cfg.LotName = cast.ToString(getOrReturnDefault("LOT_NAME", "Ostim TechnoPark"))
	cfg.LotCapacity = cast.ToInt(getOrReturnDefault("LOT_CAPACITY", 10))

	cfg.OTelEnabled = cast.ToBool(getOrReturnDefault("OTEL_ENABLED", false))
	cfg.OTelServiceName = cast.ToString(getOrReturnDefault("OTEL_SERVICE_NAME", cfg.ServiceName))
	cfg.OTelEndpoint = cast.ToString(getOrReturnDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318"))

	return cfg
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
