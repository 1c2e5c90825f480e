package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Backend struct {
	BaseURL        string        `yaml:"base_url" env:"BACKEND_BASE_URL" env-default:"http://localhost:8080/CandleSystem"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"BACKEND_REQUEST_TIMEOUT" env-default:"10s"`
}

type Ops struct {
	Addr string `yaml:"address" env:"OPS_ADDR" env-default:":9090"`
}

type Telemetry struct {
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:""`
}

type Config struct {
	Env       string    `yaml:"env" env:"ENV" env-default:"production"`
	Backend   Backend   `yaml:"backend"`
	Ops       Ops       `yaml:"ops"`
	Telemetry Telemetry `yaml:"telemetry"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

	}

	var cfg Config

	if configPath == "" {
		// No file given: environment variables and defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err.Error())
		}

		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config file: %s", err.Error())
	}

	return &cfg
}
