package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type FleetConfig struct {
	Env           string `yaml:"env"`
	FleetDB       `yaml:"fleet_db"`
	LogConfig     `yaml:"log_config"`
	KafkaService  `yaml:"kafka-service"`
	MetricsServer `yaml:"metrics_server"`
	Migrations    `yaml:"migrations"`
}

type FleetDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type MetricsServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type Migrations struct {
	Path string `yaml:"path"`
}

func MustLoad() *FleetConfig {

	// Processing env config variable and file
	configPath := os.Getenv("FLEET_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("FLEET_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg FleetConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
