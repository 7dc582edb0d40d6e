// backend/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatasetConfig struct {
	URL            string `yaml:"url"`
	Format         string `yaml:"format"` // auto | csv | json
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
}

var AppConfig Config

// Known public route datasets. The structured JSON feed is the default
// because it carries durations and display metadata; the OpenFlights
// CSV feed has neither, but the same query works against it.
const (
	DefaultDatasetURL    = "https://raw.githubusercontent.com/Jonty/airline-route-data/main/airline_routes.json"
	OpenFlightsRoutesURL = "https://raw.githubusercontent.com/jpatokal/openflights/master/data/routes.dat"
)

// LoadConfig fills AppConfig from an optional yaml file plus env-var
// overrides. A missing file is not an error — the built-in defaults
// point at the public datasets so the binary works out of the box.
func LoadConfig(configPath string) error {
	AppConfig = Config{
		Server: ServerConfig{
			Port: "8080",
		},
		Dataset: DatasetConfig{
			URL:            DefaultDatasetURL,
			Format:         "auto",
			TimeoutSeconds: 10,
		},
	}

	if configPath == "" {
		potentialPaths := []string{
			"config.yaml",
			"config/config.yaml",
		}
		for _, p := range potentialPaths {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
	}

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, &AppConfig); err != nil {
			return fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	// Env vars win over the file, so deployments can retarget the
	// dataset without editing yaml.
	if v := os.Getenv("PORT"); v != "" {
		AppConfig.Server.Port = v
	}
	if v := os.Getenv("DATASET_URL"); v != "" {
		AppConfig.Dataset.URL = v
	}
	if v := os.Getenv("DATASET_FORMAT"); v != "" {
		AppConfig.Dataset.Format = v
	}
	if v := os.Getenv("FETCH_TIMEOUT_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid FETCH_TIMEOUT_SECONDS %q: %w", v, err)
		}
		AppConfig.Dataset.TimeoutSeconds = seconds
	}

	switch AppConfig.Dataset.Format {
	case "auto", "csv", "json":
	default:
		return fmt.Errorf("invalid dataset format %q (want auto, csv or json)", AppConfig.Dataset.Format)
	}

	if AppConfig.Dataset.TimeoutSeconds <= 0 {
		AppConfig.Dataset.TimeoutSeconds = 10
	}

	return nil
}
