package config

import (
	"os"
	"strings"
	"time"
)

// ServiceConfig holds configuration for a backend service
type ServiceConfig struct {
	Name        string
	Instances   []string
	Timeout     time.Duration
	HealthCheck string
}

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	Port     string
	Services map[string]ServiceConfig
}

// LoadConfig loads the gateway configuration. DATASET_SERVICE_URLS is a
// comma-separated instance list; seeding runs are heavy, so the dataset
// service is the one worth scaling out.
func LoadConfig() *GatewayConfig {
	return &GatewayConfig{
		Port: getEnv("GATEWAY_PORT", "8000"),
		Services: map[string]ServiceConfig{
			"dataset": {
				Name:        "dataset-service",
				Instances:   splitURLs(getEnv("DATASET_SERVICE_URLS", "http://localhost:8084")),
				Timeout:     30 * time.Second,
				HealthCheck: "/health",
			},
		},
	}
}

func splitURLs(raw string) []string {
	var urls []string
	for _, u := range strings.Split(raw, ",") {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
