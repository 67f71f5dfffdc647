package config

import (
	"os"
	"strings"
	"time"
)

// ServiceConfig holds configuration for a backend service
type ServiceConfig struct {
	Name        string
	BaseURL     string
	Instances   []string
	Timeout     time.Duration
	HealthCheck string
}

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	Port     string
	Services map[string]ServiceConfig
}

// LoadConfig loads the gateway configuration.
//
// The storefront ships as a single binary, so every logical service
// defaults to STOREFRONT_SERVICE_URL. Per-service URL and instance
// overrides exist so individual slices can be split out later without
// touching gateway code.
func LoadConfig() *GatewayConfig {
	storefrontURL := getEnv("STOREFRONT_SERVICE_URL", "http://localhost:8080")

	return &GatewayConfig{
		Port: getEnv("GATEWAY_PORT", "8000"),
		Services: map[string]ServiceConfig{
			"catalog":  serviceConfig("catalog", "CATALOG", storefrontURL),
			"orders":   serviceConfig("orders", "ORDERS", storefrontURL),
			"users":    serviceConfig("users", "USERS", storefrontURL),
			"bargains": serviceConfig("bargains", "BARGAINS", storefrontURL),
			"custom":   serviceConfig("custom", "CUSTOM", storefrontURL),
		},
	}
}

func serviceConfig(name, envPrefix, fallbackURL string) ServiceConfig {
	baseURL := getEnv(envPrefix+"_SERVICE_URL", fallbackURL)

	instances := []string{baseURL}
	if raw := os.Getenv(envPrefix + "_SERVICE_INSTANCES"); raw != "" {
		instances = nil
		for _, inst := range strings.Split(raw, ",") {
			if inst = strings.TrimSpace(inst); inst != "" {
				instances = append(instances, inst)
			}
		}
	}

	return ServiceConfig{
		Name:        name + "-service",
		BaseURL:     baseURL,
		Instances:   instances,
		Timeout:     30 * time.Second,
		HealthCheck: "/health",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
