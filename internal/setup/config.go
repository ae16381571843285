package setup

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/models"
)

const stabilityKeyPrefix = "sk-"

type Config struct {
	StabilityAPIKey string
	MeshyAPIKey     string
	StabilityAPIURL string
	MeshyAPIURL     string

	Host            string
	Port            string
	UpstreamTimeout time.Duration

	LogLevel string
	LogFile  string

	ConstraintsConfigPath string

	GuardrailsEnabled bool
	GuardrailsModelID string
	AWSRegion         string
}

// ConfigurationError is a missing or malformed setting. The process can't
// start with one.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Key, e.Reason)
}

func LoadConfig() *Config {
	return &Config{
		StabilityAPIKey:       getEnv("STABILITY_API_KEY", ""),
		MeshyAPIKey:           getEnv("MESHY_API_KEY", ""),
		StabilityAPIURL:       getEnv("STABILITY_API_URL", ""),
		MeshyAPIURL:           getEnv("MESHY_API_URL", ""),
		Host:                  getEnv("HOST", "0.0.0.0"),
		Port:                  getEnv("PORT", "5000"),
		UpstreamTimeout:       getEnvDuration("UPSTREAM_TIMEOUT", 120*time.Second),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFile:               getEnv("LOG_FILE", ""),
		ConstraintsConfigPath: getEnv("CONSTRAINTS_CONFIG_PATH", ""),
		GuardrailsEnabled:     getEnvBool("GUARDRAILS_ENABLED", false),
		GuardrailsModelID:     getEnv("GUARDRAILS_MODEL_ID", ""),
		AWSRegion:             getEnv("AWS_REGION", "us-east-1"),
	}
}

// Validate checks the credentials required to serve generation requests.
func (c *Config) Validate() error {
	if c.StabilityAPIKey == "" || !strings.HasPrefix(c.StabilityAPIKey, stabilityKeyPrefix) {
		return &ConfigurationError{Key: "STABILITY_API_KEY", Reason: "invalid or missing Stability AI API key"}
	}
	if c.MeshyAPIKey == "" {
		return &ConfigurationError{Key: "MESHY_API_KEY", Reason: "missing Meshy API key"}
	}
	return nil
}

func (c *Config) KeyStatus() models.KeyStatus {
	return models.KeyStatus{
		StabilityKeyExists: c.StabilityAPIKey != "",
		MeshyKeyExists:     c.MeshyAPIKey != "",
		StabilityKeyPrefix: strings.HasPrefix(c.StabilityAPIKey, stabilityKeyPrefix),
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
