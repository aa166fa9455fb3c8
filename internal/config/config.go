package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int  `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP `envPrefix:"HTTP_"`
	Seed     Seed `envPrefix:"SEED_"`
	Feed     Feed `envPrefix:"FEED_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"8000"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Seed controls what demo data is created at startup. The exercise catalog
// is always seeded; a demo account is optional.
type Seed struct {
	DemoUser     bool   `env:"DEMO_USER" envDefault:"false"`
	DemoUsername string `env:"DEMO_USERNAME" envDefault:"demo"`
	DemoPassword string `env:"DEMO_PASSWORD" envDefault:"demo"`
}

// Feed contains synthetic sensor feed parameters.
type Feed struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Schedule string `env:"SCHEDULE" envDefault:"@every 5m"`
	UserID   string `env:"USER_ID"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
