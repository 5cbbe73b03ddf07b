// package config loads process configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the daemon needs at startup. The two secrets
// (discord token, gemini key) are required; the rest has defaults.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`
	GeminiAPIKey string `env:"GEMINI_API_KEY,required,notEmpty"`
	Model        string `env:"GEMINI_MODEL" envDefault:"gemini-pro"`
	PostgresURL  string `env:"POSTGRES_URL"`
	MetricsAddr  string `env:"METRICS_ADDR" envDefault:":6060"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the config from the environment. A .env file in the
// working directory is picked up if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
