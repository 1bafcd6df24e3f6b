package config

import "github.com/caarlos0/env/v11"

// Env holds the process-level settings read from the environment. The
// ruleset itself lives in the JSON config file; the environment only
// points at files and tunes the process.
type Env struct {
	ConfigPath string `env:"BEASTBOUND_CONFIG" envDefault:"./beastbound_config.json"`
	DBPath     string `env:"BEASTBOUND_DB" envDefault:"./data/beastbound.db"`
	// APIToken, when set, is required as a bearer token on every API call.
	APIToken string `env:"BEASTBOUND_API_TOKEN"`
	// Seed pins the RNG for reproducible battles; 0 seeds from the clock.
	Seed int64 `env:"BEASTBOUND_SEED" envDefault:"0"`
}

// ParseEnv reads the environment into an Env.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
