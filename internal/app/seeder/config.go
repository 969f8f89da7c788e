package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds demo seeding settings. Project i is billed to client
// ClientIDs[i % len(ClientIDs)].
type Config struct {
	UserIDs    []int64 `yaml:"user_ids"    env:"SEEDER_USER_IDS"    env-default:"1,2,3"`
	ClientIDs  []int64 `yaml:"client_ids"  env:"SEEDER_CLIENT_IDS"  env-default:"1,2"`
	ProjectIDs []int64 `yaml:"project_ids" env:"SEEDER_PROJECT_IDS" env-default:"1,2"`
	Months     int     `yaml:"months"      env:"SEEDER_MONTHS"      env-default:"3"`
	DayStep    int     `yaml:"day_step"    env:"SEEDER_DAY_STEP"    env-default:"2"`
	Seed       uint64  `yaml:"seed"        env:"SEEDER_SEED"        env-default:"1"`
	DryRun     bool    `yaml:"dry_run"     env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, cfg.Validate()
}

// Validate checks that every dimension has at least one value.
func (c *Config) Validate() error {
	switch {
	case len(c.UserIDs) == 0:
		return fmt.Errorf("seeder config: user_ids must not be empty")
	case len(c.ClientIDs) == 0:
		return fmt.Errorf("seeder config: client_ids must not be empty")
	case len(c.ProjectIDs) == 0:
		return fmt.Errorf("seeder config: project_ids must not be empty")
	case c.Months < 1:
		return fmt.Errorf("seeder config: months must be >= 1 (got %d)", c.Months)
	case c.DayStep < 1:
		return fmt.Errorf("seeder config: day_step must be >= 1 (got %d)", c.DayStep)
	}
	return nil
}
