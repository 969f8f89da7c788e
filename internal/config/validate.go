package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for storage driver %q", c.Storage.Driver)
		}
		if c.Database.MaxConns <= 0 {
			return fmt.Errorf("database.max_conns must be > 0 (got %d)", c.Database.MaxConns)
		}
		if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("database.min_conns must be in [0, max_conns] (got %d)", c.Database.MinConns)
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("storage.driver must be %q or %q (got %q)", StorageDriverPostgres, StorageDriverMemory, c.Storage.Driver)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	if err := c.TimeEntry.validate(); err != nil {
		return fmt.Errorf("time_entry: %w", err)
	}

	if c.RateLimit.WritesPerMinute < 0 {
		return fmt.Errorf("rate_limit.writes_per_minute must be >= 0 (got %d)", c.RateLimit.WritesPerMinute)
	}
	if c.RateLimit.WritesPerMinute > 0 && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 when the limiter is enabled")
	}

	return nil
}

func (t *TimeEntryConfig) validate() error {
	if t.MaxDescriptionLength <= 0 {
		return fmt.Errorf("max_description_length must be > 0 (got %d)", t.MaxDescriptionLength)
	}
	if t.MaxListLimit <= 0 {
		return fmt.Errorf("max_list_limit must be > 0 (got %d)", t.MaxListLimit)
	}
	if t.DefaultListLimit < 0 || t.DefaultListLimit > t.MaxListLimit {
		return fmt.Errorf("default_list_limit must be in [0, max_list_limit] (got %d)", t.DefaultListLimit)
	}
	return nil
}
