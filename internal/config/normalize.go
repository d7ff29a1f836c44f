package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.MinHash.Algorithm = strings.ToLower(strings.TrimSpace(c.MinHash.Algorithm))
	if c.MinHash.Algorithm == "" {
		c.MinHash.Algorithm = defaultHashAlgorithm
	}
	if err := c.normalizeSQL(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	return nil
}

func (c *Config) normalizeSQL() error {
	if value, ok := os.LookupEnv(EnvDSN); ok && strings.TrimSpace(value) != "" {
		c.SQL.DSN = value
	}
	dsn := strings.TrimSpace(c.SQL.DSN)
	switch {
	case dsn == "":
		dsn = defaultDSN
	case dsn == ":memory:", strings.HasPrefix(dsn, "file:"):
	default:
		expanded, err := expandPath(dsn)
		if err != nil {
			return fmt.Errorf("sql.dsn: %w", err)
		}
		dsn = expanded
	}
	c.SQL.DSN = dsn
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
