package config

import (
	"fmt"

	"github.com/viant/sqlite-sim/minhash"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMinHash(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	switch c.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("output.format must be table or json, got %q", c.Output.Format)
	}
	return nil
}

func (c *Config) validateMinHash() error {
	if c.MinHash.Hashes <= 0 || c.MinHash.Hashes > minhash.MaxHashes {
		return fmt.Errorf("minhash.hashes must be between 1 and %d, got %d", minhash.MaxHashes, c.MinHash.Hashes)
	}
	if _, ok := hashAlgorithms[c.MinHash.Algorithm]; !ok {
		return fmt.Errorf("minhash.algorithm %q is not supported (md5, sha1, sha256, sha512)", c.MinHash.Algorithm)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json", "auto":
	default:
		return fmt.Errorf("logging.format must be console, json or auto, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
