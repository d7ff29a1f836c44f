package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/viant/sqlite-sim/internal/config"
	"github.com/viant/sqlite-sim/internal/logging"
	"github.com/viant/sqlite-sim/minhash"
)

type commandContext struct {
	configFlag   *string
	jsonFlag     *bool
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	logger *slog.Logger

	hasherOnce sync.Once
	hasher     *minhash.Hasher
	hasherErr  error
}

func newCommandContext(configFlag *string, jsonFlag *bool, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		jsonFlag:     jsonFlag,
		logLevelFlag: logLevelFlag,
		logger:       logging.NewNop(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
			if err := cfg.Validate(); err != nil {
				c.configErr = fmt.Errorf("--log-level: %w", err)
				return
			}
		}
		if c.jsonFlag != nil && *c.jsonFlag {
			cfg.Output.Format = "json"
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// setup loads configuration and builds the logger writing to the command's
// stderr.
func (c *commandContext) setup(cmd *cobra.Command) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	c.logger = logger
	return nil
}

// ensureHasher builds the configured MinHash hasher. An unavailable hash
// function fails here, before any input is processed.
func (c *commandContext) ensureHasher() (*minhash.Hasher, error) {
	c.hasherOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.hasherErr = err
			return
		}
		c.hasher, c.hasherErr = minhash.New(minhash.WithHash(cfg.Hash()))
		if c.hasherErr == nil {
			c.logger.Debug("minhash hasher ready",
				slog.String("algorithm", cfg.MinHash.Algorithm),
				slog.Int("hashes", cfg.MinHash.Hashes))
		}
	})
	return c.hasher, c.hasherErr
}

func (c *commandContext) jsonOutput() bool {
	cfg, err := c.ensureConfig()
	if err != nil {
		return c.jsonFlag != nil && *c.jsonFlag
	}
	return cfg.Output.Format == "json"
}

func (c *commandContext) componentLogger(component string) *slog.Logger {
	return logging.NewComponentLogger(c.logger, component)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
