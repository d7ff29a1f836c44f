package config

import "github.com/viant/sqlite-sim/minhash"

const (
	defaultConfigPath    = "~/.config/sqlite-sim/config.toml"
	defaultHashes        = minhash.DefaultHashes
	defaultHashAlgorithm = "md5"
	defaultDSN           = ":memory:"
	defaultLogFormat     = "auto"
	defaultLogLevel      = "info"
	defaultOutputFormat  = "table"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		MinHash: MinHash{
			Hashes:    defaultHashes,
			Algorithm: defaultHashAlgorithm,
		},
		SQL: SQL{
			DSN: defaultDSN,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
	}
}
