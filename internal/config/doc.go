// Package config loads simctl settings from TOML, applies defaults and
// validates them. Values that name files (the SQLite DSN) are expanded so
// "~" resolves to the user's home directory.
package config
