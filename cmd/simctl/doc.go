// Command simctl computes vector and MinHash similarities from the command
// line and runs SQL against a SQLite database with the similarity functions
// registered.
//
// Configuration is read from ~/.config/sqlite-sim/config.toml (or --config);
// run `simctl config init` to create a sample file.
package main
