// Package config loads and validates the TOML configuration for the textcut
// tools. Lookup order: an explicit --config path, then
// ~/.config/textcut/config.toml, then ./textcut.toml. A missing file is not
// an error; repository defaults apply.
package config
