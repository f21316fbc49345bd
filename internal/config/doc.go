// Package config loads and validates scribe's TOML configuration.
//
// Values are layered: compiled defaults, then the config file (default
// location ~/.config/scribe/config.toml, or scribe.toml in the working
// directory). After decoding, paths are expanded and normalized and the
// result is validated, so the rest of the program never sees a half-formed
// configuration.
package config
