// Package config defines the file layout the verifier works against and provides
// helpers to load and validate it from YAML.
//
// Every field is optional: Validate fills the stfc-mod defaults, so running without a
// configuration file reproduces the xmake on_config step exactly.
package config
