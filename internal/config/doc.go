// Package config provides configuration structures and utilities for sgreport.
// It defines input and output locations, the report format and the severity
// taxonomy, and loads optional overrides from a YAML file.
package config
