// Package config manages metro repository configuration.
//
// The configuration lives as JSON in .git/.metro_config. Reads go through
// viper so every key can be overridden from METRO_* environment variables;
// writes update the file only.
package config
