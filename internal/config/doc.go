// Package config manages user-level settings stored at ~/.relver/config.yaml.
// Settings only shape presentation, such as the default output format of the
// status command; the bump pipeline itself never consults them.
package config
