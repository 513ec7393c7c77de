// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config
