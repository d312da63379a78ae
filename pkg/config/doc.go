// Package config reads process settings from the environment.
package config
