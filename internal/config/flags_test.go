package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("test", flag.ContinueOnError)
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg := parseFlags(newTestFlagSet(), []string{
		"-d", "postgres://localhost/savings",
		"-c", "/etc/savings/config.json",
		"-log-level", "debug",
	})

	assert.Equal(t, "postgres://localhost/savings", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/savings/config.json", cfg.JSONFilePath)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg := parseFlags(newTestFlagSet(), []string{"-config", "conf.json"})

	assert.Equal(t, "conf.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg := parseFlags(newTestFlagSet(), nil)

	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
	assert.Empty(t, cfg.App.LogLevel)
}
