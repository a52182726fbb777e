// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRawJSON(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON(t *testing.T) {
	path := writeRawJSON(t, `{
		"app": {"name": "accounts", "version": "3.0", "log_level": "error"},
		"storage": {"db": {"dsn": "postgres://u:p@db/accounts", "max_open_conns": 25}},
		"server": {"http_address": "0.0.0.0:80", "request_timeout": "15s", "shutdown_timeout": 5000000000}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{
		App:     App{Name: "accounts", Version: "3.0", LogLevel: "error"},
		Storage: Storage{DB: DB{DSN: "postgres://u:p@db/accounts", MaxOpenConns: 25}},
		Server: Server{
			HTTPAddress:     "0.0.0.0:80",
			RequestTimeout:  15 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
	}, cfg)
}

func TestParseJSON_PartialObjectLeavesZeroValues(t *testing.T) {
	cfg, err := parseJSON(writeRawJSON(t, `{"server": {"http_address": ":9999"}}`))
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Server.RequestTimeout)
}

func TestParseJSON_Errors(t *testing.T) {
	tests := map[string]string{
		"malformed":        `{"app": `,
		"unknown key":      `{"server": {"port": 80}}`,
		"bad duration":     `{"server": {"request_timeout": "soon"}}`,
		"duration of bool": `{"server": {"request_timeout": true}}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := parseJSON(writeRawJSON(t, body))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}

	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, Duration(90*time.Second), d)

	require.NoError(t, json.Unmarshal([]byte(`250`), &d))
	assert.Equal(t, Duration(250), d)

	out, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(out))
}
