// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

var errInvalidDuration = errors.New("duration must be a string like \"30s\" or a number of nanoseconds")

// StructuredJSONConfig mirrors the JSON configuration file layout.
// Boolean switches are environment-only because a false value could not
// override a true one during the merge.
type StructuredJSONConfig struct {
	App struct {
		Name     string `json:"name,omitempty"`
		Version  string `json:"version,omitempty"`
		LogLevel string `json:"log_level,omitempty"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn,omitempty"`
			MaxOpenConns int    `json:"max_open_conns,omitempty"`
		} `json:"db"`
	} `json:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address,omitempty"`
		RequestTimeout  Duration `json:"request_timeout,omitempty"`
		ShutdownTimeout Duration `json:"shutdown_timeout,omitempty"`
	} `json:"server"`
}

// parseJSON reads the file at path. Unknown keys are rejected so that a
// misspelled option does not go unnoticed.
func parseJSON(path string) (*StructuredConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()

	var jsonCfg StructuredJSONConfig
	if err = decoder.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs from %s: %w", path, err)
	}

	return jsonCfg.toConfig(), nil
}

func (j *StructuredJSONConfig) toConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:     j.App.Name,
			Version:  j.App.Version,
			LogLevel: j.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:          j.Storage.DB.DSN,
				MaxOpenConns: j.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     j.Server.HTTPAddress,
			RequestTimeout:  time.Duration(j.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(j.Server.ShutdownTimeout),
		},
	}
}

// Duration is a time.Duration read from JSON either as a Go duration
// string ("1m30s") or as an integer number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("%w: %w", errInvalidDuration, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var ns int64
	if err := json.Unmarshal(b, &ns); err != nil {
		return errInvalidDuration
	}
	*d = Duration(ns)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
