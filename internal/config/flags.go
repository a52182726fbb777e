// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

var (
	errPortOutOfRange = errors.New("port must be between 1 and 65535")
	errInvalidHost    = errors.New("host must be an IP address or a host name")
)

// NetAddress is a flag.Value holding a listen address. An empty host means
// all interfaces.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a                 listen address, [host]:port
//	-d                 database DSN
//	-c, -config        JSON config file path
//	-request-timeout   per-request timeout, e.g. "30s"
//	-shutdown-timeout  graceful shutdown timeout, e.g. "10s"
//	-log-level         debug, info, warn, error
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress   NetAddress
		databaseDSN     string
		jsonConfigPath  string
		requestTimeout  time.Duration
		shutdownTimeout time.Duration
		logLevel        string
	)

	fs := flag.NewFlagSet("account-server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "listen address [host]:port")
	fs.StringVar(&databaseDSN, "d", "", "database DSN (postgres://..., sqlite://...)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias of -c)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "per-request timeout")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout")
	fs.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses "[host]:port". IPv6 hosts must be bracketed.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errPortOutOfRange
	}

	if host != "" && net.ParseIP(host) == nil && !isHostName(host) {
		return errInvalidHost
	}

	a.Host = host
	a.Port = port
	return nil
}

// isHostName accepts dot separated labels of letters, digits and '-'.
func isHostName(host string) bool {
	if len(host) > 253 {
		return false
	}

	labelLen := 0
	for i := 0; i < len(host); i++ {
		c := host[i]
		switch {
		case c == '.':
			if labelLen == 0 {
				return false
			}
			labelLen = 0
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
			labelLen++
			if labelLen > 63 {
				return false
			}
		default:
			return false
		}
	}
	return labelLen > 0
}
