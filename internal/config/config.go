// Package config parses the server's environment-variable configuration:
// read each variable, fall back to a documented default, fail fast on a
// malformed value.
package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultBitSize          = 256
	defaultFixedParameters  = false
	defaultHost             = "[::1]"
	defaultPort             = 50051
	defaultConsumeOnFailure = false
	defaultConstantTimeVrfy = false
)

// Config is the server's runtime configuration, read once at startup.
type Config struct {
	BitSize            int
	FixedParameters    bool
	Host               string
	Port               int
	ConsumeOnFailure   bool
	ConstantTimeVerify bool
}

// Load reads BIT_SIZE, FIXED_PARAMETERS, HOST, PORT, CONSUME_CHALLENGE_ON_FAILURE,
// and CONSTANT_TIME_VERIFY from the environment, applying the defaults above
// to any that are unset. It returns an error rather than panicking so
// callers (tests included) can handle a malformed environment gracefully;
// main may still choose to treat that error as fatal.
func Load() (Config, error) {
	cfg := Config{
		BitSize:            defaultBitSize,
		FixedParameters:    defaultFixedParameters,
		Host:               defaultHost,
		Port:               defaultPort,
		ConsumeOnFailure:   defaultConsumeOnFailure,
		ConstantTimeVerify: defaultConstantTimeVrfy,
	}

	if v, ok := os.LookupEnv("BIT_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: BIT_SIZE must be a number: %w", err)
		}
		cfg.BitSize = n
	}
	if v, ok := os.LookupEnv("FIXED_PARAMETERS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: FIXED_PARAMETERS must be a boolean: %w", err)
		}
		cfg.FixedParameters = b
	}
	if v, ok := os.LookupEnv("HOST"); ok {
		cfg.Host = v
	}
	if v, ok := os.LookupEnv("PORT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: PORT must be a number: %w", err)
		}
		cfg.Port = n
	}
	if v, ok := os.LookupEnv("CONSUME_CHALLENGE_ON_FAILURE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: CONSUME_CHALLENGE_ON_FAILURE must be a boolean: %w", err)
		}
		cfg.ConsumeOnFailure = b
	}
	if v, ok := os.LookupEnv("CONSTANT_TIME_VERIFY"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: CONSTANT_TIME_VERIFY must be a boolean: %w", err)
		}
		cfg.ConstantTimeVerify = b
	}

	return cfg, nil
}

// Addr returns the HOST:PORT bind address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
