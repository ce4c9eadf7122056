package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "FPIDIOMS"

	cfgKeyOutput   = "output"
	cfgKeyLogLevel = "log_level"

	defaultOutput   = "text"
	defaultLogLevel = "warn"
)

// loadConfig merges defaults, the optional config file, FPIDIOMS_* environment
// variables and command-line flags, in increasing order of precedence.
func loadConfig(flags *pflag.FlagSet, configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyOutput, defaultOutput)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlag(cfgKeyOutput, flags.Lookup(flagOutput)); err != nil {
		return nil, fmt.Errorf("bind %s flag: %w", flagOutput, err)
	}
	if err := v.BindPFlag(cfgKeyLogLevel, flags.Lookup(flagLogLevel)); err != nil {
		return nil, fmt.Errorf("bind %s flag: %w", flagLogLevel, err)
	}

	if configFile == "" {
		return v, nil
	}

	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", configFile, err)
	}
	return v, nil
}
