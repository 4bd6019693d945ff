package cmd

import (
	"github.com/goastler/sha-256/logging"
	"github.com/spf13/viper"
)

const (
	defaultLogDir      = "sha256sum-logs"
	defaultLogFilename = "sha256sum"
	defaultLogLevel    = "info"
)

var (
	flagLogDir      string
	flagLogLevel    string
	cfgFile         string
	usingConfigFile bool
	config          = new(Config)
)

type Config struct {
	LogDir   string `json:"log_dir"`
	LogLevel string `json:"log_level"`
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("./")
		viper.SetConfigName(".sha256sum")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		usingConfigFile = true
	}

	// Load config to memory.
	config.LogDir = viper.GetString("log_dir")
	if config.LogDir == "" {
		config.LogDir = defaultLogDir
	}
	config.LogLevel = viper.GetString("log_level")
	if config.LogLevel == "" {
		config.LogLevel = defaultLogLevel
	}
}

func initLogger() {
	logging.Init(config.LogDir, defaultLogFilename, config.LogLevel, 1, false)
	if usingConfigFile {
		logging.VPrint(logging.INFO, "using config file", logging.LogFormat{"file": viper.ConfigFileUsed()})
	}
}
