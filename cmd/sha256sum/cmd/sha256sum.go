package cmd

import (
	"os"
	"path/filepath"

	"github.com/goastler/sha-256/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   filepath.Base(os.Args[0]),
	Short: `Command line digest tool for the allocation-free SHA-256 engine`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logging.CPrint(logging.FATAL, "fail on RootCmd.Execute", logging.LogFormat{"err": err})
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnInitialize(initLogger)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.sha256sum.json)")
	RootCmd.PersistentFlags().StringVar(&flagLogDir, "log_dir", defaultLogDir, "directory for log files")
	RootCmd.PersistentFlags().StringVar(&flagLogLevel, "log_level", defaultLogLevel, "level of logs (debug, info, warn, error, fatal, panic)")

	viper.BindPFlag("log_dir", RootCmd.PersistentFlags().Lookup("log_dir"))
	viper.BindPFlag("log_level", RootCmd.PersistentFlags().Lookup("log_level"))

	RootCmd.AddCommand(sumCmd)
	RootCmd.AddCommand(hexCmd)
	RootCmd.AddCommand(versionCmd)
}
