package main

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/ib-77/itx/internal/config"
	"github.com/ib-77/itx/internal/logsetup"
)

var (
	version = "0.0.0-dev"
	commit  = "none"
	date    = "unknown"
)

type rootFlags struct {
	config     string
	envFile    string
	logOptions *logsetup.Options
}

var rootArgs = rootFlags{
	logOptions: logsetup.DefaultOptions(),
}
var logger = logr.Discard()

var rootCmd = &cobra.Command{
	Use:               "itx",
	Short:             "Run accessor pipelines over YAML and JSON documents",
	SilenceUsage:      true,
	PersistentPreRunE: runRoot,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootArgs.config, "config", "c", "", "Path to a YAML or JSON file with flag values")
	rootCmd.PersistentFlags().StringVar(&rootArgs.envFile, "env-file", ".env", "Path to a .env file with ITX_* variables")
	rootArgs.logOptions.BindFlags(rootCmd.PersistentFlags())
}

func runRoot(cmd *cobra.Command, args []string) error {
	v, err := config.Load(cmd.Flags(), config.Files{
		Config: rootArgs.config,
		Env:    rootArgs.envFile,
	})
	if err != nil {
		return err
	}

	if err := config.Apply(v, cmd.Flags()); err != nil {
		return err
	}

	logger, err = rootArgs.logOptions.Build()
	return err
}
