// Package main provides the CLI entrypoint for field-mapper.
//
// field-mapper maps business-object fields to source table columns:
//   - propose fills a workspace with exact and fuzzy matches
//   - override pins a field to a column by hand
//   - preview shows what a transformation rule does to a sample value
//   - serve exposes the same operations over HTTP
package main

import (
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"field-mapper/internal/match"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

const envPrefix = "FIELDMAPPER"

// Configuration keys.
const (
	keyThreshold = "threshold"
	keyAddr      = "addr"
)

func init() {
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("fatal error")
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Each tree owns its viper instance.
func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configFile string
	)

	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "field-mapper",
		Short:         "Map business-object fields to source table columns",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initLogging(verbose)
			return initConfig(v, configFile)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")

	rootCmd.AddCommand(newProposeCmd(v))
	rootCmd.AddCommand(newOverrideCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newServeCmd(v, &verbose))

	return rootCmd
}

// initConfig layers defaults, FIELDMAPPER_* environment variables and the
// optional config file into v. Flags are bound by the commands that own them.
func initConfig(v *viper.Viper, configFile string) error {
	v.SetDefault(keyThreshold, match.DefaultThreshold)
	v.SetDefault(keyAddr, ":8080")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if configFile == "" {
		return nil
	}

	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	log.Debug().Str("file", v.ConfigFileUsed()).Msg("config loaded")

	return nil
}
