// Package cli implements the forge-cli command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	forge "github.com/lexfrei/go-forge"
	"github.com/lexfrei/go-forge/observability"
)

var (
	cfgFile  string
	verbose  bool
	insecure bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "forge-cli",
	Short: "Manage servers and sites on a Forge control panel",
	Long: `forge-cli talks to the Forge API to list servers, manage sites
and trigger deployments from the command line.

Authenticate once with 'forge-cli login', or set FORGE_API_TOKEN.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.forge-cli.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every API request")
	rootCmd.PersistentFlags().BoolVar(&insecure, "insecure", false, "Skip TLS certificate verification (self-hosted panels only)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".forge-cli")
	}

	// FORGE_API_TOKEN, FORGE_BASE_URL
	viper.SetEnvPrefix("forge")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// newClient builds an API client from the resolved configuration.
func newClient() (*forge.Client, error) {
	token := viper.GetString("api_token")
	if token == "" {
		return nil, errors.New("not logged in: run 'forge-cli login' or set FORGE_API_TOKEN")
	}

	cfg := &forge.ClientConfig{
		APIToken:              token,
		BaseURL:               viper.GetString("base_url"),
		InsecureSkipTLSVerify: insecure,
	}

	if verbose {
		cfg.Logger = newLogrusLogger()
	} else {
		cfg.Logger = observability.NoopLogger()
	}

	return forge.NewWithConfig(cfg)
}
