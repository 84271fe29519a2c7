package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	forge "github.com/lexfrei/go-forge"
)

var (
	loginToken   string
	loginBaseURL string
)

// loginCmd saves an API token for subsequent commands.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save an API token for future commands",
	Long: `Verifies the token against the API and stores it in the config file
so subsequent commands can authenticate without flags.

Example:
  forge-cli login --token "your-api-token"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := &forge.ClientConfig{APIToken: loginToken}
		if loginBaseURL != "" {
			cfg.BaseURL = loginBaseURL
		}

		client, err := forge.NewWithConfig(cfg)
		if err != nil {
			return err
		}

		// A cheap authenticated call proves the token works.
		if _, err := client.Servers.List(cmd.Context()); err != nil {
			return errors.Wrap(err, "token verification failed")
		}

		viper.Set("api_token", loginToken)
		if loginBaseURL != "" {
			viper.Set("base_url", loginBaseURL)
		}

		if err := saveConfig(); err != nil {
			return errors.Wrap(err, "failed to save configuration")
		}

		fmt.Println("Token saved. You can now run commands like 'forge-cli servers list'.")

		return nil
	},
}

// saveConfig writes the current viper state to the config file, creating
// it if necessary.
func saveConfig() error {
	if err := viper.WriteConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return viper.SafeWriteConfig()
		}

		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return homeErr
		}

		return viper.WriteConfigAs(filepath.Join(home, ".forge-cli.yaml"))
	}

	return nil
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVarP(&loginToken, "token", "t", "", "API token")
	loginCmd.Flags().StringVar(&loginBaseURL, "base-url", "", "API base URL (for self-hosted panels)")

	_ = loginCmd.MarkFlagRequired("token")
}
