package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/videominer/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings",
	Long:  `Manage configuration settings for videominer.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init [DATABASE_URL]",
	Short: "Initialize configuration file",
	Long:  `Create a new configuration file with database connection settings.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var databaseURL string
		if len(args) > 0 {
			databaseURL = args[0]
		}

		if err := config.InitConfig(databaseURL); err != nil {
			return err
		}

		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", configPath)
		return nil
	},
}

// configShowCmd prints the effective configuration with credentials masked
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Long: `Display the configuration file path and the settings in effect after .env and
environment overrides. The database password is masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		return writeConfig(cmd.OutOrStdout(), configPath, cfg)
	},
}

func writeConfig(out io.Writer, configPath string, cfg *config.Config) error {
	databaseURL := cfg.RedactedDatabaseURL()
	if databaseURL == "" {
		databaseURL = "(not set)"
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "config file\t%s\n", configPath)
	fmt.Fprintf(w, "database_url\t%s\n", databaseURL)
	fmt.Fprintf(w, "port\t%d\n", cfg.Port)
	fmt.Fprintf(w, "env\t%s\n", cfg.Env)
	fmt.Fprintf(w, "log_level\t%s\n", cfg.LogLevel)
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
