package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/gogarment/internal/config"
	"github.com/philipparndt/gogarment/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	flags      config.Flags
)

var rootCmd = &cobra.Command{
	Use:   "gogarment",
	Short: "3D visualizer for t-shirt measurements",
	Long: `GoGarment turns a set of body measurements (chest, shoulder, sleeve, length and neck)
into a simple 3D t-shirt with annotated dimension lines. Measurements are read from
JSON, YAML or TOML files and reloaded when the file changes.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "settings file (TOML)")
}

// loadConfig reads the settings file and applies flag overrides
func loadConfig() (config.Config, error) {
	cfg, err := config.LoadOptional(configPath)
	if err != nil {
		return config.Config{}, err
	}
	cfg.Resolve(flags)
	return cfg, nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
